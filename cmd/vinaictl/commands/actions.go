package commands

import (
	"fmt"
	"strconv"

	"vinai-server/internal/api/handlers/actions"

	"github.com/spf13/cobra"
)

var (
	recText           string
	recGrape          string
	recType           string
	recValley         string
	recCharacteristic string
	recPairing        string
	recYear           int
	tourWinery        string
	tourValley        string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Pedir una recomendación de vino",
	Example: `  vinaictl recommend --text "algo con notas de chocolate"
  vinaictl recommend --sender user_3 --cepa carmenere --ano 2019`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slots := map[string]interface{}{}
		setSlot(slots, "slot_cepa", recGrape)
		setSlot(slots, "slot_tipo_vino", recType)
		setSlot(slots, "slot_valle", recValley)
		setSlot(slots, "slot_caracteristica", recCharacteristic)
		setSlot(slots, "slot_maridaje", recPairing)
		if recYear > 0 {
			slots["slot_ano"] = strconv.Itoa(recYear)
		}
		return runAction(cmd, actions.ActionRecommendWine, recText, slots)
	},
}

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Buscar el tour de una viña o recomendar uno por valle",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tourWinery != "" {
			return runAction(cmd, actions.ActionFindTour, "", map[string]interface{}{"slot_vina": tourWinery})
		}
		slots := map[string]interface{}{}
		setSlot(slots, "slot_valle", tourValley)
		return runAction(cmd, actions.ActionRecommendTourDB, "", slots)
	},
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Listar las acciones registradas en el servidor",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := newClient().Actions(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVarP(&recText, "text", "t", "", "free-text utterance")
	recommendCmd.Flags().StringVar(&recGrape, "cepa", "", "grape variety slot")
	recommendCmd.Flags().StringVar(&recType, "tipo", "", "wine type slot")
	recommendCmd.Flags().StringVar(&recValley, "valle", "", "valley slot")
	recommendCmd.Flags().StringVar(&recCharacteristic, "caracteristica", "", "characteristic slot")
	recommendCmd.Flags().StringVar(&recPairing, "maridaje", "", "food pairing slot")
	recommendCmd.Flags().IntVar(&recYear, "ano", 0, "vintage year slot")

	tourCmd.Flags().StringVar(&tourWinery, "vina", "", "winery name fragment")
	tourCmd.Flags().StringVar(&tourValley, "valle", "", "valley filter for a random tour")

	rootCmd.AddCommand(recommendCmd, tourCmd, actionsCmd)
}

func setSlot(slots map[string]interface{}, name, value string) {
	if value != "" {
		slots[name] = value
	}
}

func runAction(cmd *cobra.Command, name, text string, slots map[string]interface{}) error {
	req := actions.Request{
		NextAction: name,
		SenderID:   senderID,
		Tracker: actions.Tracker{
			SenderID:      senderID,
			Slots:         slots,
			LatestMessage: actions.LatestMessage{Text: text},
		},
	}
	resp, err := newClient().RunAction(cmd.Context(), req)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, resp)
	}
	printReply(cmd, resp.Responses, resp.Events)
	return nil
}
