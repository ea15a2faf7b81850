package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"vinai-server/internal/client"
	"vinai-server/internal/core/reply"
	"vinai-server/internal/pkg/common"

	"github.com/spf13/cobra"
)

var (
	serverURL  string
	timeout    time.Duration
	senderID   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:           "vinaictl",
	Short:         "Cliente de línea de comandos para vinai-server",
	Long:          `vinaictl habla con vinai-server: registra y autentica usuarios y ejecuta acciones del webhook como lo haría el gestor de diálogo.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultServer := os.Getenv("VINAI_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:5055"
	}
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", defaultServer, "server base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")
	rootCmd.PersistentFlags().StringVar(&senderID, "sender", "cli", "session id sent as sender_id (user_<id> after login)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the raw server response as JSON")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newClient() *client.Client {
	return client.New(serverURL, timeout)
}

// printReply 輸出訊息與 slot 事件
func printReply(cmd *cobra.Command, messages []reply.Message, events []reply.Event) {
	out := cmd.OutOrStdout()
	for _, m := range messages {
		switch {
		case m.Text != "":
			fmt.Fprintln(out, m.Text)
			if link, ok := m.Custom["link"]; ok && link != "" {
				fmt.Fprintf(out, "  -> %v\n", link)
			}
		case m.Image != "":
			fmt.Fprintf(out, "[imagen] %s\n", m.Image)
		case m.Response != "":
			fmt.Fprintf(out, "[plantilla] %s\n", m.Response)
		}
	}
	for _, e := range events {
		if e.Value == nil {
			fmt.Fprintf(out, "  (%s reiniciado)\n", e.Name)
			continue
		}
		fmt.Fprintf(out, "  (%s = %v)\n", e.Name, e.Value)
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := common.ToPrettyJSON(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func requireFlag(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}
