package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authUsername string
	authPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Registrar una cuenta",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlag("email", authEmail); err != nil {
			return err
		}
		resp, err := newClient().Register(cmd.Context(), authUsername, authEmail, authPassword)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, resp)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", resp.Message, resp.Username, resp.UserID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Iniciar sesión y mostrar el identificador de sesión",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlag("email", authEmail); err != nil {
			return err
		}
		resp, err := newClient().Login(cmd.Context(), authEmail)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, resp)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Hola, %s. Usa --sender %s\n", resp.Username, resp.UserID)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringVarP(&authEmail, "email", "e", "", "account email (required)")
	}
	registerCmd.Flags().StringVarP(&authUsername, "username", "u", "", "display name (defaults to the email local part)")
	registerCmd.Flags().StringVarP(&authPassword, "password", "p", "", "password (defaults to the demo password)")

	rootCmd.AddCommand(registerCmd, loginCmd)
}
