package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat",
	Long:  `Starts a chat REPL. Type 'exit' to quit. --session resumes a stored conversation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		sessionID, _ := cmd.Flags().GetString("session")
		c := newConsoleFor(cmd, rt, sessionID)
		c.header()
		if err := c.resume(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Type 'exit' to quit.")
		fmt.Fprintln(cmd.OutOrStdout())

		if err := c.loop(cmd.Context(), cmd.InOrStdin(), nil); err != nil {
			return err
		}
		if c.sessionID != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Conversation saved as session %s\n", c.sessionID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().String("session", "", "Session id to resume (default: new session)")
}
