package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <session-id>",
	Short: "Print a stored conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		out, err := rt.uc.History(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load session %q: %w", args[0], err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := json.MarshalIndent(out.Session, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		c := newConsoleFor(cmd, rt, args[0])
		c.printHistory(out.Session.History)
		if !out.Session.Draft.IsEmpty() {
			data, _ := json.MarshalIndent(out.Session.Draft, "", "  ")
			fmt.Fprintf(cmd.OutOrStdout(), "Draft:\n%s\n", data)
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <session-id>...",
	Short: "Forget one or more conversations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		for _, id := range args {
			if err := rt.uc.Reset(cmd.Context(), id); err != nil {
				return fmt.Errorf("reset %q: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session '%s'\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd, resetCmd)
	historyCmd.Flags().Bool("json", false, "Print the raw session as JSON")
}
