package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// demoConversation is the scripted walkthrough: planning, flights, hotel,
// weather and documents.
var demoConversation = []string{
	"I'm planning a trip to Paris for a week in June with my partner. We're interested in art and food.",
	"What are the best times to visit museums in Paris?",
	"We'd also like to visit some vineyards. Can you recommend any day trips?",
	"Can you find flights from New York to Paris for June 15-22?",
	"I'd prefer a direct flight in the morning.",
	"Now I need a hotel in central Paris near the Louvre.",
	"I'd like something with a view and breakfast included.",
	"What kind of weather should we expect in Paris in June?",
	"Do we need any special travel documents for France?",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the scripted demo conversation",
	Long: `Replays the demo conversation. Without --auto the demo is interactive:
type freely, 'auto' to play the remaining scripted messages, or 'exit' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			sessionID = fmt.Sprintf("demo_%d", time.Now().Unix())
		}
		auto, _ := cmd.Flags().GetBool("auto")
		delay, _ := cmd.Flags().GetDuration("delay")

		c := newConsoleFor(cmd, rt, sessionID)
		return runDemo(cmd, c, auto, delay)
	},
}

func runDemo(cmd *cobra.Command, c *console, auto bool, delay time.Duration) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	c.header()
	if err := c.resume(ctx); err != nil {
		return err
	}

	var err error
	if auto {
		err = c.replay(ctx, remainingDemo(c.turns), delay)
	} else {
		fmt.Fprintln(out, "Demo is in interactive mode. Type 'exit' to quit or 'auto' to switch to automatic mode.")
		fmt.Fprintln(out)
		err = c.loop(ctx, cmd.InOrStdin(), func() error {
			return c.replay(ctx, remainingDemo(c.turns), delay)
		})
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nDemo completed. Conversation saved as session %s.\n", c.sessionID)
	fmt.Fprintln(out, strings.Repeat("=", 80))
	return nil
}

// remainingDemo skips the scripted messages already covered by turns.
func remainingDemo(turns int) []string {
	if turns >= len(demoConversation) {
		return nil
	}
	if turns < 0 {
		turns = 0
	}
	return demoConversation[turns:]
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().String("session", "", "Session id (default: demo_<unix time>)")
	demoCmd.Flags().Bool("auto", false, "Play the whole script without input")
	demoCmd.Flags().Duration("delay", 2*time.Second, "Pause around each scripted reply")
}
