package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"travel-assistant/config"
	"travel-assistant/internal/app"
	"travel-assistant/internal/conversation"
	"travel-assistant/internal/conversation/usecase"
	"travel-assistant/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "travel-cli",
	Short: "Chat with the travel assistant from a terminal",
	Long: `travel-cli runs the assistant pipeline in-process against the configured
conversation store, so sessions are shared with the HTTP server.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("plain", false, "Print replies without markdown rendering")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log pipeline activity to stderr")
	rootCmd.PersistentFlags().String("storage", "", "Override storage.driver (sqlite, postgres, redis, memory)")
}

// runtime is what every subcommand needs: the use case and a way to release it.
type runtime struct {
	uc    conversation.UseCase
	close func() error
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if driver, _ := cmd.Flags().GetString("storage"); driver != "" {
		cfg.Storage.Driver = driver
	}

	level := "error"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = cfg.Logger.Level
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     "console",
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pipeline, err := app.NewPipeline(cfg, l, nil)
	if err != nil {
		return nil, err
	}
	repo, closeRepo, err := app.NewRepository(ctx, cfg.Storage, l)
	if err != nil {
		return nil, err
	}
	return &runtime{uc: usecase.New(pipeline, repo, l), close: closeRepo}, nil
}

func newConsoleFor(cmd *cobra.Command, rt *runtime, sessionID string) *console {
	plain, _ := cmd.Flags().GetBool("plain")
	return newConsole(rt.uc, sessionID, cmd.OutOrStdout(), newRenderer(plain))
}
