package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "satirist",
	Short: "Satirist - one-line satire for a word, in twenty languages",
	Long: `Satirist turns a single word into a short satirical line.

It normalizes loosely-shaped requests, asks an upstream language model under
a hard deadline, and falls back to localized templates whenever the model is
unavailable, slow, or returns something unusable.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
