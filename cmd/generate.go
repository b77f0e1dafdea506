package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Yates-Labs/satirist/internal/config"
	"github.com/Yates-Labs/satirist/internal/fallback"
	"github.com/Yates-Labs/satirist/internal/generation"
	"github.com/Yates-Labs/satirist/internal/logging"
	"github.com/Yates-Labs/satirist/internal/orchestrator"
	"github.com/Yates-Labs/satirist/internal/request"
)

var (
	genLang   string
	genLength string
	genStyle  string
	genJSON   bool
	genMock   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [word]",
	Short: "Generate a satirical line for one word",
	Long: `Generate a satirical line for one word using the same pipeline as the
HTTP endpoint: normalization, a bounded upstream call, and fallback.

The word may carry inline annotations such as "会議(短め)" or "boss [printer]".

Examples:
  satirist generate 会議
  satirist generate AI --lang en --length short
  satirist generate "boss(long)" --lang en --json
  satirist generate deadline --mock`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genLang, "lang", "", "Language hint, e.g. ja, en, zh-rTW, pt-BR")
	generateCmd.Flags().StringVar(&genLength, "length", "", "short or long")
	generateCmd.Flags().StringVar(&genStyle, "style", "", "printer or smile")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Print the raw JSON response")
	generateCmd.Flags().BoolVar(&genMock, "mock", false, "Use a local mock generator instead of the upstream provider")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	var svc *orchestrator.Service
	if genMock {
		fb, err := fallback.New(cfg.Fallback())
		if err != nil {
			return err
		}
		bounded := generation.NewBounded(&generation.MockGenerator{}, "mock", cfg.UpstreamTimeout)
		svc = orchestrator.New(bounded, fb, cfg.Variant(), logger)
	} else {
		svc, err = orchestrator.NewFromConfig(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create service: %w", err)
		}
	}

	resp, err := svc.Handle(ctx, request.Raw{
		Word:   args[0],
		Lang:   genLang,
		Length: genLength,
		Style:  genStyle,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if genJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	printResponse(out, resp)
	return nil
}

func printResponse(w io.Writer, resp orchestrator.Response) {
	var (
		typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F780FF")).Bold(true)
		satireStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E9E9F4"))
		noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true)
	)

	fmt.Fprintln(w)
	fmt.Fprintln(w, typeStyle.Render(resp.Type))
	fmt.Fprintln(w, satireStyle.Render(resp.Satire))
	if resp.Error != "" {
		fmt.Fprintln(w, noteStyle.Render("(fallback: "+resp.Error+")"))
	}
	fmt.Fprintln(w)
}
