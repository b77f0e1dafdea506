package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Yates-Labs/satirist/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long: `List every supported language tag with its display name and default
satire category. Language hints in requests resolve to one of these tags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputLanguages(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func outputLanguages(w io.Writer) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BE9FD"))
	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")).Width(8)
	nameStyle := lipgloss.NewStyle().Width(14)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-8s%-14s%s", "TAG", "NAME", "CATEGORY")))
	for _, tag := range language.Tags() {
		fmt.Fprintln(w,
			tagStyle.Render(string(tag))+
				nameStyle.Render(language.DisplayName(tag))+
				language.DefaultCategory(tag))
	}
}
