package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vvka-141/secretscan/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in detection rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRules(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func printRules(cmd *cobra.Command) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "MATCHES", "CASE", "DESCRIPTION")

	for _, rule := range rules.Default().Rules() {
		sensitivity := "insensitive"
		if rule.CaseSensitive {
			sensitivity = "sensitive"
		}
		t.Row(rule.Name, strconv.Quote(rule.Needle), sensitivity, rule.Description)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
