package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pthm/twlint/internal/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available checks",
	Long: `List every check in execution order with its category, default severity
and whether the current configuration enables it.`,
	RunE: runRules,
}

func init() {
	RootCmd.AddCommand(rulesCmd)
}

type ruleInfo struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

func runRules(cmd *cobra.Command, args []string) error {
	u := GetUI()

	var infos []ruleInfo
	for _, r := range rules.DefaultRegistry().Rules() {
		rc := r.Config()
		infos = append(infos, ruleInfo{
			Name:        r.Name(),
			Category:    string(rc.Category),
			Severity:    rc.Severity.String(),
			Enabled:     settings.Enabled(r.Name()),
			Description: r.Description(),
		})
	}

	if u.IsJSON() {
		encoder := json.NewEncoder(u.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	s := u.Styles
	for _, info := range infos {
		state := s.Success.Render("on ")
		if !info.Enabled {
			state = s.Separator.Render("off")
		}
		fmt.Fprintf(u.Writer, "%s %s %s\n", state, s.Rule.Render(fmt.Sprintf("%-15s", info.Name)), s.Category.Render(info.Category))
		fmt.Fprintf(u.Writer, "    %s (%s)\n", info.Description, info.Severity)
	}
	return nil
}
