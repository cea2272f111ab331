package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/autolint/internal/cli/output"
	"github.com/leapstack-labs/autolint/pkg/core"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Category string // Filter by category
	Format   string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List the rule catalog with each rule's default severity and whether it
is enabled under the current configuration.

Rules are grouped by category (schema, maintainability, performance,
security). Pass a rule ID to see its full documentation.`,
		Example: `  # List all rules
  autolint rules

  # Show details for a specific rule
  autolint rules SEC001

  # List security rules only
  autolint rules --category security

  # Output as JSON
  autolint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, c := range core.Categories() {
			names = append(names, string(c))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	categories := core.Categories()
	if opts.Category != "" {
		category := core.Category(strings.ToLower(opts.Category))
		if !isCategory(category) {
			return fmt.Errorf("unknown category %q", opts.Category)
		}
		categories = []core.Category{category}
	}

	groups := make(map[core.Category][]core.RuleInfo, len(categories))
	rules := []core.RuleInfo{}
	for _, category := range categories {
		groups[category] = cmdCtx.Engine.CategoryCatalog(category)
		rules = append(rules, groups[category]...)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].RuleID < rules[j].RuleID })

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(rules)
	}

	markdown := r.EffectiveMode() == output.ModeMarkdown
	titleCaser := cases.Title(language.English)

	if markdown {
		r.Header(fmt.Sprintf("Lint Rules (%d)", len(rules)))
	} else {
		r.Println(r.Styles().Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))
		r.Println("")
	}

	for _, category := range categories {
		group := groups[category]
		if len(group) == 0 {
			continue
		}

		title := titleCaser.String(string(category))
		if markdown {
			r.Println("### " + title)
			r.Println("")
		} else {
			r.Println(r.Styles().Header2.Render(title))
		}

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Name", "Severity", "Enabled"})
		for _, rule := range group {
			enabled := "yes"
			if !rule.Enabled {
				enabled = "no"
			}
			t.AppendRow(table.Row{rule.RuleID, rule.Name, rule.Severity.String(), enabled})
		}
		if markdown {
			t.RenderMarkdown()
		} else {
			t.Render()
		}
		r.Println("")
	}

	return nil
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	var rule *core.RuleInfo
	for _, ri := range cmdCtx.Engine.Catalog() {
		if strings.EqualFold(ri.RuleID, ruleID) {
			rule = &ri
			break
		}
	}
	if rule == nil {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(ruleDetail{RuleInfo: *rule, Description: rule.Description, Rationale: rule.Rationale, ConfigKeys: rule.ConfigKeys})
	case output.ModeMarkdown:
		showRuleMarkdown(r, rule)
	default:
		showRuleText(r, rule)
	}
	return nil
}

// ruleDetail adds the documentation fields the catalog wire shape omits.
type ruleDetail struct {
	core.RuleInfo
	Description string   `json:"description"`
	Rationale   string   `json:"rationale,omitempty"`
	ConfigKeys  []string `json:"config_keys,omitempty"`
}

func showRuleText(r *output.Renderer, rule *core.RuleInfo) {
	styles := r.Styles()
	r.Println(styles.Header1.Render(rule.RuleID + ": " + rule.Name))
	r.Println("")
	r.Printf("%s %s\n", styles.Bold.Render("Category:"), rule.Category)
	r.Printf("%s %s\n", styles.Bold.Render("Severity:"), styles.Severity(rule.Severity).Render(rule.Severity.String()))
	r.Printf("%s %t\n", styles.Bold.Render("Enabled: "), rule.Enabled)
	r.Println("")
	r.Println(rule.Description)
	if rule.Rationale != "" {
		r.Println("")
		r.Println(styles.Bold.Render("Why it matters"))
		r.Println(rule.Rationale)
	}
	if len(rule.ConfigKeys) > 0 {
		r.Println("")
		r.Println(styles.Bold.Render("Options"))
		for _, key := range rule.ConfigKeys {
			r.Println("  " + key)
		}
	}
}

func showRuleMarkdown(r *output.Renderer, rule *core.RuleInfo) {
	r.Header(rule.RuleID + ": " + rule.Name)
	r.Printf("- **Category:** %s\n", rule.Category)
	r.Printf("- **Severity:** %s\n", rule.Severity)
	r.Printf("- **Enabled:** %t\n", rule.Enabled)
	r.Println("")
	r.Println(rule.Description)
	if rule.Rationale != "" {
		r.Println("")
		r.Println("### Why it matters")
		r.Println("")
		r.Println(rule.Rationale)
	}
	if len(rule.ConfigKeys) > 0 {
		r.Println("")
		r.Println("### Options")
		r.Println("")
		for _, key := range rule.ConfigKeys {
			r.Printf("- `%s`\n", key)
		}
	}
}

func isCategory(c core.Category) bool {
	for _, known := range core.Categories() {
		if c == known {
			return true
		}
	}
	return false
}
