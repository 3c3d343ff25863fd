package cli

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fieldkit/internal/coerce"
	"github.com/mesh-intelligence/fieldkit/pkg/format"
)

// formatKinds maps a format kind to its renderer.
func (a *app) formatKinds() map[string]func(any) string {
	return map[string]func(any) string{
		"currency": a.formatter.Currency,
		"date":     a.formatter.Date,
		"datetime": a.formatter.DateTime,
		"phone":    format.Phone,
		"badge":    format.StatusBadge,
	}
}

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format <currency|date|datetime|phone|badge> <value>",
		Short: "Render a value for display",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := a.formatKinds()
			render, ok := kinds[args[0]]
			if !ok {
				names := make([]string, 0, len(kinds))
				for k := range kinds {
					names = append(names, k)
				}
				sort.Strings(names)
				return fmt.Errorf("unknown format %q (known: %s)", args[0], strings.Join(names, ", "))
			}
			out := render(formatInput(args[0], args[1]))
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"kind": args[0], "value": out})
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// digitDate matches all-digit dates such as 2024 or 20240305.
var digitDate = regexp.MustCompile(`^\d{4}(\d{4})?$`)

// formatInput converts a command-line value to what the renderer expects.
// Dates given as other plain numbers are epoch milliseconds.
func formatInput(kind, raw string) any {
	if (kind == "date" || kind == "datetime") && !digitDate.MatchString(raw) {
		if n, ok := coerce.Number(raw); ok && strings.TrimSpace(raw) != "" {
			return n
		}
	}
	return raw
}
