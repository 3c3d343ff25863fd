package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

// fieldInfo is the printable description of one schema field.
type fieldInfo struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	DisplayName string   `json:"displayName"`
	Values      []string `json:"values,omitempty"`
	Default     any      `json:"default,omitempty"`
}

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [entity]",
		Short: "List entity types or show the fields of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.listEntities(cmd)
			}
			return a.showSchema(cmd, args[0])
		},
	}
}

func (a *app) listEntities(cmd *cobra.Command) error {
	reg := a.pipeline.Registry()
	w := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return writeJSON(w, map[string][]string{
			"entities": reg.Entities(),
			"stores":   reg.Stores(),
		})
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ENTITY\tFIELDS\tMAPPED")
	for _, e := range reg.Entities() {
		s, err := reg.SchemaFor(e)
		if err != nil {
			return err
		}
		_, mapped := reg.MappingFor(a.cfg.Store, e)
		fmt.Fprintf(tw, "%s\t%d\t%t\n", e, s.Len(), mapped)
	}
	return tw.Flush()
}

func (a *app) showSchema(cmd *cobra.Command, entity string) error {
	s, err := a.schemaFor(entity)
	if err != nil {
		return err
	}

	infos := make([]fieldInfo, 0, s.Len())
	for _, name := range s.Fields() {
		def, _ := s.Field(name)
		infos = append(infos, fieldInfo{
			Name:        name,
			Type:        string(def.Type),
			Required:    def.Required,
			DisplayName: def.DisplayName,
			Values:      def.Values,
			Default:     describeDefault(def.Default),
		})
	}

	w := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return writeJSON(w, infos)
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "FIELD\tTYPE\tREQUIRED\tDISPLAY NAME\tVALUES\tDEFAULT")
	for _, f := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\t%s\n",
			f.Name, f.Type, f.Required, f.DisplayName, strings.Join(f.Values, ", "), display(f.Default))
	}
	return tw.Flush()
}

// describeDefault returns a literal default's value, "(generated)" for a
// generator and nil when there is no default.
func describeDefault(d types.Default) any {
	switch v := d.(type) {
	case nil:
		return nil
	case types.Literal:
		return v.Value
	default:
		return "(generated)"
	}
}
