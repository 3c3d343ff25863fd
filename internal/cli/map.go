package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fieldkit/pkg/transform"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

// Directions accepted by map --to.
const (
	toExternal = "external"
	toInternal = "internal"
)

func newMapCmd(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "map <entity> [file]",
		Short: "Rename record fields between store and canonical names",
		Long: "Map renames the fields of a JSON record. --to internal converts store\n" +
			"names to canonical names; --to external converts back. Fields without\n" +
			"a mapping, and entities without a table, pass through unchanged.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := args[0]
			var conv func(types.Record, types.MappingTable) types.Record
			switch to {
			case toInternal:
				conv = transform.FromExternal
			case toExternal:
				conv = transform.ToExternal
			default:
				return fmt.Errorf("--to must be %q or %q, got %q", toInternal, toExternal, to)
			}

			recs, array, err := readRecords(cmd, inputPath(args))
			if err != nil {
				return err
			}
			table, ok := a.pipeline.Registry().MappingFor(a.cfg.Store, entity)
			if !ok {
				a.logger.Info("No mapping table, fields pass through unchanged",
					slog.String("entity", entity), slog.String("store", a.cfg.Store))
			}
			out := make([]types.Record, len(recs))
			for i, rec := range recs {
				out[i] = conv(rec, table)
			}
			if err := writeRecords(cmd.OutOrStdout(), out, array); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", toInternal, "direction: internal or external")
	return cmd
}
