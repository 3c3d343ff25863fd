package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fieldkit/pkg/transform"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

func newDefaultsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults <entity> [file]",
		Short: "Fill unset fields of a record from the schema defaults",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schemaFor(args[0])
			if err != nil {
				return err
			}
			recs, array, err := readRecords(cmd, inputPath(args))
			if err != nil {
				return err
			}
			out := make([]types.Record, len(recs))
			for i, rec := range recs {
				out[i] = transform.ApplyDefaults(rec, s)
			}
			if err := writeRecords(cmd.OutOrStdout(), out, array); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
}
