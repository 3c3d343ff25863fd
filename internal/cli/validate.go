package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <entity> [file]",
		Short: "Validate a record in canonical field names",
		Long: "Validate reads a JSON object, or an array of objects, from file or\n" +
			"stdin and reports per-field errors. It exits 1 when any record is invalid.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schemaFor(args[0])
			if err != nil {
				return err
			}
			recs, array, err := readRecords(cmd, inputPath(args))
			if err != nil {
				return err
			}

			v := a.validator()
			results := make([]types.ObjectResult, len(recs))
			valid := true
			for i, rec := range recs {
				results[i] = v.Object(rec, s)
				valid = valid && results[i].Valid
			}

			w := cmd.OutOrStdout()
			switch {
			case a.flags.jsonMode && array:
				err = writeJSON(w, results)
			case a.flags.jsonMode:
				err = writeJSON(w, results[0])
			default:
				for _, res := range results {
					writeValidation(w, res)
				}
			}
			if err != nil {
				return sysError(err)
			}
			if !valid {
				return errInvalidRecord
			}
			return nil
		},
	}
}
