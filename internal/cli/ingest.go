package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fieldkit/pkg/pipeline"
)

func newIngestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <entity> [file]",
		Short: "Run store records through mapping, defaults, validation and display",
		Long: "Ingest reads records named in the store's convention, converts them to\n" +
			"canonical names, fills defaults, validates them and renders every field.\n" +
			"It exits 1 when any record is invalid.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := args[0]
			recs, array, err := readRecords(cmd, inputPath(args))
			if err != nil {
				return err
			}

			results := make([]pipeline.Result, len(recs))
			valid := true
			for i, rec := range recs {
				results[i] = a.pipeline.Ingest(entity, rec)
				valid = valid && results[i].Validation.Valid
			}

			w := cmd.OutOrStdout()
			switch {
			case a.flags.jsonMode && array:
				err = writeJSON(w, results)
			case a.flags.jsonMode:
				err = writeJSON(w, results[0])
			default:
				for i, res := range results {
					if i > 0 {
						fmt.Fprintln(w)
					}
					err = a.writeResult(w, res)
					if err != nil {
						break
					}
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
