package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

var errNoInput = errors.New("no JSON input")

// readRecords reads a JSON object or an array of objects from the file
// named by path, or from the command's stdin when path is empty or "-".
// The second result reports whether the input was an array.
func readRecords(cmd *cobra.Command, path string) ([]types.Record, bool, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, false, sysError(fmt.Errorf("read input: %w", err))
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, false, errNoInput
	}
	if data[0] == '[' {
		var recs []types.Record
		if err := json.Unmarshal(data, &recs); err != nil {
			return nil, true, fmt.Errorf("parse JSON array: %w", err)
		}
		return recs, true, nil
	}
	var rec types.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, fmt.Errorf("parse JSON object: %w", err)
	}
	return []types.Record{rec}, false, nil
}

// inputPath returns the optional file argument following the entity.
func inputPath(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}
