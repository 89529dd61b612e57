// Package report writes the accumulated slide answers to the output
// artifact. The legacy format reproduces the historical output exactly:
// a .json extension but annotated plain-text lines, one block per slide.
// The json format writes an actual JSON array of result strings.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	FormatLegacy = "legacy"
	FormatJSON   = "json"
)

// Report is the outcome of one summarization run: one result string per
// slide, in slide order, plus timing metadata.
type Report struct {
	RunID   uuid.UUID
	Results []string
	Elapsed time.Duration
}

// New stamps a run ID onto the collected results.
func New(results []string, elapsed time.Duration) Report {
	return Report{
		RunID:   uuid.New(),
		Results: results,
		Elapsed: elapsed,
	}
}

// OutputPath derives the artifact name from the input path: the input's
// base name with its extension replaced by .json, in the working directory.
func OutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

// Write renders the report to path in the given format.
func Write(path string, rep Report, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	switch format {
	case FormatJSON:
		err = writeJSON(f, rep)
	default:
		err = writeLegacy(f, rep)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	return f.Close()
}

// writeLegacy emits one "chat GPT answer <n> <text> \n\n" block per slide,
// 1-indexed, including the trailing space the original produced.
func writeLegacy(w io.Writer, rep Report) error {
	for i, result := range rep.Results {
		if _, err := fmt.Fprintf(w, "chat GPT answer %d %s \n\n", i+1, result); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep.Results)
}
