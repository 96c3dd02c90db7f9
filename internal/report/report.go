package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/leengari/listdiff/internal/config"
	"github.com/leengari/listdiff/internal/engine"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Print writes the report to w in the given format
func Print(w io.Writer, rep *engine.Report, format string) error {
	switch format {
	case config.FormatJSON:
		return PrintJSON(w, rep)
	case config.FormatText, "":
		return PrintText(w, rep)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// PrintText writes one aligned "label = value" line per statistic
func PrintText(w io.Writer, rep *engine.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "difference\t= %d\n", rep.Difference)
	fmt.Fprintf(tw, "sim_score\t= %d\n", rep.SimScore)
	return tw.Flush()
}

// PrintJSON writes the report as a single JSON object
func PrintJSON(w io.Writer, rep *engine.Report) error {
	return json.NewEncoder(w).Encode(rep)
}
