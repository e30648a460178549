package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	app "github.com/okian/suisen/internal/app"
)

// jsonOutput is the envelope written in json mode.
type jsonOutput struct {
	RunID           string `json:"run_id"`
	Recommendations any    `json:"recommendations"`
}

// render writes the recommendation list to w in the requested format.
func render(w io.Writer, format string, result *app.Result) error {
	if format == "json" {
		out := jsonOutput{RunID: result.RunID, Recommendations: result.Recommendations}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(result.Recommendations) == 0 {
		_, err := fmt.Fprintln(w, "No items to recommend: dataset is empty after cleaning.")
		return err
	}

	fmt.Fprintln(w, "Top-N baseline (by mean rating):")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tITEM\tMEAN\tRATINGS")
	for _, rec := range result.Recommendations {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%d\n", rec.Rank, rec.ItemID, rec.MeanRating, rec.Ratings)
	}
	return tw.Flush()
}
