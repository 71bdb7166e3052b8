package provision

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Result records the outcome for one site/folder/document.
type Result struct {
	Index      int    `json:"index"`
	ID         string `json:"id,omitempty"`
	BaseURL    string `json:"baseURL,omitempty"`
	BaseDocURL string `json:"baseDocURL,omitempty"`

	// What happened: "created", "exists", "reconciled", "unchanged",
	// "cloned", "kept", "skipped", ...
	Action string `json:"action,omitempty"`

	Error string `json:"error,omitempty"`
}

func (r Result) OK() bool {
	return r.Error == ""
}

// Failed wraps an error into a Result; the run records it and moves on.
func Failed(err error) Result {
	return Result{Error: err.Error()}
}

type Summary struct {
	Total     int       `json:"total"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	StartedAt time.Time `json:"startedAt"`
	Duration  string    `json:"duration"`
}

// Report is the {summary, results} JSON artifact.
type Report struct {
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}

// SitesReport is the {summary, sites} variant used by the export command.
type SitesReport struct {
	Summary Summary  `json:"summary"`
	Sites   []Result `json:"sites"`
}

// Summarize tallies the results of a run.
func Summarize(startedAt time.Time, results []Result) Summary {
	summary := Summary{
		Total:     len(results),
		StartedAt: startedAt,
		Duration:  time.Since(startedAt).Round(time.Millisecond).String(),
	}
	for _, result := range results {
		if result.OK() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// WriteJSON writes any of the report shapes, pretty-printed.
func WriteJSON(path string, report any) error {
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("provision: couldn't marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(encoded, '\n'), 0644); err != nil {
		return fmt.Errorf("provision: couldn't write report %s: %w", path, err)
	}

	return nil
}

// WriteCSV writes the id,baseURL,baseDocURL audit sheet.
func WriteCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("provision: couldn't create CSV file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "baseURL", "baseDocURL"}); err != nil {
		return fmt.Errorf("provision: couldn't write CSV header: %w", err)
	}

	for _, result := range results {
		if err := w.Write([]string{result.ID, result.BaseURL, result.BaseDocURL}); err != nil {
			return fmt.Errorf("provision: couldn't write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("provision: couldn't flush CSV %s: %w", path, err)
	}

	return nil
}
