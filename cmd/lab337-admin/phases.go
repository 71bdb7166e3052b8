/*
Copyright © 2025 summitops
*/
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/summitops/lab337-admin/internal/termfmt"
	"github.com/summitops/lab337-admin/provision"
)

// phaseStarted is stamped by runPhase so finishPhase can report the duration.
var phaseStarted time.Time

func runPhase(ctx context.Context, phase string, indexes []int, fn func(ctx context.Context, index int) provision.Result) ([]provision.Result, error) {
	phaseStarted = time.Now()
	return newRunner().Run(ctx, phase, indexes, fn)
}

// finishPhase prints the per-phase summary, lists the failures, and writes
// the optional JSON report.  A phase with failures still exits zero - the
// operator reruns the script, existing items get skipped.
func finishPhase(phase string, results []provision.Result, reportPath string) error {
	summary := provision.Summarize(phaseStarted, results)

	fmt.Printf("%s: %d processed, %d ok, %d failed (%s)\n",
		termfmt.Bold().V(phase), summary.Total, summary.Succeeded, summary.Failed, summary.Duration)

	for _, result := range results {
		if !result.OK() {
			fmt.Printf("  %s %03d %s: %s\n",
				termfmt.Fg(204, 0, 0, termfmt.Red).V("FAILED"), result.Index, result.BaseURL, result.Error)
		}
	}

	if reportPath != "" {
		report := provision.Report{Summary: summary, Results: results}
		if err := provision.WriteJSON(reportPath, report); err != nil {
			return fmt.Errorf("cmd: couldn't write report: %w", err)
		}
		fmt.Printf("report written to %s\n", reportPath)
	}

	return nil
}
