package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkveil/inkveil/internal/common"
)

// Start submits the queued batch and reports the aggregate outcome.
func (a *App) Start(ctx context.Context) error {
	if a.Mode == ModeOffline {
		fmt.Fprintln(a.out, "service is unreachable; try again when it is back")
		return nil
	}

	report, err := a.orch.Run(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorEmptyBatch) {
			fmt.Fprintln(a.out, "no files queued; use 'add <path>' first")
			return nil
		}
		fmt.Fprintf(a.out, "batch failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, report.Notice)
	fmt.Fprintf(a.out, "redaction finished in %s: %d completed, %d failed\n",
		report.Duration.Round(time.Millisecond), report.Summary.Completed, report.Summary.Failed)

	for _, f := range report.PersistFailures {
		fmt.Fprintf(a.out, "  could not save %s: %v\n", f.Outcome.Name, f.Err)
	}

	return nil
}
