package cli

import (
	"context"
	"fmt"

	"github.com/inkveil/inkveil/internal/client/models"
)

// Status prints per-file progress and the batch summary.
func (a *App) Status(ctx context.Context) error {
	records := a.tracker.Records()
	if len(records) == 0 {
		fmt.Fprintln(a.out, "nothing tracked yet")
		return nil
	}

	for _, r := range records {
		switch r.Status {
		case models.StatusFailed:
			fmt.Fprintf(a.out, "  %-40s %s: %s\n", r.Filename, r.Status, r.ErrorMessage)
		case models.StatusProcessing:
			fmt.Fprintf(a.out, "  %-40s %s (%d%%)\n", r.Filename, r.Status, r.Percent)
		default:
			fmt.Fprintf(a.out, "  %-40s %s\n", r.Filename, r.Status)
		}
	}

	s := a.tracker.Summary()
	fmt.Fprintf(a.out, "total %d: %d pending, %d processing, %d completed, %d failed\n",
		s.Total, s.Pending, s.Processing, s.Completed, s.Failed)
	return nil
}
