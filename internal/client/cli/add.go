package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/inkveil/inkveil/internal/client/intake"
)

// Add queues files or whole folders for the next batch. Non-PDF entries
// are dropped silently, matching the drag-and-drop behavior.
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: add <path ...>")
		return nil
	}

	var cands []intake.Candidate
	for _, p := range args {
		info, err := os.Stat(p)
		if err != nil {
			fmt.Fprintf(a.out, "skipping %s: %v\n", p, err)
			continue
		}
		if info.IsDir() {
			dirCands, err := intake.CollectDir(p)
			if err != nil {
				fmt.Fprintf(a.out, "skipping %s: %v\n", p, err)
				continue
			}
			cands = append(cands, dirCands...)
			continue
		}
		cands = append(cands, intake.FromPath(p))
	}

	accepted, err := a.intake.Add(cands...)
	if err != nil {
		a.log.Warn(ctx, "some files could not be read", "error", err)
		fmt.Fprintln(a.out, "some files could not be read and were skipped")
	}

	for _, f := range accepted {
		fmt.Fprintf(a.out, "  %s  %s (%s)\n", f.ID, f.DisplayName, f.SizeLabel)
	}
	fmt.Fprintf(a.out, "queued %d file(s), %d total\n", len(accepted), a.intake.Len())

	a.tracker.Sync(a.intake.Files())
	return nil
}
