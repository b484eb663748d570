package cli

import (
	"context"
	"fmt"
	"time"
)

const historyLimit = 10

// History prints the most recent finished runs, newest first.
func (a *App) History(ctx context.Context) error {
	runs, err := a.history.Recent(ctx, historyLimit)
	if err != nil {
		a.log.Warn(ctx, "reading run history failed", "error", err)
		fmt.Fprintln(a.out, "could not read run history")
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(a.out, "no finished runs yet")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(a.out, "  %s  %d files: %d completed, %d failed  [%s -> %s]\n",
			r.FinishedAt.Local().Format(time.DateTime), r.Total, r.Completed, r.Failed, r.Mode, r.OutputDir)
	}
	return nil
}
