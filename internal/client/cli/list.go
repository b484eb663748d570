package cli

import (
	"context"
	"fmt"
)

// List prints the queued files with their ids and sizes.
func (a *App) List(ctx context.Context) error {
	files := a.intake.Files()
	if len(files) == 0 {
		fmt.Fprintln(a.out, "no files queued; use 'add <path>'")
		return nil
	}

	for _, f := range files {
		fmt.Fprintf(a.out, "  %s  %s (%s)\n", f.ID, f.DisplayName, f.SizeLabel)
	}
	return nil
}
