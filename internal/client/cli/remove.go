package cli

import (
	"context"
	"fmt"
)

// Remove drops one queued file by id. Removing an unknown id is a no-op.
func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: remove <id>")
		return nil
	}

	a.intake.Remove(args[0])
	a.tracker.Sync(a.intake.Files())

	fmt.Fprintf(a.out, "%d file(s) queued\n", a.intake.Len())
	return nil
}
