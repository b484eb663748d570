package cli

import (
	"context"
	"fmt"
)

// Clear discards the batch locally and asks the service to drop its
// artifacts. The local reset never waits on the service.
func (a *App) Clear(ctx context.Context) error {
	a.orch.Clear(ctx)
	fmt.Fprintln(a.out, "batch cleared")
	return nil
}
