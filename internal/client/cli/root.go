package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.Mode != "" {
		s = string(a.Mode)
	}
	if n := a.intake.Len(); n > 0 {
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%d queued", n)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Inkveil CLI (type 'help' for commands)")

	a.maybeShowIntro(ctx)

	go func() {
		a.StartHealthWatcher(ctx, a.config.HealthCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
