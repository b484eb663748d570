package cli

import (
	"context"
	"fmt"

	"github.com/inkveil/inkveil/internal/client/repositories/settings"
)

const introText = `How redaction works:
  1. Queue PDF files with 'add <path>'; folders are scanned recursively.
  2. Run 'start'. You will be asked for a directory to save results into;
     leave it empty to save each file as a separate download instead.
  3. The whole queue is submitted as one batch. Redacted copies keep the
     original names, prefixed with 'redacted_' in download mode.
  4. 'clear' removes everything, locally and on the service.
Type 'intro off' to hide this message on startup.`

// Intro shows the walkthrough, or with "off" disables it permanently.
func (a *App) Intro(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "off" {
		if err := a.settings.Set(ctx, settings.KeyOnboardingDismissed, "true"); err != nil {
			a.log.Warn(ctx, "saving onboarding preference failed", "error", err)
			return err
		}
		fmt.Fprintln(a.out, "intro hidden; run 'intro' to see it again")
		return nil
	}

	fmt.Fprintln(a.out, introText)
	return nil
}

// maybeShowIntro prints the walkthrough on startup unless the user
// dismissed it earlier.
func (a *App) maybeShowIntro(ctx context.Context) {
	v, err := a.settings.Get(ctx, settings.KeyOnboardingDismissed)
	if err == nil && v == "true" {
		return
	}
	fmt.Fprintln(a.out, introText)
}
