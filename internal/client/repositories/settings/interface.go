// Package settings persists small client-side preferences, such as the
// flag recording that the user dismissed the onboarding walkthrough.
package settings

import "context"

// Repository is the injected settings provider: components read and
// write named values without knowing the persistence mechanism behind
// them.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Keys in use.
const (
	// KeyOnboardingDismissed is "true" after the user asked never to see
	// the onboarding guidance again. Read once at startup.
	KeyOnboardingDismissed = "onboarding_dismissed"
)
