// Package orchestrator drives one batch redaction cycle end to end:
// resolve the output target, submit the batch, correlate outcomes,
// persist artifacts and record the run.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inkveil/inkveil/internal/client/client"
	"github.com/inkveil/inkveil/internal/client/intake"
	"github.com/inkveil/inkveil/internal/client/models"
	"github.com/inkveil/inkveil/internal/client/repositories/history"
	"github.com/inkveil/inkveil/internal/client/sink"
	"github.com/inkveil/inkveil/internal/client/tracker"
	"github.com/inkveil/inkveil/internal/common"
	"github.com/inkveil/inkveil/internal/logging"
)

const (
	// simulatedStep is how many percent each feedback tick adds while a
	// batch is in flight.
	simulatedStep = 5

	defaultProgressInterval = 500 * time.Millisecond
)

// Report is the aggregate result of one finished cycle, intended for
// the presentation layer.
type Report struct {
	Summary   models.BatchSummary
	Mode      sink.Mode
	OutputDir string

	// Notice explains the active output mode to the user.
	Notice string

	// PersistFailures lists artifacts that could not be saved. The
	// batch itself still finished.
	PersistFailures []sink.Failure

	Duration time.Duration
}

// Orchestrator wires intake, tracking, submission and persistence into
// a single Run/Clear surface for the CLI.
type Orchestrator struct {
	client   client.Client
	intake   *intake.Intake
	tracker  *tracker.Tracker
	resolver *sink.Resolver
	history  history.Repository
	log      logging.Logger

	// ProgressInterval controls the simulated-progress tick while a
	// submission is in flight.
	ProgressInterval time.Duration
}

func New(c client.Client, in *intake.Intake, tr *tracker.Tracker, res *sink.Resolver, hist history.Repository, log logging.Logger) *Orchestrator {
	return &Orchestrator{
		client:           c,
		intake:           in,
		tracker:          tr,
		resolver:         res,
		history:          hist,
		log:              log,
		ProgressInterval: defaultProgressInterval,
	}
}

// Run executes one full cycle over the current intake contents.
//
// Order of operations: the output target is resolved before anything is
// submitted, so a cancelled consent prompt costs no network traffic.
// Submission failures fail every in-flight file; persistence failures
// are collected but never undo a completed status.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	files := o.intake.Files()
	if len(files) == 0 {
		return nil, common.ErrorEmptyBatch
	}

	target, notice, err := o.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving output target: %w", err)
	}
	o.log.Info(ctx, notice)

	o.tracker.Sync(files)
	gen, err := o.tracker.BeginSubmission()
	if err != nil {
		return nil, fmt.Errorf("starting submission: %w", err)
	}

	started := time.Now()

	stopTicks := o.startProgressTicks(ctx)
	outcomes, err := o.client.RedactBatch(ctx, files)
	stopTicks()

	if err != nil {
		o.tracker.FailAll(gen, err.Error())
		o.recordRun(ctx, target, started)
		return nil, fmt.Errorf("submitting batch: %w", err)
	}

	o.tracker.Resolve(gen, outcomes)

	failures := sink.PersistAll(ctx, target, outcomes)
	for _, f := range failures {
		o.log.Warn(ctx, "artifact not persisted", "name", f.Outcome.Name, "error", f.Err)
	}

	o.recordRun(ctx, target, started)

	return &Report{
		Summary:         o.tracker.Summary(),
		Mode:            target.Mode(),
		OutputDir:       target.Location(),
		Notice:          notice,
		PersistFailures: failures,
		Duration:        time.Since(started),
	}, nil
}

// Clear discards the whole batch: the service is asked to drop its
// artifacts, then local state is reset regardless of the service
// answer.
func (o *Orchestrator) Clear(ctx context.Context) {
	if err := o.client.ClearAll(ctx); err != nil {
		o.log.Warn(ctx, "service clear failed, resetting locally anyway", "error", err)
	}
	o.intake.Reset()
	o.tracker.Reset()
}

// startProgressTicks advances simulated per-file progress until the
// returned stop function is called. Real completion comes only from the
// service response, never from these ticks.
func (o *Orchestrator) startProgressTicks(ctx context.Context) func() {
	interval := o.ProgressInterval
	if interval <= 0 {
		interval = defaultProgressInterval
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				o.tracker.AdvanceSimulated(simulatedStep)
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return func() { close(done) }
}

// recordRun persists the finished cycle to local history. History is
// optional and best effort; a storage error never fails the cycle.
func (o *Orchestrator) recordRun(ctx context.Context, target sink.Sink, started time.Time) {
	if o.history == nil {
		return
	}

	summary := o.tracker.Summary()
	run := &history.BatchRun{
		ID:         uuid.NewString(),
		StartedAt:  started,
		FinishedAt: time.Now(),
		Mode:       string(target.Mode()),
		OutputDir:  target.Location(),
		Total:      summary.Total,
		Completed:  summary.Completed,
		Failed:     summary.Failed,
	}

	for _, r := range o.tracker.Records() {
		fr := history.FileResult{
			FileID: r.FileID,
			Name:   r.Filename,
			Status: string(r.Status),
			Error:  r.ErrorMessage,
		}
		if r.Outcome != nil {
			fr.Artifact = r.Outcome.Name
		}
		run.Files = append(run.Files, fr)
	}

	if err := o.history.Record(ctx, run); err != nil {
		o.log.Warn(ctx, "recording run history failed", "error", err)
	}
}
