package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/estado/grid"
	"github.com/tsawler/estado/merge"
	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/profile"
	"github.com/tsawler/estado/summary"
)

// Job is one document to process. Grid is optional; without it the result
// carries an empty transaction section and a warning.
type Job struct {
	Name     string // identifies the job in logs and results
	Document *model.Document
	Grid     *grid.Grid
}

// Result is the outcome of one job. Err is set when the job was cancelled
// before dispatch; extraction itself degrades to warnings instead of
// failing.
type Result struct {
	RunID    string
	Name     string
	Document *model.MergedDocument
	Warnings []model.Warning
	Err      error
}

// Config holds runner configuration.
type Config struct {
	// Workers is the number of concurrent workers. Non-positive values
	// fall back to GOMAXPROCS.
	Workers int
	// Logger receives per-job progress. Nil means no logging.
	Logger *zap.Logger
	// Profiles are the candidate bank profiles for per-document detection.
	// With none configured every document uses the built-in default.
	Profiles []profile.Profile
}

// DefaultConfig returns the default runner configuration.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// Runner processes batches of statement documents concurrently.
type Runner struct {
	config Config
}

// NewRunner creates a runner with default configuration.
func NewRunner() *Runner {
	return NewRunnerWithConfig(DefaultConfig())
}

// NewRunnerWithConfig creates a runner with the given configuration.
func NewRunnerWithConfig(config Config) *Runner {
	if config.Workers < 1 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Runner{config: config}
}

// Run processes all jobs and returns one result per job, in job order.
// Jobs not yet dispatched when ctx is cancelled come back with ctx.Err();
// jobs already running finish normally.
func (r *Runner) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	workers := r.config.Workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	r.config.Logger.Info("Starting batch",
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", workers))

	type task struct {
		index int
		job   Job
	}
	tasks := make(chan task)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				results[t.index] = r.process(t.job)
			}
		}()
	}

	next := len(jobs)
dispatch:
	for i, job := range jobs {
		if ctx.Err() != nil {
			next = i
			break
		}
		select {
		case <-ctx.Done():
			next = i
			break dispatch
		case tasks <- task{index: i, job: job}:
		}
	}
	close(tasks)
	wg.Wait()

	for i := next; i < len(jobs); i++ {
		results[i] = Result{RunID: uuid.NewString(), Name: jobs[i].Name, Err: ctx.Err()}
		r.config.Logger.Warn("Job cancelled before dispatch",
			zap.String("run_id", results[i].RunID),
			zap.String("job", jobs[i].Name))
	}
	return results
}

// process runs extraction and merge for a single job.
func (r *Runner) process(job Job) Result {
	runID := uuid.NewString()
	log := r.config.Logger.With(
		zap.String("run_id", runID),
		zap.String("job", job.Name))

	prof := profile.Default()
	if job.Document != nil {
		prof = profile.Detect(job.Document.Text(), r.config.Profiles)
	}

	cfg := summary.DefaultConfig()
	cfg.Profile = prof
	composer := summary.NewComposerWithConfig(cfg)

	record, warnings := composer.Compose(job.Document)
	doc, mergeWarnings := merge.BuildDocument(composer.Metadata(job.Document), record, job.Grid)
	warnings = append(warnings, mergeWarnings...)

	log.Info("Document processed",
		zap.String("bank", prof.Name),
		zap.Int("rows", job.Grid.RowCount()),
		zap.Int("warnings", len(warnings)))

	return Result{
		RunID:    runID,
		Name:     job.Name,
		Document: doc,
		Warnings: warnings,
	}
}
