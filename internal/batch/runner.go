// Package batch generates the URL sets of many vehicles with a pool of
// workers.
package batch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"vitrine-url-api/internal/metrics"
	"vitrine-url-api/internal/model"
)

var ErrEmptyBatch = errors.New("no vehicles to process")

// Generator produces the URL set of one vehicle
type Generator interface {
	Generate(ctx context.Context, req model.URLGenerationRequest) (*model.GenerationResponse, error)
}

type Runner struct {
	generator Generator
	workers   int
	logger    *slog.Logger

	mu       sync.Mutex
	progress *ProgressTracker
}

func NewRunner(gen Generator, workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		generator: gen,
		workers:   workers,
		logger:    logger,
	}
}

type job struct {
	index   int
	vehicle model.URLGenerationRequest
}

// Run generates every vehicle and returns one item per vehicle in input
// order. A failed vehicle is reported in its item and does not stop the run.
// On context cancellation the partial response is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, vehicles []model.URLGenerationRequest) (*model.BatchResponse, error) {
	if len(vehicles) == 0 {
		return nil, ErrEmptyBatch
	}

	progress := NewProgressTracker(len(vehicles))
	r.mu.Lock()
	r.progress = progress
	r.mu.Unlock()

	items := make([]model.BatchItem, len(vehicles))
	for i, v := range vehicles {
		items[i].VehicleID = v.VehicleID
	}

	workers := min(r.workers, len(vehicles))

	// Create work queue
	workQueue := make(chan job, workers*2)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go r.worker(ctx, i, workQueue, items, progress, &wg)
	}

	r.logger.Info("starting batch generation",
		"vehicles", len(vehicles),
		"workers", workers,
	)

	var runErr error
feed:
	for i, vehicle := range vehicles {
		select {
		case <-ctx.Done():
			r.logger.Info("context cancelled, stopping batch")
			runErr = ctx.Err()
			break feed
		case workQueue <- job{index: i, vehicle: vehicle}:
		}
	}

	close(workQueue)
	wg.Wait()
	progress.Finish()

	if runErr != nil {
		for i := range items {
			if items[i].Result == nil && items[i].Error == "" {
				items[i].Error = runErr.Error()
			}
		}
	}

	snapshot := progress.GetSnapshot()
	r.logger.Info("batch generation finished",
		"processed", snapshot.Processed,
		"success", snapshot.Success,
		"failed", snapshot.Failed,
		"elapsed", snapshot.Elapsed.String(),
	)

	return &model.BatchResponse{
		Items:     items,
		Total:     len(vehicles),
		Success:   snapshot.Success,
		Failed:    snapshot.Failed,
		ElapsedMs: snapshot.Elapsed.Milliseconds(),
	}, runErr
}

// Progress returns the snapshot of the latest run
func (r *Runner) Progress() (ProgressSnapshot, bool) {
	r.mu.Lock()
	progress := r.progress
	r.mu.Unlock()

	if progress == nil {
		return ProgressSnapshot{}, false
	}
	return progress.GetSnapshot(), true
}

// worker processes vehicles from the work queue. Each job owns its slot in
// items, so no locking is needed there.
func (r *Runner) worker(ctx context.Context, id int, queue <-chan job, items []model.BatchItem, progress *ProgressTracker, wg *sync.WaitGroup) {
	defer wg.Done()

	processedCount := 0
	for j := range queue {
		if ctx.Err() != nil {
			items[j.index].Error = ctx.Err().Error()
			continue
		}

		progress.SetCurrentVehicle(j.vehicle.VehicleID)

		resp, err := r.generator.Generate(ctx, j.vehicle)
		if err != nil {
			items[j.index].Error = err.Error()
			progress.IncrementFailed(err.Error())
			metrics.BatchVehiclesTotal.WithLabelValues(metrics.OutcomeError).Inc()
			r.logger.Warn("vehicle generation failed",
				"worker_id", id,
				"vehicle_id", j.vehicle.VehicleID,
				"error", err,
			)
		} else {
			items[j.index].Result = resp
			progress.IncrementSuccess()
			metrics.BatchVehiclesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		}
		processedCount++
	}

	r.logger.Debug("worker finished", "worker_id", id, "total_processed", processedCount)
}
