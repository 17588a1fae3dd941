package batch

import (
	"sync"
	"time"
)

// ProgressTracker tracks a batch run
type ProgressTracker struct {
	mu sync.RWMutex

	StartedAt      time.Time
	FinishedAt     time.Time
	TotalVehicles  int
	Processed      int
	Success        int
	Failed         int
	CurrentVehicle int
	LastError      string
}

// NewProgressTracker creates a new progress tracker
func NewProgressTracker(totalVehicles int) *ProgressTracker {
	return &ProgressTracker{
		StartedAt:     time.Now(),
		TotalVehicles: totalVehicles,
	}
}

// SetCurrentVehicle sets the vehicle being processed
func (p *ProgressTracker) SetCurrentVehicle(vehicleID int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.CurrentVehicle = vehicleID
}

// IncrementSuccess counts a processed vehicle that generated its URLs
func (p *ProgressTracker) IncrementSuccess() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Processed++
	p.Success++
}

// IncrementFailed counts a processed vehicle that failed and keeps the error
func (p *ProgressTracker) IncrementFailed(err string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Processed++
	p.Failed++
	p.LastError = err
}

// Finish marks the run as done
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.FinishedAt = time.Now()
}

// GetSnapshot returns a snapshot of current progress
func (p *ProgressTracker) GetSnapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	status := "running"
	end := time.Now()
	if !p.FinishedAt.IsZero() {
		status = "finished"
		end = p.FinishedAt
	}
	elapsed := end.Sub(p.StartedAt)

	percentage := 0.0
	if p.TotalVehicles > 0 {
		percentage = (float64(p.Processed) / float64(p.TotalVehicles)) * 100
	}

	var remaining time.Duration
	if p.Processed > 0 && status == "running" {
		avgPerVehicle := elapsed / time.Duration(p.Processed)
		remaining = avgPerVehicle * time.Duration(p.TotalVehicles-p.Processed)
	}

	return ProgressSnapshot{
		Status:         status,
		StartedAt:      p.StartedAt,
		Elapsed:        elapsed,
		TotalVehicles:  p.TotalVehicles,
		Processed:      p.Processed,
		Success:        p.Success,
		Failed:         p.Failed,
		Percentage:     percentage,
		CurrentVehicle: p.CurrentVehicle,
		LastError:      p.LastError,
		Remaining:      remaining,
	}
}

// ProgressSnapshot is a point-in-time snapshot of progress
type ProgressSnapshot struct {
	Status         string        `json:"status"`
	StartedAt      time.Time     `json:"started_at"`
	Elapsed        time.Duration `json:"elapsed"`
	TotalVehicles  int           `json:"total_vehicles"`
	Processed      int           `json:"processed"`
	Success        int           `json:"success"`
	Failed         int           `json:"failed"`
	Percentage     float64       `json:"percentage"`
	CurrentVehicle int           `json:"current_vehicle"`
	LastError      string        `json:"last_error,omitempty"`
	Remaining      time.Duration `json:"remaining"`
}
