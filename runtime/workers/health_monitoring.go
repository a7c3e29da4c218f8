package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthSnapshot is the last sample of the server process.
type HealthSnapshot struct {
	At             time.Time
	PID            int32
	Status         string
	CPUPercent     float64
	RSSBytes       uint64
	Goroutines     int
	ActiveLedgers  int
	ActiveClocks   int
	WorkerRestarts int64
}

// HealthMonitoringWorker samples the process every interval. Gauges lets the
// caller add in-process figures, such as ledger count, to each sample.
type HealthMonitoringWorker struct {
	log      *slog.Logger
	interval time.Duration
	gauges   func(*HealthSnapshot)
	latest   atomic.Pointer[HealthSnapshot]
}

func NewHealthMonitoringWorker(log *slog.Logger, interval time.Duration, gauges func(*HealthSnapshot)) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{log: log, interval: interval, gauges: gauges}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			snapshot, err := sample(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			if w.gauges != nil {
				w.gauges(&snapshot)
			}
			w.latest.Store(&snapshot)
			w.log.Debug("Health sample",
				"cpu_percent", snapshot.CPUPercent,
				"rss_bytes", snapshot.RSSBytes,
				"goroutines", snapshot.Goroutines,
				"ledgers", snapshot.ActiveLedgers,
				"clocks", snapshot.ActiveClocks)
		}
	}
}

// Latest returns the zero snapshot until the first tick.
func (w *HealthMonitoringWorker) Latest() HealthSnapshot {
	if s := w.latest.Load(); s != nil {
		return *s
	}
	return HealthSnapshot{}
}

func sample(p *process.Process) (HealthSnapshot, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return HealthSnapshot{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return HealthSnapshot{}, err
	}
	status, err := p.Status()
	if err != nil {
		return HealthSnapshot{}, err
	}
	return HealthSnapshot{
		At:         time.Now().UTC(),
		PID:        p.Pid,
		Status:     status,
		CPUPercent: cpuPercent,
		RSSBytes:   memInfo.RSS,
		Goroutines: runtime.NumGoroutine(),
	}, nil
}
