package handlers

import (
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/Conceptual-Machines/magda-harmony/internal/presets"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/gin-gonic/gin"
)

// EngineStats counts engine calls per operation since process start
type EngineStats struct {
	mu  sync.Mutex
	ops map[string]*OperationStats
}

type OperationStats struct {
	Calls     int64   `json:"calls"`
	Errors    int64   `json:"errors"`
	AvgMicros float64 `json:"avg_us"`
	MaxMicros int64   `json:"max_us"`

	totalMicros int64
}

func NewEngineStats() *EngineStats {
	return &EngineStats{ops: make(map[string]*OperationStats)}
}

// Record is safe on a nil receiver so handlers can run without stats
func (s *EngineStats) Record(operation string, duration time.Duration, err error) {
	if s == nil {
		return
	}
	us := duration.Microseconds()

	s.mu.Lock()
	defer s.mu.Unlock()
	op, ok := s.ops[operation]
	if !ok {
		op = &OperationStats{}
		s.ops[operation] = op
	}
	op.Calls++
	if err != nil {
		op.Errors++
	}
	op.totalMicros += us
	op.AvgMicros = float64(op.totalMicros) / float64(op.Calls)
	if us > op.MaxMicros {
		op.MaxMicros = us
	}
}

// Snapshot copies the current counters
func (s *EngineStats) Snapshot() map[string]OperationStats {
	out := make(map[string]OperationStats)
	if s == nil {
		return out
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, op := range s.ops {
		out[name] = *op
	}
	return out
}

// MetricsHandler reports uptime, runtime and engine statistics for the process
type MetricsHandler struct {
	startTime time.Time
	version   string
	stats     *EngineStats
}

func NewMetricsHandler(version string, stats *EngineStats) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		stats:     stats,
	}
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// formatUptime formats the uptime duration with seconds rounded to 2 decimal places
func formatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % secondsPerMinute
	seconds := d.Seconds() - float64(hours*secondsPerHour) - float64(minutes*secondsPerMinute)

	if hours > 0 {
		return fmt.Sprintf("%dh%dm%.2fs", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm%.2fs", minutes, seconds)
	}
	return fmt.Sprintf("%.2fs", seconds)
}

type MetricsResponse struct {
	Status    string                 `json:"status"`
	Uptime    string                 `json:"uptime"`
	Timestamp string                 `json:"timestamp"`
	Version   string                 `json:"version"`
	StartTime string                 `json:"start_time"`
	System    SystemMetrics          `json:"system"`
	Engine    EngineMetrics          `json:"engine"`
	API       map[string]interface{} `json:"api"`
}

// EngineMetrics describes what the engine supports and how it has been used
type EngineMetrics struct {
	Modes      []theory.Mode             `json:"modes"`
	Layers     []theory.Layer            `json:"layers"`
	Presets    int                       `json:"presets"`
	Operations map[string]OperationStats `json:"operations"`
}

type SystemMetrics struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAllocMB   uint64 `json:"mem_alloc_mb"`
	MemTotalMB   uint64 `json:"mem_total_mb"`
	NumGC        uint32 `json:"num_gc"`
}

const (
	bytesToMB  = 1024 * 1024
	apiVersion = "v1"
)

func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)
	// the library is embedded, so this only fails on a bad build
	presetList, _ := presets.All()

	metrics := MetricsResponse{
		Status:    "healthy",
		Uptime:    formatUptime(uptime),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		StartTime: h.startTime.UTC().Format(time.RFC3339),
		System: SystemMetrics{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAllocMB:   m.Alloc / bytesToMB,
			MemTotalMB:   m.TotalAlloc / bytesToMB,
			NumGC:        m.NumGC,
		},
		Engine: EngineMetrics{
			Modes:      theory.Modes(),
			Layers:     theory.LayerOrder(),
			Presets:    len(presetList),
			Operations: h.stats.Snapshot(),
		},
		API: map[string]interface{}{
			"version": apiVersion,
		},
	}

	c.JSON(http.StatusOK, metrics)
}
