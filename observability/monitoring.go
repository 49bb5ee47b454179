package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

const maxRecentMessages = 20

// RecentMessageInfo is one entry of the live feed shown on /stats.
type RecentMessageInfo struct {
	ID        string `json:"id"`
	Room      string `json:"room"`
	Timestamp string `json:"timestamp"`
}

// MonitoringStats is the JSON snapshot served on /stats.
type MonitoringStats struct {
	// --- MESSAGING ---
	MessagesPerSec  float64 `json:"messages_per_sec"`
	MessagesTotal   uint64  `json:"messages_total"`
	PublishFailures uint64  `json:"publish_failures"`
	RateLimited     uint64  `json:"rate_limited"`

	// --- SESSIONS ---
	Sessions int64 `json:"sessions"`

	// --- SYSTEM ---
	AllocMemMb     uint64              `json:"alloc_mem_mb"`
	NumGC          uint32              `json:"num_gc"`
	RecentMessages []RecentMessageInfo `json:"recent_messages"`
}

// MonitoringManager aggregates live counters into a periodic snapshot.
// It backs /stats, Prometheus holds the series.
type MonitoringManager struct {
	log         *slog.Logger
	interval    time.Duration
	mu          sync.RWMutex
	latestStats MonitoringStats

	messagesWindow  uint64
	messagesTotal   uint64
	publishFailures uint64
	rateLimited     uint64
	sessions        int64
	lastCheck       time.Time
}

func NewMonitoringManager(log *slog.Logger, interval time.Duration) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		interval:  interval,
		lastCheck: time.Now(),
		latestStats: MonitoringStats{
			RecentMessages: make([]RecentMessageInfo, 0),
		},
	}
}

// RecordMessage counts a persisted message and adds it to the recent feed.
func (mm *MonitoringManager) RecordMessage(id, room string) {
	atomic.AddUint64(&mm.messagesWindow, 1)
	atomic.AddUint64(&mm.messagesTotal, 1)
	MessagesSent.Inc()

	mm.mu.Lock()
	defer mm.mu.Unlock()
	info := RecentMessageInfo{ID: id, Room: room, Timestamp: time.Now().Format("15:04:05")}
	mm.latestStats.RecentMessages = append([]RecentMessageInfo{info}, mm.latestStats.RecentMessages...)
	if len(mm.latestStats.RecentMessages) > maxRecentMessages {
		mm.latestStats.RecentMessages = mm.latestStats.RecentMessages[:maxRecentMessages]
	}
}

func (mm *MonitoringManager) IncrPublishFailure(kind string) {
	atomic.AddUint64(&mm.publishFailures, 1)
	PublishFailures.WithLabelValues(kind).Inc()
}

func (mm *MonitoringManager) IncrPresenceTransition(status string) {
	PresenceTransitions.WithLabelValues(status).Inc()
}

func (mm *MonitoringManager) IncrPresenceSweepError() {
	PresenceSweepErrors.Inc()
}

func (mm *MonitoringManager) IncrRateLimited(endpoint string) {
	atomic.AddUint64(&mm.rateLimited, 1)
	RateLimitHits.WithLabelValues(endpoint).Inc()
}

func (mm *MonitoringManager) SessionOpened() {
	atomic.AddInt64(&mm.sessions, 1)
	ActiveSessions.Inc()
}

func (mm *MonitoringManager) SessionClosed() {
	atomic.AddInt64(&mm.sessions, -1)
	ActiveSessions.Dec()
}

// Run refreshes the snapshot every interval until ctx is done.
func (mm *MonitoringManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Context done, stopping monitoring")
			return nil
		case <-ticker.C:
			mm.updateStats(time.Now())
		}
	}
}

func (mm *MonitoringManager) updateStats(now time.Time) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	duration := now.Sub(mm.lastCheck).Seconds()
	window := atomic.SwapUint64(&mm.messagesWindow, 0)
	if duration > 0 {
		mm.latestStats.MessagesPerSec = float64(window) / duration
	}
	mm.lastCheck = now

	mm.latestStats.MessagesTotal = atomic.LoadUint64(&mm.messagesTotal)
	mm.latestStats.PublishFailures = atomic.LoadUint64(&mm.publishFailures)
	mm.latestStats.RateLimited = atomic.LoadUint64(&mm.rateLimited)
	mm.latestStats.Sessions = atomic.LoadInt64(&mm.sessions)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC

	mm.log.Debug("Stats updated",
		"messages_per_sec", mm.latestStats.MessagesPerSec,
		"messages_total", mm.latestStats.MessagesTotal,
		"sessions", mm.latestStats.Sessions,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

// GetLatest returns a copy of the last snapshot.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	stats := mm.latestStats
	stats.RecentMessages = append([]RecentMessageInfo(nil), mm.latestStats.RecentMessages...)
	return stats
}
