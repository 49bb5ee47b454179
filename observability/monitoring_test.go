package observability

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func Test_Monitoring_Snapshot_Counts_And_Rate(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default(), time.Second)
	start := mm.lastCheck

	// Given some activity
	for i := 0; i < 10; i++ {
		mm.RecordMessage(fmt.Sprintf("1-%d", i), "general")
	}
	mm.IncrPublishFailure("room")
	mm.IncrRateLimited("http")
	mm.SessionOpened()
	mm.SessionOpened()
	mm.SessionClosed()

	// When two seconds worth of stats are computed
	mm.updateStats(start.Add(2 * time.Second))
	stats := mm.GetLatest()

	// Then counters and rate are reported
	req.Equal(uint64(10), stats.MessagesTotal)
	req.InDelta(5.0, stats.MessagesPerSec, 0.001)
	req.Equal(uint64(1), stats.PublishFailures)
	req.Equal(uint64(1), stats.RateLimited)
	req.Equal(int64(1), stats.Sessions)

	// And the window restarts
	mm.updateStats(start.Add(3 * time.Second))
	req.Zero(mm.GetLatest().MessagesPerSec)
}

func Test_Monitoring_Recent_Feed_Is_Bounded_Newest_First(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default(), time.Second)

	for i := 0; i < maxRecentMessages+5; i++ {
		mm.RecordMessage(fmt.Sprint(i), "general")
	}

	recent := mm.GetLatest().RecentMessages
	req.Len(recent, maxRecentMessages)
	req.Equal(fmt.Sprint(maxRecentMessages+4), recent[0].ID)
}

func Test_Monitoring_Presence_Feeds_Metrics(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default(), time.Second)
	online := testutil.ToFloat64(PresenceTransitions.WithLabelValues("online"))
	sweepErrors := testutil.ToFloat64(PresenceSweepErrors)

	mm.IncrPresenceTransition("online")
	mm.IncrPresenceTransition("online")
	mm.IncrPresenceSweepError()

	req.Equal(online+2, testutil.ToFloat64(PresenceTransitions.WithLabelValues("online")))
	req.Equal(sweepErrors+1, testutil.ToFloat64(PresenceSweepErrors))
}
