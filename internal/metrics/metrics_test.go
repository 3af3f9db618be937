package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// fakeStats implements PoolStats with fixed values.
type fakeStats struct {
	total, idle, acquired int32
}

func (s fakeStats) TotalConns() int32    { return s.total }
func (s fakeStats) IdleConns() int32     { return s.idle }
func (s fakeStats) AcquiredConns() int32 { return s.acquired }

// fakeProvider implements PoolStatsProvider.
type fakeProvider struct {
	stats fakeStats
}

func (p *fakeProvider) Stat() PoolStats { return p.stats }

func TestPoolStatsCollector(t *testing.T) {
	provider := &fakeProvider{stats: fakeStats{total: 10, idle: 7, acquired: 3}}
	collector := NewPoolStatsCollectorWithProvider(provider)

	collector.Start(time.Hour) // collects once immediately
	collector.Stop()

	assert.Equal(t, 10.0, testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, 7.0, testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, 3.0, testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

func TestObserveMutation(t *testing.T) {
	beforeSuccess := testutil.ToFloat64(ArticleMutationsTotal.WithLabelValues("publish", "success"))
	beforeError := testutil.ToFloat64(ArticleMutationsTotal.WithLabelValues("publish", "error"))

	ObserveMutation("publish", nil)
	ObserveMutation("publish", errors.New("boom"))

	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(ArticleMutationsTotal.WithLabelValues("publish", "success")))
	assert.Equal(t, beforeError+1, testutil.ToFloat64(ArticleMutationsTotal.WithLabelValues("publish", "error")))
}
