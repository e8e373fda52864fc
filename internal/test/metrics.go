package test

import (
	"sync"
	"time"

	"github.com/rushrr/courier/internal/domain/model"
)

// MetricsStub counts observations in memory.
type MetricsStub struct {
	mu          sync.Mutex
	Processed   map[bool]int
	Fetched     map[model.FetchSource]int
	NameSources map[model.NameSource]int
	Batches     []time.Duration
	Downstreams map[string]int
}

func (m *MetricsStub) init() {
	if m.Processed == nil {
		m.Processed = make(map[bool]int)
		m.Fetched = make(map[model.FetchSource]int)
		m.NameSources = make(map[model.NameSource]int)
		m.Downstreams = make(map[string]int)
	}
}

// OrderProcessed counts an order outcome.
func (m *MetricsStub) OrderProcessed(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	m.Processed[success]++
}

// OrderFetched counts a fetch by source.
func (m *MetricsStub) OrderFetched(source model.FetchSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	m.Fetched[source]++
}

// CustomerNameResolved counts a resolved name by source.
func (m *MetricsStub) CustomerNameResolved(source model.NameSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	m.NameSources[source]++
}

// ObserveBatch records a batch duration.
func (m *MetricsStub) ObserveBatch(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Batches = append(m.Batches, d)
}

// Downstream counts a logistics call as operation or operation:error.
func (m *MetricsStub) Downstream(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	if err != nil {
		operation += ":error"
	}
	m.Downstreams[operation]++
}
