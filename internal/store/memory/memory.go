package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hagglebot/hagglebot/internal/store"
)

// MemoryStore is the default store when no database is configured. State
// lives for the life of the process only.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[string]store.Analysis
	calls    map[string]store.CallRecord
}

func New() *MemoryStore {
	return &MemoryStore{
		analyses: map[string]store.Analysis{},
		calls:    map[string]store.CallRecord{},
	}
}

func (m *MemoryStore) CreateAnalysis(ctx context.Context, analysis store.Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.analyses[analysis.ID]; exists {
		return fmt.Errorf("analysis already exists: %s", analysis.ID)
	}
	m.analyses[analysis.ID] = analysis
	return nil
}

func (m *MemoryStore) GetAnalysis(ctx context.Context, analysisID string) (*store.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	analysis, ok := m.analyses[analysisID]
	if !ok {
		return nil, nil
	}
	cloned := analysis
	return &cloned, nil
}

func (m *MemoryStore) ListAnalyses(ctx context.Context) ([]store.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := make([]store.Analysis, 0, len(m.analyses))
	for _, analysis := range m.analyses {
		results = append(results, analysis)
	}
	sort.Slice(results, func(i, j int) bool {
		return parseTime(results[i].CreatedAt).After(parseTime(results[j].CreatedAt))
	})
	return results, nil
}

func (m *MemoryStore) CreateCallRecord(ctx context.Context, record store.CallRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.calls[record.ID]; exists {
		return fmt.Errorf("call record already exists: %s", record.ID)
	}
	m.calls[record.ID] = record
	return nil
}

func (m *MemoryStore) UpdateCallRecord(ctx context.Context, record store.CallRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.calls[record.ID]; !exists {
		return fmt.Errorf("call record not found: %s", record.ID)
	}
	m.calls[record.ID] = record
	return nil
}

func (m *MemoryStore) GetCallRecord(ctx context.Context, recordID string) (*store.CallRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.calls[recordID]
	if !ok {
		return nil, nil
	}
	cloned := record
	return &cloned, nil
}

func (m *MemoryStore) ListCallRecords(ctx context.Context) ([]store.CallRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := make([]store.CallRecord, 0, len(m.calls))
	for _, record := range m.calls {
		results = append(results, record)
	}
	sort.Slice(results, func(i, j int) bool {
		return parseTime(results[i].CreatedAt).After(parseTime(results[j].CreatedAt))
	})
	return results, nil
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
