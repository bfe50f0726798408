package api

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/hagglebot/hagglebot/internal/call"
	"github.com/hagglebot/hagglebot/internal/config"
	"github.com/hagglebot/hagglebot/internal/events"
	"github.com/hagglebot/hagglebot/internal/listing"
	"github.com/hagglebot/hagglebot/internal/store"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateAnalysis(ctx context.Context, analysis store.Analysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockStore) GetAnalysis(ctx context.Context, id string) (*store.Analysis, error) {
	args := m.Called(ctx, id)
	if value := args.Get(0); value != nil {
		return value.(*store.Analysis), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListAnalyses(ctx context.Context) ([]store.Analysis, error) {
	args := m.Called(ctx)
	var result []store.Analysis
	if value := args.Get(0); value != nil {
		result = value.([]store.Analysis)
	}
	return result, args.Error(1)
}

func (m *MockStore) CreateCallRecord(ctx context.Context, record store.CallRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStore) UpdateCallRecord(ctx context.Context, record store.CallRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStore) GetCallRecord(ctx context.Context, id string) (*store.CallRecord, error) {
	args := m.Called(ctx, id)
	if value := args.Get(0); value != nil {
		return value.(*store.CallRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListCallRecords(ctx context.Context) ([]store.CallRecord, error) {
	args := m.Called(ctx)
	var result []store.CallRecord
	if value := args.Get(0); value != nil {
		result = value.([]store.CallRecord)
	}
	return result, args.Error(1)
}

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, url string, contactPhone string) (*listing.Report, error) {
	args := m.Called(ctx, url, contactPhone)
	if value := args.Get(0); value != nil {
		return value.(*listing.Report), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCallService struct {
	mock.Mock
}

func (m *MockCallService) Start(ctx context.Context, req call.StartRequest) (*call.Session, error) {
	args := m.Called(ctx, req)
	if value := args.Get(0); value != nil {
		return value.(*call.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCallService) End(ctx context.Context, sessionID string) (*call.Session, error) {
	args := m.Called(ctx, sessionID)
	if value := args.Get(0); value != nil {
		return value.(*call.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCallService) Get(sessionID string) *call.Session {
	args := m.Called(sessionID)
	if value := args.Get(0); value != nil {
		return value.(*call.Session)
	}
	return nil
}

func newTestServer(t *testing.T, st store.Store, analyzer Analyzer, calls CallService, broker Broker, cfg config.Config) *httptest.Server {
	t.Helper()
	if broker == nil {
		broker = events.NewBroker()
	}
	server := NewServer(st, analyzer, calls, broker, cfg)
	return httptest.NewServer(server.Router())
}
