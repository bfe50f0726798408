package store

import "context"

// Analysis is one completed listing analysis. Description is the merged
// report blob; it is never mutated after creation.
type Analysis struct {
	ID           string
	SourceURL    string
	ContactPhone string
	Description  string
	ImageCount   int
	CreatedAt    string
}

// CallRecord tracks one negotiation call session from dispatch to end.
type CallRecord struct {
	ID            string
	CallID        string
	PhoneNumber   string
	BuyerName     string
	Strategy      string
	Status        string
	ControlURL    string
	ListenURL     string
	FailureReason string
	CreatedAt     string
	UpdatedAt     string
}

type Store interface {
	CreateAnalysis(ctx context.Context, analysis Analysis) error
	GetAnalysis(ctx context.Context, analysisID string) (*Analysis, error)
	ListAnalyses(ctx context.Context) ([]Analysis, error)
	CreateCallRecord(ctx context.Context, record CallRecord) error
	UpdateCallRecord(ctx context.Context, record CallRecord) error
	GetCallRecord(ctx context.Context, recordID string) (*CallRecord, error)
	ListCallRecords(ctx context.Context) ([]CallRecord, error)
}
