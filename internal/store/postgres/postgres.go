package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/hagglebot/hagglebot/internal/store"
)

type PostgresStore struct {
	db *sql.DB
}

var openDB = sql.Open

func New(conn string) (*PostgresStore, error) {
	db, err := openDB("pgx", conn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := verifySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func verifySchema(ctx context.Context, db *sql.DB) error {
	required := []string{
		"analyses",
		"call_records",
	}
	for _, table := range required {
		var regclass sql.NullString
		if err := db.QueryRowContext(ctx, "SELECT to_regclass($1)", fmt.Sprintf("public.%s", table)).Scan(&regclass); err != nil {
			return err
		}
		if !regclass.Valid {
			return fmt.Errorf("database schema missing: %s table not found (run infra/migrations/001_init.sql)", table)
		}
	}
	return nil
}

func (p *PostgresStore) CreateAnalysis(ctx context.Context, analysis store.Analysis) error {
	const query = `
		INSERT INTO analyses (id, source_url, contact_phone, description, image_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := p.db.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.SourceURL,
		nullString(analysis.ContactPhone),
		analysis.Description,
		analysis.ImageCount,
		analysis.CreatedAt,
	)
	return err
}

func (p *PostgresStore) GetAnalysis(ctx context.Context, analysisID string) (*store.Analysis, error) {
	const query = `
		SELECT id, source_url, contact_phone, description, image_count, created_at
		FROM analyses
		WHERE id = $1
	`
	row := p.db.QueryRowContext(ctx, query, analysisID)
	analysis, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

func (p *PostgresStore) ListAnalyses(ctx context.Context) ([]store.Analysis, error) {
	const query = `
		SELECT id, source_url, contact_phone, description, image_count, created_at
		FROM analyses
		ORDER BY created_at DESC
	`
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []store.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *analysis)
	}
	return results, rows.Err()
}

func (p *PostgresStore) CreateCallRecord(ctx context.Context, record store.CallRecord) error {
	const query = `
		INSERT INTO call_records (
			id,
			call_id,
			phone_number,
			buyer_name,
			strategy,
			status,
			control_url,
			listen_url,
			failure_reason,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := p.db.ExecContext(
		ctx,
		query,
		record.ID,
		nullString(record.CallID),
		record.PhoneNumber,
		nullString(record.BuyerName),
		record.Strategy,
		record.Status,
		nullString(record.ControlURL),
		nullString(record.ListenURL),
		nullString(record.FailureReason),
		record.CreatedAt,
		record.UpdatedAt,
	)
	return err
}

func (p *PostgresStore) UpdateCallRecord(ctx context.Context, record store.CallRecord) error {
	const query = `
		UPDATE call_records
		SET call_id = $2,
			status = $3,
			control_url = $4,
			listen_url = $5,
			failure_reason = $6,
			updated_at = $7
		WHERE id = $1
	`
	result, err := p.db.ExecContext(
		ctx,
		query,
		record.ID,
		nullString(record.CallID),
		record.Status,
		nullString(record.ControlURL),
		nullString(record.ListenURL),
		nullString(record.FailureReason),
		record.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("call record not found: %s", record.ID)
	}
	return nil
}

func (p *PostgresStore) GetCallRecord(ctx context.Context, recordID string) (*store.CallRecord, error) {
	const query = `
		SELECT id, call_id, phone_number, buyer_name, strategy, status, control_url, listen_url, failure_reason, created_at, updated_at
		FROM call_records
		WHERE id = $1
	`
	row := p.db.QueryRowContext(ctx, query, recordID)
	record, err := scanCallRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (p *PostgresStore) ListCallRecords(ctx context.Context) ([]store.CallRecord, error) {
	const query = `
		SELECT id, call_id, phone_number, buyer_name, strategy, status, control_url, listen_url, failure_reason, created_at, updated_at
		FROM call_records
		ORDER BY created_at DESC
	`
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []store.CallRecord
	for rows.Next() {
		record, err := scanCallRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *record)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*store.Analysis, error) {
	var analysis store.Analysis
	var contactPhone sql.NullString
	if err := row.Scan(
		&analysis.ID,
		&analysis.SourceURL,
		&contactPhone,
		&analysis.Description,
		&analysis.ImageCount,
		&analysis.CreatedAt,
	); err != nil {
		return nil, err
	}
	analysis.ContactPhone = contactPhone.String
	return &analysis, nil
}

func scanCallRecord(row rowScanner) (*store.CallRecord, error) {
	var record store.CallRecord
	var callID, buyerName, controlURL, listenURL, failureReason sql.NullString
	if err := row.Scan(
		&record.ID,
		&callID,
		&record.PhoneNumber,
		&buyerName,
		&record.Strategy,
		&record.Status,
		&controlURL,
		&listenURL,
		&failureReason,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	record.CallID = callID.String
	record.BuyerName = buyerName.String
	record.ControlURL = controlURL.String
	record.ListenURL = listenURL.String
	record.FailureReason = failureReason.String
	return &record, nil
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
