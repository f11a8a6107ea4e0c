package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/alovak/cardcheck/card"
	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// DefaultListLimit applies when List is called with a non-positive limit.
const DefaultListLimit = 100

// Repository keeps verdict records in memory or, when constructed with
// NewPGRepository, in the audit.verdicts table.
type Repository struct {
	mu      sync.RWMutex
	records []*Record
	index   map[string]*Record

	db *sql.DB
}

func NewRepository() *Repository {
	return &Repository{
		records: make([]*Record, 0),
		index:   make(map[string]*Record),
	}
}

// NewPGRepository constructs a db-backed repository.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, rec *Record) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.index[rec.ID]; ok {
			return fmt.Errorf("verdict %s exists: %w", rec.ID, ErrConflict)
		}
		r.records = append(r.records, rec)
		r.index[rec.ID] = rec
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO audit.verdicts(verdict_id, pan_hash, masked_pan, network, checksum, source, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, rec.ID, rec.PANHash, rec.MaskedPAN, rec.Network.String(), rec.Checksum, rec.Source, rec.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("verdict %s exists: %w", rec.ID, ErrConflict)
	}
	return err
}

func (r *Repository) Get(ctx context.Context, id string) (*Record, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		rec, ok := r.index[id]
		if !ok {
			return nil, ErrNotFound
		}
		return rec, nil
	}
	row := r.db.QueryRowContext(ctx, `
        SELECT verdict_id, pan_hash, masked_pan, network, checksum, source, created_at
          FROM audit.verdicts WHERE verdict_id=$1
    `, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

// List returns up to limit records, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		out := make([]*Record, 0, limit)
		for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
			out = append(out, r.records[i])
		}
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT verdict_id, pan_hash, masked_pan, network, checksum, source, created_at
          FROM audit.verdicts ORDER BY created_at DESC LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*Record, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Ping returns DB readiness
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	var rec Record
	var network string
	if err := s.Scan(&rec.ID, &rec.PANHash, &rec.MaskedPAN, &network, &rec.Checksum, &rec.Source, &rec.CreatedAt); err != nil {
		return nil, err
	}
	n, err := card.ParseNetwork(network)
	if err != nil {
		return nil, fmt.Errorf("verdict %s: %w", rec.ID, err)
	}
	rec.Network = n
	return &rec, nil
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == "23505" {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return true
	}
	return false
}
