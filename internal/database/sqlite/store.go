// Package sqlite stores economy snapshots in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/osse101/SlotBot_Go/internal/database"
	"github.com/osse101/SlotBot_Go/internal/domain"
	"github.com/osse101/SlotBot_Go/internal/persistence"
)

const (
	tableBalances = "account_balances"
	tableClaims   = "daily_claims"

	colAccountID = "account_id"
	colBalance   = "balance"
	colClaimDate = "claim_date"

	// sqlite's default bind limit is 32766; two columns per row
	insertChunkSize = 500

	dsnOptions = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
)

var errPathRequired = errors.New("sqlite path is required")

// Store implements persistence.Store on database/sql with the pure-Go
// modernc driver.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and migrates it.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, errPathRequired)
	}

	db, err := sql.Open("sqlite", filepath.Clean(path)+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite db: %v", domain.ErrPersistence, err)
	}
	// one writer at a time; sqlite serializes writes anyway
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping sqlite db: %v", domain.ErrPersistence, err)
	}

	if err := database.MigrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return &Store{db: db}, nil
}

// Load reads every balance and claim date.
func (s *Store) Load(ctx context.Context) (persistence.Snapshot, error) {
	snap := persistence.NewSnapshot()

	rows, err := sq.Select(colAccountID, colBalance).From(tableBalances).RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return persistence.Snapshot{}, fmt.Errorf("%w: query %s: %v", domain.ErrPersistence, tableBalances, err)
	}
	for rows.Next() {
		var id string
		var balance int64
		if err := rows.Scan(&id, &balance); err != nil {
			_ = rows.Close()
			return persistence.Snapshot{}, fmt.Errorf("%w: scan %s: %v", domain.ErrPersistence, tableBalances, err)
		}
		snap.Balances[id] = balance
	}
	if err := errors.Join(rows.Err(), rows.Close()); err != nil {
		return persistence.Snapshot{}, fmt.Errorf("%w: query %s: %v", domain.ErrPersistence, tableBalances, err)
	}

	rows, err = sq.Select(colAccountID, colClaimDate).From(tableClaims).RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return persistence.Snapshot{}, fmt.Errorf("%w: query %s: %v", domain.ErrPersistence, tableClaims, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, date string
		if err := rows.Scan(&id, &date); err != nil {
			return persistence.Snapshot{}, fmt.Errorf("%w: scan %s: %v", domain.ErrPersistence, tableClaims, err)
		}
		snap.DailyClaims[id] = date
	}
	if err := rows.Err(); err != nil {
		return persistence.Snapshot{}, fmt.Errorf("%w: query %s: %v", domain.ErrPersistence, tableClaims, err)
	}
	return snap, nil
}

// Save replaces both tables in one transaction.
func (s *Store) Save(ctx context.Context, snap persistence.Snapshot) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrPersistence, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{tableClaims, tableBalances} {
		if _, err = sq.Delete(table).RunWith(tx).ExecContext(ctx); err != nil {
			return fmt.Errorf("%w: clear %s: %v", domain.ErrPersistence, table, err)
		}
	}

	ids := slices.Sorted(maps.Keys(snap.Balances))
	for chunk := range slices.Chunk(ids, insertChunkSize) {
		insert := sq.Insert(tableBalances).Columns(colAccountID, colBalance)
		for _, id := range chunk {
			insert = insert.Values(id, snap.Balances[id])
		}
		if _, err = insert.RunWith(tx).ExecContext(ctx); err != nil {
			return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, tableBalances, err)
		}
	}

	ids = slices.Sorted(maps.Keys(snap.DailyClaims))
	for chunk := range slices.Chunk(ids, insertChunkSize) {
		insert := sq.Insert(tableClaims).Columns(colAccountID, colClaimDate)
		for _, id := range chunk {
			insert = insert.Values(id, snap.DailyClaims[id])
		}
		if _, err = insert.RunWith(tx).ExecContext(ctx); err != nil {
			return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, tableClaims, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ persistence.Store = (*Store)(nil)
