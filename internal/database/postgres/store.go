// Package postgres stores economy snapshots in PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"maps"
	"slices"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/SlotBot_Go/internal/database"
	"github.com/osse101/SlotBot_Go/internal/domain"
	"github.com/osse101/SlotBot_Go/internal/persistence"
)

// Store implements persistence.Store on a pgx pool. Save replaces both
// tables inside one transaction, so readers never observe a half-written
// snapshot.
type Store struct {
	pool   *pgxpool.Pool
	txm    *manager.Manager
	getter *trmpgx.CtxGetter
	psql   sq.StatementBuilderType
}

// New migrates the schema and returns a store that owns pool.
func New(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	db := stdlib.OpenDBFromPool(pool)
	if err := database.MigratePostgres(ctx, db); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrate, err)
	}

	txm, err := manager.New(trmpgx.NewDefaultFactory(pool))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgTxManager, err)
	}

	return &Store{
		pool:   pool,
		txm:    txm,
		getter: trmpgx.DefaultCtxGetter,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

// Load reads every balance and claim date.
func (s *Store) Load(ctx context.Context) (persistence.Snapshot, error) {
	snap := persistence.NewSnapshot()

	err := s.txm.Do(ctx, func(ctx context.Context) error {
		conn := s.getter.DefaultTrOrDB(ctx, s.pool)

		query, args, err := s.psql.Select(colAccountID, colBalance).From(tableBalances).ToSql()
		if err != nil {
			return fmt.Errorf(ErrMsgBuildQueryFmt, domain.ErrPersistence, tableBalances, err)
		}
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf(ErrMsgQueryFmt, domain.ErrPersistence, tableBalances, err)
		}
		for rows.Next() {
			var id string
			var balance int64
			if err := rows.Scan(&id, &balance); err != nil {
				rows.Close()
				return fmt.Errorf(ErrMsgScanFmt, domain.ErrPersistence, tableBalances, err)
			}
			snap.Balances[id] = balance
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf(ErrMsgQueryFmt, domain.ErrPersistence, tableBalances, err)
		}

		query, args, err = s.psql.Select(colAccountID, colClaimDate).From(tableClaims).ToSql()
		if err != nil {
			return fmt.Errorf(ErrMsgBuildQueryFmt, domain.ErrPersistence, tableClaims, err)
		}
		rows, err = conn.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf(ErrMsgQueryFmt, domain.ErrPersistence, tableClaims, err)
		}
		defer rows.Close()
		for rows.Next() {
			var id, date string
			if err := rows.Scan(&id, &date); err != nil {
				return fmt.Errorf(ErrMsgScanFmt, domain.ErrPersistence, tableClaims, err)
			}
			snap.DailyClaims[id] = date
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf(ErrMsgQueryFmt, domain.ErrPersistence, tableClaims, err)
		}
		return nil
	})
	if err != nil {
		return persistence.Snapshot{}, err
	}
	return snap, nil
}

// Save replaces the stored snapshot.
func (s *Store) Save(ctx context.Context, snap persistence.Snapshot) error {
	return s.txm.Do(ctx, func(ctx context.Context) error {
		conn := s.getter.DefaultTrOrDB(ctx, s.pool)

		if _, err := conn.Exec(ctx, SQLAdvisoryLock, snapshotLockKey); err != nil {
			return fmt.Errorf(ErrMsgAcquireLockFmt, domain.ErrPersistence, err)
		}

		for _, table := range []string{tableClaims, tableBalances} {
			query, args, err := s.psql.Delete(table).ToSql()
			if err != nil {
				return fmt.Errorf(ErrMsgBuildQueryFmt, domain.ErrPersistence, table, err)
			}
			if _, err := conn.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf(ErrMsgExecFmt, domain.ErrPersistence, table, err)
			}
		}

		ids := slices.Sorted(maps.Keys(snap.Balances))
		for chunk := range slices.Chunk(ids, insertChunkSize) {
			insert := s.psql.Insert(tableBalances).Columns(colAccountID, colBalance)
			for _, id := range chunk {
				insert = insert.Values(id, snap.Balances[id])
			}
			if err := s.exec(ctx, conn, insert, tableBalances); err != nil {
				return err
			}
		}

		ids = slices.Sorted(maps.Keys(snap.DailyClaims))
		for chunk := range slices.Chunk(ids, insertChunkSize) {
			insert := s.psql.Insert(tableClaims).Columns(colAccountID, colClaimDate)
			for _, id := range chunk {
				insert = insert.Values(id, snap.DailyClaims[id])
			}
			if err := s.exec(ctx, conn, insert, tableClaims); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) exec(ctx context.Context, conn trmpgx.Tr, b sq.InsertBuilder, table string) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf(ErrMsgBuildQueryFmt, domain.ErrPersistence, table, err)
	}
	if _, err := conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf(ErrMsgExecFmt, domain.ErrPersistence, table, err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

var _ persistence.Store = (*Store)(nil)
