package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS transactions (
	position    BIGINT PRIMARY KEY,
	id          BIGINT NOT NULL UNIQUE,
	description TEXT   NOT NULL,
	amount      NUMERIC(18, 4) NOT NULL CHECK (amount > 0),
	type        TEXT   NOT NULL CHECK (type IN ('income', 'expense')),
	created_at  TIMESTAMPTZ NOT NULL
);`

// Postgres persists the ledger in a PostgreSQL database through a pgx pool.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres wraps an existing pool and ensures the schema exists.
func NewPostgres(ctx context.Context, db *pgxpool.Pool) (*Postgres, error) {
	if _, err := db.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Postgres{db: db}, nil
}

// Connect creates a pool for dsn, pings it and ensures the schema.
func Connect(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return NewPostgres(ctx, db)
}

func (s *Postgres) Close() { s.db.Close() }

func (s *Postgres) Load(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, description, amount::text, type, created_at
		 FROM transactions
		 ORDER BY position`)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	defer rows.Close()

	txs := []domain.Transaction{}
	for rows.Next() {
		var (
			tx        domain.Transaction
			amount    string
			createdAt time.Time
		)
		if err := rows.Scan(&tx.ID, &tx.Description, &amount, &tx.Type, &createdAt); err != nil {
			return nil, &StorageError{Op: "load", Err: err}
		}
		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, &StorageError{Op: "load", Err: fmt.Errorf("bad amount %q: %w", amount, err)}
		}
		tx.CreatedAt = createdAt
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return txs, nil
}

// Save replaces the table contents with the snapshot inside one
// database transaction.
func (s *Postgres) Save(ctx context.Context, txs []domain.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	defer func() { _ = dbTx.Rollback(ctx) }()

	if _, err := dbTx.Exec(ctx, `DELETE FROM transactions`); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	for i, tx := range txs {
		_, err := dbTx.Exec(ctx,
			`INSERT INTO transactions (position, id, description, amount, type, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			i+1, tx.ID, tx.Description, tx.Amount.String(), tx.Type, tx.CreatedAt.UTC())
		if err != nil {
			return &StorageError{Op: "save", Err: err}
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
