package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS transactions (
	position    INTEGER PRIMARY KEY,
	id          INTEGER NOT NULL UNIQUE,
	description TEXT    NOT NULL,
	amount      TEXT    NOT NULL,
	type        TEXT    NOT NULL CHECK (type IN ('income', 'expense')),
	created_at  TEXT    NOT NULL
);`

// SQLite persists the ledger in a local SQLite database. Amounts are kept
// as decimal strings so nothing is lost to float rounding; the position
// column preserves insertion order.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at dbPath with WAL
// and foreign keys enabled, and ensures the schema exists.
func OpenSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Load(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, amount, type, created_at
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
			createdAt string
		)
		if err := rows.Scan(&tx.ID, &tx.Description, &amount, &tx.Type, &createdAt); err != nil {
			return nil, &StorageError{Op: "load", Err: err}
		}
		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, &StorageError{Op: "load", Err: fmt.Errorf("bad amount %q: %w", amount, err)}
		}
		if tx.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, &StorageError{Op: "load", Err: fmt.Errorf("bad created_at %q: %w", createdAt, err)}
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return txs, nil
}

// Save replaces the whole table with the snapshot in one transaction.
func (s *SQLite) Save(ctx context.Context, txs []domain.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	for i, tx := range txs {
		_, err := dbTx.ExecContext(ctx,
			`INSERT INTO transactions (position, id, description, amount, type, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			i+1, tx.ID, tx.Description, tx.Amount.String(), tx.Type,
			tx.CreatedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return &StorageError{Op: "save", Err: err}
		}
	}

	if err := dbTx.Commit(); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
