package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/sentinel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	_ ports.RecordStore = (*RecordStore)(nil)
	_ ports.RecordTx    = (*recordTx)(nil)
)

// RecordStore implements ports.RecordStore on PostgreSQL. Record writes are
// guarded by a version column, records read in a transaction are held FOR
// SHARE and token accounts are locked FOR UPDATE.
type RecordStore struct {
	pool Pool
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(pool Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

// Begin starts a database transaction.
func (s *RecordStore) Begin(ctx context.Context) (ports.RecordTx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &recordTx{tx: tx}, nil
}

// Get reads a committed record (without locking).
func (s *RecordStore) Get(ctx context.Context, addr domain.Address, rec domain.Record) error {
	return getRecord(ctx, s.pool, addr, rec, false)
}

// Balance reads a committed account balance (without locking).
func (s *RecordStore) Balance(ctx context.Context, account domain.Address) (int64, error) {
	return getBalance(ctx, s.pool, account, false)
}

// getRecord reads one record. forShare holds a share lock until the
// transaction ends, so a gate read (frozen, verified, authority) cannot be
// changed underneath a transaction that acted on it.
func getRecord(ctx context.Context, q querier, addr domain.Address, rec domain.Record, forShare bool) error {
	query := `SELECT kind, version, payload FROM records WHERE address = $1`
	if forShare {
		query += ` FOR SHARE`
	}

	var (
		kind    string
		version int64
		payload []byte
	)
	err := q.QueryRow(ctx, query, string(addr)).Scan(&kind, &version, &payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sentinel.ErrNotFound
		}
		return mapErr("get record", err)
	}
	if kind != string(rec.Kind()) {
		return sentinel.ErrNotFound
	}
	if err := json.Unmarshal(payload, rec); err != nil {
		return fmt.Errorf("decode %s record: %w", kind, err)
	}
	rec.SetVersion(version)
	return nil
}

func getBalance(ctx context.Context, q querier, account domain.Address, forUpdate bool) (int64, error) {
	query := `SELECT balance FROM token_accounts WHERE account = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var balance int64
	err := q.QueryRow(ctx, query, string(account)).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// mapErr turns serialization failures, deadlocks and unique violations into
// sentinel.ErrConflict so callers can retry.
func mapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "23505":
			return fmt.Errorf("%s: %w", op, sentinel.ErrConflict)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

type recordTx struct {
	tx pgx.Tx
}

func (t *recordTx) Get(ctx context.Context, addr domain.Address, rec domain.Record) error {
	return getRecord(ctx, t.tx, addr, rec, true)
}

func (t *recordTx) Create(ctx context.Context, rec domain.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", rec.Kind(), err)
	}

	query := `INSERT INTO records (address, kind, version, payload, updated_at)
		VALUES ($1, $2, 1, $3, NOW())
		ON CONFLICT (address) DO NOTHING`

	tag, err := t.tx.Exec(ctx, query, string(rec.Address()), string(rec.Kind()), payload)
	if err != nil {
		return mapErr("insert record", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrConflict
	}
	rec.SetVersion(1)
	return nil
}

func (t *recordTx) Update(ctx context.Context, rec domain.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", rec.Kind(), err)
	}

	query := `UPDATE records SET version = version + 1, payload = $3, updated_at = NOW()
		WHERE address = $1 AND version = $2`

	tag, err := t.tx.Exec(ctx, query, string(rec.Address()), rec.Version(), payload)
	if err != nil {
		return mapErr("update record", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrConflict
	}
	rec.SetVersion(rec.Version() + 1)
	return nil
}

func (t *recordTx) Delete(ctx context.Context, rec domain.Record) error {
	query := `DELETE FROM records WHERE address = $1 AND version = $2`

	tag, err := t.tx.Exec(ctx, query, string(rec.Address()), rec.Version())
	if err != nil {
		return mapErr("delete record", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrConflict
	}
	return nil
}

func (t *recordTx) Balance(ctx context.Context, account domain.Address) (int64, error) {
	return getBalance(ctx, t.tx, account, false)
}

func (t *recordTx) Transfer(ctx context.Context, from, to domain.Address, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("transfer of negative amount %d", amount)
	}
	if amount == 0 {
		return nil
	}

	balance, err := getBalance(ctx, t.tx, from, true)
	if err != nil {
		return err
	}
	if balance < amount {
		return sentinel.ErrInsufficientBalance
	}

	debit := `UPDATE token_accounts SET balance = balance - $2, updated_at = NOW() WHERE account = $1`
	if _, err := t.tx.Exec(ctx, debit, string(from), amount); err != nil {
		return mapErr("debit account", err)
	}
	if err := t.credit(ctx, to, amount); err != nil {
		return err
	}

	movement := `INSERT INTO token_movements (id, from_account, to_account, amount, created_at)
		VALUES ($1, $2, $3, $4, NOW())`
	if _, err := t.tx.Exec(ctx, movement, uuid.New(), string(from), string(to), amount); err != nil {
		return mapErr("record movement", err)
	}
	return nil
}

func (t *recordTx) Mint(ctx context.Context, to domain.Address, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("mint of negative amount %d", amount)
	}
	if err := t.credit(ctx, to, amount); err != nil {
		return err
	}

	movement := `INSERT INTO token_movements (id, from_account, to_account, amount, created_at)
		VALUES ($1, NULL, $2, $3, NOW())`
	if _, err := t.tx.Exec(ctx, movement, uuid.New(), string(to), amount); err != nil {
		return mapErr("record movement", err)
	}
	return nil
}

func (t *recordTx) credit(ctx context.Context, to domain.Address, amount int64) error {
	query := `INSERT INTO token_accounts (account, balance, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (account) DO UPDATE SET balance = token_accounts.balance + EXCLUDED.balance, updated_at = NOW()`

	if _, err := t.tx.Exec(ctx, query, string(to), amount); err != nil {
		return mapErr("credit account", err)
	}
	return nil
}

func (t *recordTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return mapErr("commit", err)
	}
	return nil
}

// Rollback aborts the transaction. Rolling back a committed transaction is a no-op.
func (t *recordTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
