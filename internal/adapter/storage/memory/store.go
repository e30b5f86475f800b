package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/sentinel"
)

var errTxDone = errors.New("transaction already finished")

var (
	_ ports.RecordStore = (*Store)(nil)
	_ ports.RecordTx    = (*Tx)(nil)
)

type entry struct {
	kind    domain.Kind
	version int64
	payload []byte
}

// Store is an in-process ports.RecordStore. Transactions buffer their writes
// and, at commit, validate the version of every record they read or wrote,
// so the loser of a race gets sentinel.ErrConflict.
type Store struct {
	mu       sync.RWMutex
	records  map[domain.Address]entry
	balances map[domain.Address]int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		records:  make(map[domain.Address]entry),
		balances: make(map[domain.Address]int64),
	}
}

// Begin starts a transaction.
func (s *Store) Begin(_ context.Context) (ports.RecordTx, error) {
	return &Tx{
		store:  s,
		reads:  make(map[domain.Address]int64),
		writes: make(map[domain.Address]*write),
		deltas: make(map[domain.Address]int64),
	}, nil
}

// Get reads a committed record.
func (s *Store) Get(_ context.Context, addr domain.Address, rec domain.Record) error {
	s.mu.RLock()
	e, ok := s.records[addr]
	s.mu.RUnlock()
	if !ok || e.kind != rec.Kind() {
		return sentinel.ErrNotFound
	}
	return decode(e, rec)
}

// Balance reads a committed balance.
func (s *Store) Balance(_ context.Context, account domain.Address) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[account], nil
}

func decode(e entry, rec domain.Record) error {
	if err := json.Unmarshal(e.payload, rec); err != nil {
		return fmt.Errorf("decode %s record: %w", e.kind, err)
	}
	rec.SetVersion(e.version)
	return nil
}

type write struct {
	expected int64 // version read by the transaction, 0 for a create
	entry    entry
	deleted  bool
}

// Tx is a buffered transaction over a Store.
type Tx struct {
	store  *Store
	reads  map[domain.Address]int64 // committed version first seen, 0 when absent
	writes map[domain.Address]*write
	order  []domain.Address
	deltas map[domain.Address]int64
	done   bool
}

func (t *Tx) Get(ctx context.Context, addr domain.Address, rec domain.Record) error {
	if t.done {
		return errTxDone
	}
	if w, ok := t.writes[addr]; ok {
		if w.deleted || w.entry.kind != rec.Kind() {
			return sentinel.ErrNotFound
		}
		return decode(w.entry, rec)
	}

	t.store.mu.RLock()
	e, ok := t.store.records[addr]
	t.store.mu.RUnlock()
	if _, seen := t.reads[addr]; !seen {
		t.reads[addr] = e.version
	}
	if !ok || e.kind != rec.Kind() {
		return sentinel.ErrNotFound
	}
	return decode(e, rec)
}

func (t *Tx) Create(_ context.Context, rec domain.Record) error {
	if t.done {
		return errTxDone
	}
	addr := rec.Address()
	if w, ok := t.writes[addr]; ok && !w.deleted {
		return sentinel.ErrConflict
	}
	t.store.mu.RLock()
	_, exists := t.store.records[addr]
	t.store.mu.RUnlock()
	if exists {
		return sentinel.ErrConflict
	}
	return t.stage(addr, rec, 0, 1)
}

func (t *Tx) Update(_ context.Context, rec domain.Record) error {
	if t.done {
		return errTxDone
	}
	return t.stage(rec.Address(), rec, rec.Version(), rec.Version()+1)
}

func (t *Tx) Delete(_ context.Context, rec domain.Record) error {
	if t.done {
		return errTxDone
	}
	addr := rec.Address()
	expected := rec.Version()
	if w, ok := t.writes[addr]; ok {
		if w.deleted || w.entry.version != expected {
			return sentinel.ErrConflict
		}
		w.deleted = true
		return nil
	}
	t.writes[addr] = &write{expected: expected, entry: entry{kind: rec.Kind(), version: expected}, deleted: true}
	t.order = append(t.order, addr)
	return nil
}

// stage buffers rec at next. A record written twice in one transaction keeps
// the version it was first read at.
func (t *Tx) stage(addr domain.Address, rec domain.Record, expected, next int64) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", rec.Kind(), err)
	}
	e := entry{kind: rec.Kind(), version: next, payload: payload}

	if w, ok := t.writes[addr]; ok {
		if !w.deleted && w.entry.version != expected {
			return sentinel.ErrConflict
		}
		w.entry = e
		w.deleted = false
	} else {
		t.writes[addr] = &write{expected: expected, entry: e}
		t.order = append(t.order, addr)
	}
	rec.SetVersion(next)
	return nil
}

func (t *Tx) Balance(ctx context.Context, account domain.Address) (int64, error) {
	if t.done {
		return 0, errTxDone
	}
	committed, _ := t.store.Balance(ctx, account)
	return committed + t.deltas[account], nil
}

func (t *Tx) Transfer(ctx context.Context, from, to domain.Address, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("transfer of negative amount %d", amount)
	}
	bal, err := t.Balance(ctx, from)
	if err != nil {
		return err
	}
	if bal < amount {
		return sentinel.ErrInsufficientBalance
	}
	t.deltas[from] -= amount
	t.deltas[to] += amount
	return nil
}

func (t *Tx) Mint(_ context.Context, to domain.Address, amount int64) error {
	if t.done {
		return errTxDone
	}
	if amount < 0 {
		return fmt.Errorf("mint of negative amount %d", amount)
	}
	t.deltas[to] += amount
	return nil
}

// Commit validates every read and buffered write against the committed state
// and applies the writes together.
func (t *Tx) Commit(_ context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, addr := range t.order {
		w := t.writes[addr]
		current, exists := s.records[addr]
		switch {
		case w.expected == 0 && exists:
			return sentinel.ErrConflict
		case w.expected != 0 && (!exists || current.version != w.expected):
			return sentinel.ErrConflict
		}
	}
	for addr, seen := range t.reads {
		if _, written := t.writes[addr]; written {
			continue
		}
		if s.records[addr].version != seen {
			return sentinel.ErrConflict
		}
	}
	for account, delta := range t.deltas {
		if s.balances[account]+delta < 0 {
			return sentinel.ErrInsufficientBalance
		}
	}

	for _, addr := range t.order {
		w := t.writes[addr]
		if w.deleted {
			delete(s.records, addr)
			continue
		}
		s.records[addr] = w.entry
	}
	for account, delta := range t.deltas {
		s.balances[account] += delta
	}
	return nil
}

// Rollback discards the transaction. It is a no-op after Commit.
func (t *Tx) Rollback(_ context.Context) error {
	t.done = true
	return nil
}

// Ping always succeeds. It lets the store stand in as a health dependency.
func (s *Store) Ping(context.Context) error { return nil }

// Name returns the dependency name.
func (s *Store) Name() string { return "memory" }
