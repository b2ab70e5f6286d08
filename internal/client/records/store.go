// Package records keeps the four personal record lists (appointments,
// medications, health logs, reminders) in local storage. Each list is one
// JSON array under its own key; every change rewrites the whole array inside
// a single local transaction.
package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/eldercare/internal/client/storage"
	"github.com/dmitrijs2005/eldercare/internal/common"
	"github.com/dmitrijs2005/eldercare/internal/dbx"
	"github.com/google/uuid"
)

// Record is implemented by the value types stored in a Store.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
	Validate() error
}

type Store[T Record[T]] struct {
	db    *sql.DB
	key   string
	cmp   func(a, b T) int
	newID func() string
}

// NewStore binds a list to key. cmp orders View; nil keeps insertion order.
func NewStore[T Record[T]](db *sql.DB, key string, cmp func(a, b T) int) *Store[T] {
	return &Store[T]{db: db, key: key, cmp: cmp, newID: uuid.NewString}
}

func Appointments(db *sql.DB) *Store[Appointment] {
	return NewStore(db, storage.KeyAppointments, func(a, b Appointment) int { return a.When.Compare(b.When) })
}

func Medications(db *sql.DB) *Store[Medication] {
	return NewStore[Medication](db, storage.KeyMedications, nil)
}

func HealthLogs(db *sql.DB) *Store[HealthLog] {
	return NewStore(db, storage.KeyHealthLogs, func(a, b HealthLog) int { return b.DT.Compare(a.DT) })
}

func Reminders(db *sql.DB) *Store[Reminder] {
	return NewStore(db, storage.KeyReminders, func(a, b Reminder) int { return a.When.Compare(b.When) })
}

// LoadAll returns the list in stored order. A missing or unreadable payload
// is an empty list. Entries saved without an id get one, and the list is
// written back.
func (s *Store[T]) LoadAll(ctx context.Context) ([]T, error) {
	var items []T
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		items, err = s.load(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// View returns a sorted copy for display.
func (s *Store[T]) View(ctx context.Context) ([]T, error) {
	items, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cmp != nil {
		slices.SortStableFunc(items, s.cmp)
	}
	return items, nil
}

func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := s.LoadAll(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, common.ErrNotFound
	}
	return items[i], nil
}

// Add validates item, gives it a fresh id and appends it.
func (s *Store[T]) Add(ctx context.Context, item T) (T, error) {
	var zero T
	if err := item.Validate(); err != nil {
		return zero, err
	}
	item = item.WithID(s.newID())

	err := s.mutate(ctx, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
	if err != nil {
		return zero, err
	}
	return item, nil
}

// Update replaces the record with the given id, keeping its id and position.
func (s *Store[T]) Update(ctx context.Context, id string, item T) error {
	if err := item.Validate(); err != nil {
		return err
	}
	item = item.WithID(id)

	return s.mutate(ctx, func(items []T) ([]T, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, common.ErrNotFound
		}
		items[i] = item
		return items, nil
	})
}

// Remove deletes the record with the given id; the rest keep their order.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	return s.mutate(ctx, func(items []T) ([]T, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, common.ErrNotFound
		}
		return slices.Delete(items, i, i+1), nil
	})
}

func (s *Store[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		items, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		items, err = fn(items)
		if err != nil {
			return err
		}
		return s.save(ctx, tx, items)
	})
}

func (s *Store[T]) load(ctx context.Context, tx dbx.DBTX) ([]T, error) {
	raw, err := storage.NewSQLiteRepository(tx).Get(ctx, s.key)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []T{}, nil
	}

	backfilled := false
	for i, it := range items {
		if it.RecordID() == "" {
			items[i] = it.WithID(s.newID())
			backfilled = true
		}
	}
	if backfilled {
		if err := s.save(ctx, tx, items); err != nil {
			return nil, err
		}
	}

	return items, nil
}

func (s *Store[T]) save(ctx context.Context, tx dbx.DBTX, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	return storage.NewSQLiteRepository(tx).Set(ctx, s.key, raw)
}

func indexOf[T Record[T]](items []T, id string) int {
	return slices.IndexFunc(items, func(it T) bool { return it.RecordID() == id })
}
