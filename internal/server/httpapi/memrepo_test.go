package httpapi

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/eldercare/internal/common"
	"github.com/dmitrijs2005/eldercare/internal/server/models"
	"github.com/dmitrijs2005/eldercare/internal/server/repositories/users"
	"github.com/jmoiron/sqlx"
)

// memUsers is an in-memory credential store that enforces email uniqueness
// the way the database constraint does.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.User
}

func newMemUsers() *memUsers { return &memUsers{rows: map[int64]models.User{}} }

func (m *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Email == u.Email {
			return nil, common.ErrAlreadyExists
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.Role = "user"
	m.rows[u.ID] = *u
	return u, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Email == email {
			return &r, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memUsers) FindByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &r, nil
}

func (m *memUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memManager struct{ u *memUsers }

func (m memManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m memManager) Users(sqlx.ExtContext) users.Repository       { return m.u }
