package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/eldercare/internal/server/repositories/users"
	"github.com/jmoiron/sqlx"
)

// RepositoryManager vends repositories bound to a handle and owns the schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db sqlx.ExtContext) users.Repository
}
