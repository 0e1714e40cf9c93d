// Package user reads learner accounts.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tcf245/dabia/internal/adapter/postgres"
)

// Repo provides user queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const existsSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

// Exists reports whether a user with the given id is present.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("check user %s exists: %w", id, err)
	}
	return ok, nil
}
