package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a learner. Users are provisioned by migrations and never
// modified by the session flow.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
