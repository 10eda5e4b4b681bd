package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer is scoped to the owning user: the same phone number may exist
// once per user, never twice for one user.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	UserID    uint
	CreatedAt time.Time
}

type FindOrCreateParams struct {
	Name    string
	Phone   string
	Address string
	UserID  uint
}
