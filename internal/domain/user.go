package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the minimal user directory row mirrored from the identity service.
// Only the fields post author joins need are carried here.
type User struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Username  string
	AvatarURL *string
	CreatedAt time.Time
}
