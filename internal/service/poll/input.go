package poll

import (
	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
)

// VoteInput holds the parameters for casting or toggling a poll vote.
type VoteInput struct {
	PostID      uuid.UUID
	OptionIndex int
}

// Validate checks all fields and collects all errors.
func (i VoteInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.OptionIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "option_index", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
