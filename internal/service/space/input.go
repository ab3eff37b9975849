package space

import (
	"strings"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
)

// CreateSpaceInput holds the parameters for creating a space.
type CreateSpaceInput struct {
	Name          string
	Description   *string
	ParentSpaceID *uuid.UUID
	IconURL       *string
	IsPublic      bool
	AccessRules   domain.AccessRules
}

// Validate checks all fields and collects all errors.
func (i CreateSpaceInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 120 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}
	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSpaceInput holds the partial-update parameters for a space.
type UpdateSpaceInput struct {
	SpaceID       uuid.UUID
	Name          *string
	Description   *string
	ParentSpaceID *uuid.UUID
	ClearParent   bool
	IconURL       *string
	IsPublic      *bool
	AccessRules   *domain.AccessRules
}

// Validate checks all fields and collects all errors.
func (i UpdateSpaceInput) Validate() error {
	var errs []domain.FieldError

	if i.SpaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "space_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.ParentSpaceID == nil && !i.ClearParent &&
		i.IconURL == nil && i.IsPublic == nil && i.AccessRules == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 120 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSpacesInput holds the filters for listing spaces.
type ListSpacesInput struct {
	ParentSpaceID *uuid.UUID
	RootsOnly     bool
	Search        string
}

// AnalyticsInput holds the parameters for the analytics read view.
type AnalyticsInput struct {
	SpaceID uuid.UUID
	Period  domain.AnalyticsPeriod
}

// Validate checks all fields.
func (i AnalyticsInput) Validate() error {
	if i.SpaceID == uuid.Nil {
		return domain.NewValidationError("space_id", "required")
	}
	switch i.Period {
	case domain.Period7Days, domain.Period30Days, domain.PeriodAll, "":
		return nil
	}
	return domain.NewValidationError("period", "must be one of 7days, 30days, all")
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
