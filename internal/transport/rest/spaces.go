package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	spacesvc "github.com/projecthub/community-backend/internal/service/space"

	"github.com/projecthub/community-backend/internal/domain"
)

type spaceService interface {
	CreateSpace(ctx context.Context, input spacesvc.CreateSpaceInput) (*domain.Space, error)
	GetSpace(ctx context.Context, spaceID uuid.UUID) (*domain.SpaceDetail, error)
	ListSpaces(ctx context.Context, input spacesvc.ListSpacesInput) ([]*domain.Space, error)
	UpdateSpace(ctx context.Context, input spacesvc.UpdateSpaceInput) (*domain.Space, error)
	DeleteSpace(ctx context.Context, spaceID uuid.UUID) error
	JoinSpace(ctx context.Context, spaceID uuid.UUID) error
	LeaveSpace(ctx context.Context, spaceID uuid.UUID) error
	GetAnalytics(ctx context.Context, input spacesvc.AnalyticsInput) (*domain.AnalyticsRange, error)
}

// SpaceHandler serves the space endpoints.
type SpaceHandler struct {
	spaces spaceService
	log    *slog.Logger
}

// NewSpaceHandler creates a SpaceHandler.
func NewSpaceHandler(log *slog.Logger, spaces spaceService) *SpaceHandler {
	return &SpaceHandler{spaces: spaces, log: log}
}

type accessRulesPayload struct {
	RequireApproval bool     `json:"require_approval,omitempty"`
	AllowedDomains  []string `json:"allowed_domains,omitempty"`
	PostingRoles    []string `json:"posting_roles,omitempty"`
}

type spacePayload struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Description   *string            `json:"description,omitempty"`
	ParentSpaceID *uuid.UUID         `json:"parent_space_id,omitempty"`
	IconURL       *string            `json:"icon_url,omitempty"`
	IsPublic      bool               `json:"is_public"`
	AccessRules   accessRulesPayload `json:"access_rules"`
	MemberCount   int                `json:"member_count"`
	PostCount     int                `json:"post_count"`
	CreatedBy     uuid.UUID          `json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type spaceChildPayload struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	IconURL     *string   `json:"icon_url,omitempty"`
	MemberCount int       `json:"member_count"`
}

type spaceDetailPayload struct {
	spacePayload
	Children    []spaceChildPayload  `json:"children"`
	RecentPosts []postSummaryPayload `json:"recent_posts"`
}

func toSpacePayload(s *domain.Space) spacePayload {
	return spacePayload{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		ParentSpaceID: s.ParentSpaceID,
		IconURL:       s.IconURL,
		IsPublic:      s.IsPublic,
		AccessRules: accessRulesPayload{
			RequireApproval: s.AccessRules.RequireApproval,
			AllowedDomains:  s.AccessRules.AllowedDomains,
			PostingRoles:    s.AccessRules.PostingRoles,
		},
		MemberCount: s.MemberCount,
		PostCount:   s.PostCount,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type createSpaceRequest struct {
	Name          string              `json:"name"`
	Description   *string             `json:"description"`
	ParentSpaceID *uuid.UUID          `json:"parent_space_id"`
	IconURL       *string             `json:"icon_url"`
	IsPublic      *bool               `json:"is_public"`
	AccessRules   *accessRulesPayload `json:"access_rules"`
}

// Create handles POST /spaces.
func (h *SpaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSpaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := spacesvc.CreateSpaceInput{
		Name:          req.Name,
		Description:   req.Description,
		ParentSpaceID: req.ParentSpaceID,
		IconURL:       req.IconURL,
		IsPublic:      true,
	}
	if req.IsPublic != nil {
		input.IsPublic = *req.IsPublic
	}
	if req.AccessRules != nil {
		input.AccessRules = domain.AccessRules{
			RequireApproval: req.AccessRules.RequireApproval,
			AllowedDomains:  req.AccessRules.AllowedDomains,
			PostingRoles:    req.AccessRules.PostingRoles,
		}
	}

	created, err := h.spaces.CreateSpace(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Message string `json:"message"`
		spacePayload
	}{"Space created successfully", toSpacePayload(created)})
}

// List handles GET /spaces. parent_id may be a UUID or the literal "null"
// for root spaces only.
func (h *SpaceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := spacesvc.ListSpacesInput{Search: q.Get("search")}

	switch parent := q.Get("parent_id"); parent {
	case "":
	case "null":
		input.RootsOnly = true
	default:
		id, err := uuid.Parse(parent)
		if err != nil {
			writeError(w, r, h.log, domain.NewValidationError("parent_id", "must be a UUID or \"null\""))
			return
		}
		input.ParentSpaceID = &id
	}

	spaces, err := h.spaces.ListSpaces(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items := make([]spacePayload, 0, len(spaces))
	for _, s := range spaces {
		items = append(items, toSpacePayload(s))
	}

	writeJSON(w, http.StatusOK, struct {
		Items []spacePayload `json:"items"`
	}{items})
}

// Get handles GET /spaces/{spaceID}.
func (h *SpaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "spaceID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	detail, err := h.spaces.GetSpace(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := spaceDetailPayload{
		spacePayload: toSpacePayload(&detail.Space),
		Children:     make([]spaceChildPayload, 0, len(detail.Children)),
		RecentPosts:  make([]postSummaryPayload, 0, len(detail.RecentPosts)),
	}
	for _, c := range detail.Children {
		resp.Children = append(resp.Children, spaceChildPayload{
			ID:          c.ID,
			Name:        c.Name,
			IconURL:     c.IconURL,
			MemberCount: c.MemberCount,
		})
	}
	for _, p := range detail.RecentPosts {
		resp.RecentPosts = append(resp.RecentPosts, toPostSummaryPayload(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

type updateSpaceRequest struct {
	Name          *string             `json:"name"`
	Description   *string             `json:"description"`
	ParentSpaceID *uuid.UUID          `json:"parent_space_id"`
	ClearParent   bool                `json:"clear_parent"`
	IconURL       *string             `json:"icon_url"`
	IsPublic      *bool               `json:"is_public"`
	AccessRules   *accessRulesPayload `json:"access_rules"`
}

// Update handles PUT /spaces/{spaceID}.
func (h *SpaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "spaceID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req updateSpaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := spacesvc.UpdateSpaceInput{
		SpaceID:       id,
		Name:          req.Name,
		Description:   req.Description,
		ParentSpaceID: req.ParentSpaceID,
		ClearParent:   req.ClearParent,
		IconURL:       req.IconURL,
		IsPublic:      req.IsPublic,
	}
	if req.AccessRules != nil {
		input.AccessRules = &domain.AccessRules{
			RequireApproval: req.AccessRules.RequireApproval,
			AllowedDomains:  req.AccessRules.AllowedDomains,
			PostingRoles:    req.AccessRules.PostingRoles,
		}
	}

	updated, err := h.spaces.UpdateSpace(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		spacePayload
	}{"Space updated successfully", toSpacePayload(updated)})
}

// Delete handles DELETE /spaces/{spaceID}.
func (h *SpaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "spaceID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.spaces.DeleteSpace(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{"Space deleted successfully"})
}

// Join handles POST /spaces/{spaceID}/join.
func (h *SpaceHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "spaceID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.spaces.JoinSpace(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{"Joined space successfully"})
}

// Leave handles POST /spaces/{spaceID}/leave.
func (h *SpaceHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "spaceID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.spaces.LeaveSpace(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{"Left space successfully"})
}

type analyticsDayPayload struct {
	Date        string `json:"date"`
	NewPosts    int    `json:"new_posts"`
	NewComments int    `json:"new_comments"`
	Views       int    `json:"views"`
	ActiveUsers int    `json:"active_users"`
	NewMembers  int    `json:"new_members"`
}

type analyticsTotalsPayload struct {
	NewPosts    int `json:"new_posts"`
	NewComments int `json:"new_comments"`
	Views       int `json:"views"`
	ActiveUsers int `json:"active_users"`
	NewMembers  int `json:"new_members"`
}

// Analytics handles GET /spaces/{spaceID}/analytics.
func (h *SpaceHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "spaceID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rng, err := h.spaces.GetAnalytics(r.Context(), spacesvc.AnalyticsInput{
		SpaceID: id,
		Period:  domain.AnalyticsPeriod(r.URL.Query().Get("period")),
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	days := make([]analyticsDayPayload, 0, len(rng.Days))
	for _, d := range rng.Days {
		days = append(days, analyticsDayPayload{
			Date:        d.Date.Format("2006-01-02"),
			NewPosts:    d.NewPosts,
			NewComments: d.NewComments,
			Views:       d.Views,
			ActiveUsers: d.ActiveUsers,
			NewMembers:  d.NewMembers,
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Days   []analyticsDayPayload  `json:"days"`
		Totals analyticsTotalsPayload `json:"totals"`
	}{
		Days: days,
		Totals: analyticsTotalsPayload{
			NewPosts:    rng.Totals.NewPosts,
			NewComments: rng.Totals.NewComments,
			Views:       rng.Totals.Views,
			ActiveUsers: rng.Totals.ActiveUsers,
			NewMembers:  rng.Totals.NewMembers,
		},
	})
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}
