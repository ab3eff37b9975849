package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
	pollsvc "github.com/projecthub/community-backend/internal/service/poll"
	postsvc "github.com/projecthub/community-backend/internal/service/post"
)

type postService interface {
	CreatePost(ctx context.Context, input postsvc.CreatePostInput) (*domain.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*domain.PostDetail, error)
	ListPosts(ctx context.Context, input postsvc.ListPostsInput) (*domain.PostPage, error)
	UpdatePost(ctx context.Context, input postsvc.UpdatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID, reason string) error
	React(ctx context.Context, input postsvc.ReactInput) (string, error)
	Bookmark(ctx context.Context, input postsvc.BookmarkInput) (string, error)
}

type pollService interface {
	Vote(ctx context.Context, input pollsvc.VoteInput) (domain.VoteOutcome, error)
}

// PostHandler serves the post, reaction, bookmark, and poll endpoints.
type PostHandler struct {
	posts postService
	polls pollService
	log   *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(log *slog.Logger, posts postService, polls pollService) *PostHandler {
	return &PostHandler{posts: posts, polls: polls, log: log}
}

type postPayload struct {
	ID             uuid.UUID `json:"id"`
	SpaceID        uuid.UUID `json:"space_id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	ContentFormat  string    `json:"content_format"`
	Tags           []string  `json:"tags"`
	IsAnnouncement bool      `json:"is_announcement"`
	IsPinned       bool      `json:"is_pinned"`
	ViewCount      int       `json:"view_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type postSummaryPayload struct {
	postPayload
	AuthorName      string  `json:"author_name"`
	AuthorAvatarURL *string `json:"author_avatar_url,omitempty"`
	ReactionCount   int     `json:"reaction_count"`
}

type reactionCountPayload struct {
	Type        string `json:"type"`
	Count       int    `json:"count"`
	UserReacted bool   `json:"user_reacted"`
}

type pollVoteCountPayload struct {
	OptionIndex int `json:"option_index"`
	Count       int `json:"count"`
}

type pollPayload struct {
	ID               uuid.UUID              `json:"id"`
	Question         string                 `json:"question"`
	Options          []string               `json:"options"`
	ClosesAt         *time.Time             `json:"closes_at,omitempty"`
	IsMultipleChoice bool                   `json:"is_multiple_choice"`
	IsAnonymous      bool                   `json:"is_anonymous"`
	VoteCounts       []pollVoteCountPayload `json:"vote_counts"`
	UserVotes        []int                  `json:"user_votes"`
}

type postDetailPayload struct {
	postPayload
	AuthorName      string                 `json:"author_name"`
	AuthorAvatarURL *string                `json:"author_avatar_url,omitempty"`
	Reactions       []reactionCountPayload `json:"reactions"`
	IsBookmarked    bool                   `json:"is_bookmarked"`
	Poll            *pollPayload           `json:"poll,omitempty"`
}

func toPostPayload(p domain.Post) postPayload {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return postPayload{
		ID:             p.ID,
		SpaceID:        p.SpaceID,
		UserID:         p.UserID,
		Title:          p.Title,
		Content:        p.Content,
		ContentFormat:  string(p.ContentFormat),
		Tags:           tags,
		IsAnnouncement: p.IsAnnouncement,
		IsPinned:       p.IsPinned,
		ViewCount:      p.ViewCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPostSummaryPayload(p domain.PostSummary) postSummaryPayload {
	return postSummaryPayload{
		postPayload:     toPostPayload(p.Post),
		AuthorName:      p.AuthorName,
		AuthorAvatarURL: p.AuthorAvatarURL,
		ReactionCount:   p.ReactionCount,
	}
}

func toPollPayload(p *domain.PollDetail) *pollPayload {
	counts := make([]pollVoteCountPayload, 0, len(p.VoteCounts))
	for _, c := range p.VoteCounts {
		counts = append(counts, pollVoteCountPayload{OptionIndex: c.OptionIndex, Count: c.Count})
	}
	votes := p.UserVotes
	if votes == nil {
		votes = []int{}
	}
	return &pollPayload{
		ID:               p.ID,
		Question:         p.Question,
		Options:          p.Options,
		ClosesAt:         p.ClosesAt,
		IsMultipleChoice: p.IsMultipleChoice,
		IsAnonymous:      p.IsAnonymous,
		VoteCounts:       counts,
		UserVotes:        votes,
	}
}

type createPollRequest struct {
	Question         string     `json:"question"`
	Options          []string   `json:"options"`
	ClosesAt         *time.Time `json:"closes_at"`
	IsMultipleChoice bool       `json:"is_multiple_choice"`
	IsAnonymous      bool       `json:"is_anonymous"`
}

type createPostRequest struct {
	SpaceID        uuid.UUID          `json:"space_id"`
	Title          string             `json:"title"`
	Content        string             `json:"content"`
	ContentFormat  string             `json:"content_format"`
	Tags           []string           `json:"tags"`
	IsAnnouncement bool               `json:"is_announcement"`
	Poll           *createPollRequest `json:"poll"`
}

// Create handles POST /posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := postsvc.CreatePostInput{
		SpaceID:        req.SpaceID,
		Title:          req.Title,
		Content:        req.Content,
		ContentFormat:  domain.ContentFormat(req.ContentFormat),
		Tags:           req.Tags,
		IsAnnouncement: req.IsAnnouncement,
	}
	if req.Poll != nil {
		input.Poll = &postsvc.PollInput{
			Question:         req.Poll.Question,
			Options:          req.Poll.Options,
			ClosesAt:         req.Poll.ClosesAt,
			IsMultipleChoice: req.Poll.IsMultipleChoice,
			IsAnonymous:      req.Poll.IsAnonymous,
		}
	}

	created, err := h.posts.CreatePost(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Message string `json:"message"`
		postPayload
	}{"Post created successfully", toPostPayload(*created)})
}

// Get handles GET /posts/{postID}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "postID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	detail, err := h.posts.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := postDetailPayload{
		postPayload:     toPostPayload(detail.Post),
		AuthorName:      detail.AuthorName,
		AuthorAvatarURL: detail.AuthorAvatarURL,
		Reactions:       make([]reactionCountPayload, 0, len(detail.Reactions)),
		IsBookmarked:    detail.IsBookmarked,
	}
	for _, rc := range detail.Reactions {
		resp.Reactions = append(resp.Reactions, reactionCountPayload{
			Type:        rc.Type,
			Count:       rc.Count,
			UserReacted: rc.UserReacted,
		})
	}
	if detail.Poll != nil {
		resp.Poll = toPollPayload(detail.Poll)
	}

	writeJSON(w, http.StatusOK, resp)
}

type paginationPayload struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ListBySpace handles GET /posts/space/{spaceID}.
func (h *PostHandler) ListBySpace(w http.ResponseWriter, r *http.Request) {
	spaceID, err := pathUUID(r, "spaceID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.posts.ListPosts(r.Context(), postsvc.ListPostsInput{
		SpaceID: spaceID,
		Sort:    domain.PostSort(q.Get("sort")),
		Filter:  domain.PostFilter(q.Get("filter")),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items := make([]postSummaryPayload, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, toPostSummaryPayload(p))
	}

	writeJSON(w, http.StatusOK, struct {
		Items      []postSummaryPayload `json:"items"`
		Pagination paginationPayload    `json:"pagination"`
	}{
		Items: items,
		Pagination: paginationPayload{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

type updatePostRequest struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	ContentFormat *string   `json:"content_format"`
	Tags          *[]string `json:"tags"`
	IsPinned      *bool     `json:"is_pinned"`
}

// Update handles PUT /posts/{postID}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "postID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req updatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := postsvc.UpdatePostInput{
		PostID:   id,
		Title:    req.Title,
		Content:  req.Content,
		IsPinned: req.IsPinned,
	}
	if req.ContentFormat != nil {
		cf := domain.ContentFormat(*req.ContentFormat)
		input.ContentFormat = &cf
	}
	if req.Tags != nil {
		input.Tags = *req.Tags
		input.TagsSet = true
	}

	updated, err := h.posts.UpdatePost(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		postPayload
	}{"Post updated successfully", toPostPayload(*updated)})
}

type deletePostRequest struct {
	Reason string `json:"reason"`
}

// Delete handles DELETE /posts/{postID}. An optional body carries the
// moderation reason.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "postID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req deletePostRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, h.log, err)
			return
		}
	}

	if err := h.posts.DeletePost(r.Context(), id, req.Reason); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{"Post deleted successfully"})
}

type reactRequest struct {
	ReactionType string `json:"reaction_type"`
}

// React handles POST /posts/{postID}/react. Adding a reaction answers 201,
// removing one answers 200.
func (h *PostHandler) React(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "postID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req reactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	action, err := h.posts.React(r.Context(), postsvc.ReactInput{
		PostID:       id,
		ReactionType: req.ReactionType,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if action == "added" {
		status = http.StatusCreated
	}
	writeJSON(w, status, struct {
		Message string `json:"message"`
		Action  string `json:"action"`
	}{"Reaction " + action, action})
}

type bookmarkRequest struct {
	Notes *string `json:"notes"`
}

// Bookmark handles POST /posts/{postID}/bookmark. Adding answers 201;
// updating notes or removing answers 200.
func (h *PostHandler) Bookmark(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "postID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req bookmarkRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, h.log, err)
			return
		}
	}

	action, err := h.posts.Bookmark(r.Context(), postsvc.BookmarkInput{
		PostID: id,
		Notes:  req.Notes,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if action == "added" {
		status = http.StatusCreated
	}
	writeJSON(w, status, struct {
		Message string `json:"message"`
		Action  string `json:"action"`
	}{"Bookmark " + action, action})
}

type voteRequest struct {
	OptionIndex int `json:"option_index"`
}

// Vote handles POST /posts/{postID}/poll/vote.
func (h *PostHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "postID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req voteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	outcome, err := h.polls.Vote(r.Context(), pollsvc.VoteInput{
		PostID:      id,
		OptionIndex: req.OptionIndex,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		Outcome string `json:"outcome"`
	}{"Vote " + string(outcome), string(outcome)})
}
