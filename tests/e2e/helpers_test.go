//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projecthub/community-backend/internal/adapter/postgres"
	activityrepo "github.com/projecthub/community-backend/internal/adapter/postgres/activity"
	analyticsrepo "github.com/projecthub/community-backend/internal/adapter/postgres/analytics"
	bookmarkrepo "github.com/projecthub/community-backend/internal/adapter/postgres/bookmark"
	modlogrepo "github.com/projecthub/community-backend/internal/adapter/postgres/modlog"
	pollrepo "github.com/projecthub/community-backend/internal/adapter/postgres/poll"
	postrepo "github.com/projecthub/community-backend/internal/adapter/postgres/post"
	reactionrepo "github.com/projecthub/community-backend/internal/adapter/postgres/reaction"
	spacerepo "github.com/projecthub/community-backend/internal/adapter/postgres/space"
	"github.com/projecthub/community-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/projecthub/community-backend/internal/auth"
	"github.com/projecthub/community-backend/internal/config"
	pollsvc "github.com/projecthub/community-backend/internal/service/poll"
	postsvc "github.com/projecthub/community-backend/internal/service/post"
	spacesvc "github.com/projecthub/community-backend/internal/service/space"
	"github.com/projecthub/community-backend/internal/transport/middleware"
	"github.com/projecthub/community-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	spaces := spacerepo.New(pool)
	posts := postrepo.New(pool)
	polls := pollrepo.New(pool)
	reactions := reactionrepo.New(pool)
	bookmarks := bookmarkrepo.New(pool)
	modlog := modlogrepo.New(pool)
	analytics := analyticsrepo.New(pool)
	activity := activityrepo.New(pool)

	spaceService := spacesvc.NewService(logger, spaces, posts, analytics, txm)
	postService := postsvc.NewService(logger, posts, spaces, polls, reactions, bookmarks, modlog, analytics, activity, txm)
	pollService := pollsvc.NewService(logger, polls, txm)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	router := rest.NewRouter(config.CORSConfig{
		AllowedOrigins:   "*",
		AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type",
		AllowCredentials: true,
		MaxAge:           86400,
	}, rest.RouterDeps{
		Health: rest.NewHealthHandler(pool, "test-version"),
		Spaces: rest.NewSpaceHandler(logger, spaceService),
		Posts:  rest.NewPostHandler(logger, postService, pollService),
		Auth:   middleware.Auth(jwtMgr),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// request helpers
// ---------------------------------------------------------------------------

// doJSON sends a request with an optional JSON body and bearer token, and
// returns the status code plus the decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// createTestUserAndGetToken inserts a user directly into the DB and returns
// a valid JWT access token for that user, plus the user's IDs.
// ---------------------------------------------------------------------------

type testUser struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Token     string
}

func createTestUser(t *testing.T, ts *testServer, companyID uuid.UUID) testUser {
	t.Helper()

	userID := uuid.New()
	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO users (id, company_id, username, created_at)
		 VALUES ($1, $2, $3, $4)`,
		userID, companyID,
		fmt.Sprintf("e2e-%s", userID.String()[:8]),
		time.Now(),
	)
	if err != nil {
		t.Fatalf("insert test user: %v", err)
	}

	token, err := ts.jwt.GenerateAccessToken(userID, companyID, "member")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return testUser{ID: userID, CompanyID: companyID, Token: token}
}
