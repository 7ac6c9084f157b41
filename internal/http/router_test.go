package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EricVonza/go-pesa-backend/internal/domain"
	"github.com/EricVonza/go-pesa-backend/internal/repository"
	"github.com/EricVonza/go-pesa-backend/internal/service/auth"
	"github.com/EricVonza/go-pesa-backend/pkg/config"
	jwtpkg "github.com/EricVonza/go-pesa-backend/pkg/jwt"
)

const testSecret = "router-test-secret"

type stubUserRepository struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if _, exists := s.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	copied := *user
	s.byEmail[user.Email] = &copied
	s.byID[user.ID] = &copied
	return nil
}

func (s *stubUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func newTestRouter(t *testing.T) (*Router, *stubUserRepository) {
	t.Helper()
	repo := newStubUserRepository()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.APIConfig{JWTSecret: testSecret, TokenTTL: time.Hour}
	svc := auth.New(repo, log, cfg)
	return NewRouter(log, svc, "https://go-pesa-platform.vercel.app", nil), repo
}

func doJSON(t *testing.T, router *Router, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
	return payload
}

func TestSignupLoginProfileScenario(t *testing.T) {
	router, _ := newTestRouter(t)
	signupBody := map[string]string{"name": "A", "email": "a@x.com", "username": "a", "password": "p1"}

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", signupBody, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["message"]; got != "User created successfully" {
		t.Fatalf("unexpected signup message: %q", got)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/signup", signupBody, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("duplicate signup status %d, want 500", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Error creating user" {
		t.Fatalf("unexpected duplicate signup error: %q", got)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{"email": "a@x.com", "password": "p1"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	token := decodeBody(t, rec)["token"]
	if token == "" {
		t.Fatal("login response missing token")
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{"email": "a@x.com", "password": "wrong"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad-password login status %d, want 401", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Invalid credentials" {
		t.Fatalf("unexpected bad-password error: %q", got)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{"email": "b@x.com", "password": "p1"}, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown-email login status %d, want 404", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "User not found" {
		t.Fatalf("unexpected unknown-email error: %q", got)
	}

	header := http.Header{"Authorization": {"Bearer " + token}}
	rec = doJSON(t, router, http.MethodGet, "/api/auth/user", nil, header)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var profile map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile["name"] != "A" || profile["email"] != "a@x.com" || profile["username"] != "a" {
		t.Fatalf("unexpected profile payload: %v", profile)
	}
	if len(profile) != 3 {
		t.Fatalf("profile leaks extra fields: %v", profile)
	}
}

func TestProfileRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/auth/user", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing-token status %d, want 401", rec.Code)
	}
}

func TestProfileRejectsTamperedToken(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup",
		map[string]string{"name": "A", "email": "a@x.com", "username": "a", "password": "p1"}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "a@x.com", "password": "p1"}, nil)
	token := decodeBody(t, rec)["token"]

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'x' {
		tampered[last] = 'y'
	} else {
		tampered[last] = 'x'
	}
	header := http.Header{"Authorization": {"Bearer " + string(tampered)}}
	rec = doJSON(t, router, http.MethodGet, "/api/auth/user", nil, header)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("tampered-token status %d, want 401", rec.Code)
	}
}

func TestProfileRejectsExpiredToken(t *testing.T) {
	router, repo := newTestRouter(t)
	user := &domain.User{ID: "user-1", Name: "A", Email: "a@x.com", Username: "a"}
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	expired, err := jwtpkg.GenerateToken(user.ID, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate expired token: %v", err)
	}
	header := http.Header{"Authorization": {"Bearer " + expired}}
	rec := doJSON(t, router, http.MethodGet, "/api/auth/user", nil, header)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expired-token status %d, want 401", rec.Code)
	}
}

func TestProfileUnknownUserReturns404(t *testing.T) {
	router, _ := newTestRouter(t)
	// Valid signature for an id the store has never seen.
	token, err := jwtpkg.GenerateToken("ghost", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	header := http.Header{"Authorization": {"Bearer " + token}}
	rec := doJSON(t, router, http.MethodGet, "/api/auth/user", nil, header)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown-user status %d, want 404", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "User not found" {
		t.Fatalf("unexpected unknown-user error: %q", got)
	}
}

func TestSignupRejectsWrongMethod(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/auth/signup", nil, nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("wrong-method status %d, want 405", rec.Code)
	}
}

func TestSignupRejectsMalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed-body status %d, want 400", rec.Code)
	}
}

func TestCORSHeadersAndPreflight(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{"email": "x", "password": "y"}, nil)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://go-pesa-platform.vercel.app" {
		t.Fatalf("unexpected allow-origin header: %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != corsMethods {
		t.Fatalf("unexpected allow-methods header: %q", got)
	}

	rec = doJSON(t, router, http.MethodOptions, "/api/auth/login", nil, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status %d, want 204", rec.Code)
	}
}

func TestHealthzReportsOKWithoutDB(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status %d, want 200", rec.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode healthz: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("unexpected healthz status: %v", payload["status"])
	}
}

func TestHealthzReportsDegradedDB(t *testing.T) {
	repo := newStubUserRepository()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.APIConfig{JWTSecret: testSecret, TokenTTL: time.Hour}
	svc := auth.New(repo, log, cfg)
	down := func(context.Context) error { return context.DeadlineExceeded }
	router := NewRouter(log, svc, "", down)

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("healthz status %d, want 503", rec.Code)
	}
}
