package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roam-backend/internal/application/command"
	"roam-backend/internal/application/common"
	"roam-backend/internal/application/query"
	"roam-backend/internal/domain"
	"roam-backend/internal/infrastructure"
	"roam-backend/internal/places"
)

type stubUserService struct {
	registerResult *command.CreateUserCommandResult
	registerErr    error
	loginResult    *command.LoginUserCommandResult
	loginErr       error
}

func (s *stubUserService) Register(context.Context, *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	return s.registerResult, s.registerErr
}

func (s *stubUserService) Login(context.Context, *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	return s.loginResult, s.loginErr
}

type stubTravelService struct {
	addResult    *command.AddEntryCommandResult
	listResult   *query.EntryQueryListResult
	editResult   *command.EditEntryCommandResult
	removeResult *command.RemoveEntryCommandResult
	err          error

	lastEdit *command.EditEntryCommand
}

func (s *stubTravelService) Add(_ context.Context, _ *command.AddEntryCommand) (*command.AddEntryCommandResult, error) {
	return s.addResult, s.err
}

func (s *stubTravelService) List(context.Context, string) (*query.EntryQueryListResult, error) {
	return s.listResult, s.err
}

func (s *stubTravelService) Edit(_ context.Context, cmd *command.EditEntryCommand) (*command.EditEntryCommandResult, error) {
	s.lastEdit = cmd
	return s.editResult, s.err
}

func (s *stubTravelService) Remove(context.Context, string) (*command.RemoveEntryCommandResult, error) {
	return s.removeResult, s.err
}

type stubRankService struct {
	result *query.RankQueryListResult
	err    error
	lastN  int
}

func (s *stubRankService) Increment(context.Context, string, string, string) error { return nil }

func (s *stubRankService) TopRanked(_ context.Context, n int) (*query.RankQueryListResult, error) {
	s.lastN = n
	return s.result, s.err
}

type fixture struct {
	users    *stubUserService
	history  *stubTravelService
	wishlist *stubTravelService
	ranks    *stubRankService
	handler  http.Handler
}

func newFixture(t *testing.T, placesClient *places.Client, limiter *infrastructure.RateLimiter) *fixture {
	t.Helper()
	if limiter == nil {
		limiter = infrastructure.NewRateLimiter(time.Minute, 100)
	}

	f := &fixture{
		users:    &stubUserService{},
		history:  &stubTravelService{},
		wishlist: &stubTravelService{},
		ranks:    &stubRankService{},
	}
	h := NewHandler(f.users, f.history, f.wishlist, f.ranks, placesClient, nil, limiter,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.handler = h.Router()
	return f
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.RemoteAddr = "203.0.113.7:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegisterCreated(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.users.registerResult = &command.CreateUserCommandResult{
		Result: &common.UserResult{ID: "u1", Username: "ada", Name: "Ada",
			Counters: &common.CountersResult{}},
	}

	rec := doJSON(t, f.handler, http.MethodPost, "/register",
		`{"username":"ada","password":"pw","name":"Ada"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body command.CreateUserCommandResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u1", body.Result.ID)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestErrorBodyShapeIsUniform(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing field", fmt.Errorf("%w: city", domain.ErrMissingField), http.StatusBadRequest},
		{"bad credential", domain.ErrBadCredential, http.StatusUnauthorized},
		{"not found", fmt.Errorf("user %q: %w", "x", domain.ErrNotFound), http.StatusNotFound},
		{"already exists", fmt.Errorf("username: %w", domain.ErrAlreadyExists), http.StatusConflict},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil, nil)
			f.users.loginErr = tt.err

			rec := doJSON(t, f.handler, http.MethodPost, "/login", `{"username":"a","password":"b"}`)
			assert.Equal(t, tt.status, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body["error"])
			assert.Len(t, body, 1)
		})
	}
}

func TestAddHistoryRoutesToHistoryService(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.history.addResult = &command.AddEntryCommandResult{
		Result: &common.EntryResult{ID: "e1", PlaceID: "p1", City: "Paris"},
	}
	f.wishlist.err = fmt.Errorf("wishlist should not be called")

	rec := doJSON(t, f.handler, http.MethodPost, "/history",
		`{"user_id":"u1","place_id":"p1","city":"Paris","country":"France","date":"2024-06-01"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"p1"`)
}

func TestEditHistoryPassesPathIDAndPartialBody(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.history.editResult = &command.EditEntryCommandResult{
		Result: &common.EntryResult{ID: "e1", Notes: "x"},
	}

	rec := doJSON(t, f.handler, http.MethodPatch, "/history/e1", `{"notes":"x"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, f.history.lastEdit)
	assert.Equal(t, "e1", f.history.lastEdit.EntryID)
	require.NotNil(t, f.history.lastEdit.Notes)
	assert.Equal(t, "x", *f.history.lastEdit.Notes)
	assert.Nil(t, f.history.lastEdit.City)
	assert.Nil(t, f.history.lastEdit.PlaceID)
}

func TestInvalidJSONBody(t *testing.T) {
	f := newFixture(t, nil, nil)

	rec := doJSON(t, f.handler, http.MethodPost, "/register", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestTopRanksQueryParam(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.ranks.result = &query.RankQueryListResult{Result: []*common.RankResult{}}

	rec := doJSON(t, f.handler, http.MethodGet, "/ranks?n=3", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, f.ranks.lastN)

	rec = doJSON(t, f.handler, http.MethodGet, "/ranks", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, f.ranks.lastN)

	rec = doJSON(t, f.handler, http.MethodGet, "/ranks?n=two", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchProxiesUpstreamVerbatim(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/autocomplete/json", r.URL.Path)
		assert.Equal(t, "locality", r.URL.Query().Get("types"))
		assert.Equal(t, "par", r.URL.Query().Get("input"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		fmt.Fprint(w, `{"predictions":[{"description":"Paris, France"}]}`)
	}))
	defer upstream.Close()

	client := places.NewClient("test-key", 100)
	client.BaseURL = upstream.URL
	f := newFixture(t, client, nil)

	rec := doJSON(t, f.handler, http.MethodGet, "/search?text=par", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"predictions":[{"description":"Paris, France"}]}`, rec.Body.String())
}

func TestSearchUpstreamFailureIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := places.NewClient("test-key", 100)
	client.BaseURL = upstream.URL
	f := newFixture(t, client, nil)

	rec := doJSON(t, f.handler, http.MethodGet, "/search?text=par", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestSearchRateLimited(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer upstream.Close()

	client := places.NewClient("test-key", 100)
	client.BaseURL = upstream.URL
	f := newFixture(t, client, infrastructure.NewRateLimiter(time.Minute, 1))

	rec := doJSON(t, f.handler, http.MethodGet, "/search?text=a", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, f.handler, http.MethodGet, "/search?text=a", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
