package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio/repository"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio/service"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/submission"
)

type recordingDispatcher struct {
	sent int
	err  error
}

func (d *recordingDispatcher) Notify(to, subject, body string) error {
	d.sent++
	return d.err
}

// failableRepo wraps a memory repo and can be switched into write failure.
type failableRepo struct {
	*repository.MemoryRepo
	failWrites bool
}

func (f *failableRepo) Save(ctx context.Context, doc *portfolio.Document) error {
	if f.failWrites {
		return fmt.Errorf("%w: medium unavailable", repository.ErrWriteFailed)
	}
	return f.MemoryRepo.Save(ctx, doc)
}

func newTestServer(t *testing.T) (*gin.Engine, *service.Store, *failableRepo, *recordingDispatcher) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := &failableRepo{MemoryRepo: repository.NewMemoryRepo()}
	store := service.New(repo)
	disp := &recordingDispatcher{}
	subs := submission.NewService(store, disp, "owner@example.com")

	g := gin.New()
	RegisterPortfolioRoutes(g, store, subs)
	return g, store, repo, disp
}

func doJSON(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestGetPortfolio_EmptyStore(t *testing.T) {
	g, _, _, _ := newTestServer(t)

	w := doJSON(g, http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)

	var content map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &content))
	require.Empty(t, content)
}

func TestPostPortfolio_RoundTrip(t *testing.T) {
	g, _, _, _ := newTestServer(t)

	body := `{"name":"Jane","role":"Engineer","skills":[{"name":"Go","icon":"go.png"}]}`
	w := doJSON(g, http.MethodPost, "/api/portfolio", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(g, http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, body, w.Body.String())
}

func TestPostPortfolio_WriteFailureLeavesOldContent(t *testing.T) {
	g, _, repo, _ := newTestServer(t)

	require.Equal(t, http.StatusOK, doJSON(g, http.MethodPost, "/api/portfolio", `{"name":"old"}`).Code)

	repo.failWrites = true
	w := doJSON(g, http.MethodPost, "/api/portfolio", `{"name":"new"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "error")

	repo.failWrites = false
	w = doJSON(g, http.MethodGet, "/api/portfolio", "")
	var content map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &content))
	require.Equal(t, "old", content["name"])
}

func TestPostContact_EndToEnd(t *testing.T) {
	g, store, _, disp := newTestServer(t)

	w := doJSON(g, http.MethodPost, "/api/contact", `{"name":"A","email":"a@x.com","message":"hi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	msgs := store.Load(context.Background()).Messages
	require.Len(t, msgs, 1)
	require.Equal(t, "A", msgs[0].Name)
	require.Equal(t, "a@x.com", msgs[0].Email)
	require.Equal(t, "hi", msgs[0].Message)
	require.Positive(t, msgs[0].ID)
	require.Equal(t, 1, disp.sent)
}

func TestPostContact_PersistFailure(t *testing.T) {
	g, _, repo, disp := newTestServer(t)
	// the empty store seeds on first use so the failure hits the append, not the seed
	doJSON(g, http.MethodGet, "/api/portfolio", "")

	repo.failWrites = true
	w := doJSON(g, http.MethodPost, "/api/contact", `{"name":"A","email":"a@x.com","message":"hi"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Zero(t, disp.sent, "no notification for an unrecorded submission")
}

func TestPostContact_DispatchFailureInvisible(t *testing.T) {
	g, store, _, disp := newTestServer(t)
	disp.err = fmt.Errorf("smtp down")

	w := doJSON(g, http.MethodPost, "/api/contact", `{"name":"A","email":"a@x.com","message":"hi"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.Load(context.Background()).Messages, 1)
}

func TestPostBooking(t *testing.T) {
	g, store, _, disp := newTestServer(t)

	body := `{"type":"Service","title":"Web Dev","price":"$100","name":"B","email":"b@x.com","date":"2026-09-01"}`
	w := doJSON(g, http.MethodPost, "/api/booking", body)
	require.Equal(t, http.StatusOK, w.Code)

	bookings := store.Load(context.Background()).Bookings
	require.Len(t, bookings, 1)
	require.Equal(t, "Service", bookings[0].Type)
	require.Equal(t, "Web Dev", bookings[0].Title)
	require.NotEmpty(t, bookings[0].CreatedAt)
	require.Equal(t, 1, disp.sent)
}

func TestPostBooking_MalformedJSON(t *testing.T) {
	g, _, _, _ := newTestServer(t)
	w := doJSON(g, http.MethodPost, "/api/booking", `{"type":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
