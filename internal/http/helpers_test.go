package http_test

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/interviewmate/backend/internal/domain"
	api "github.com/interviewmate/backend/internal/http"
	"github.com/interviewmate/backend/internal/queue"
	"github.com/interviewmate/backend/internal/repo"
)

const testFrontendURL = "http://localhost:5173"

// memStore is an in-memory stand-in for repo.Store, close enough for
// handler tests: same nil-on-absence contract, same one-shot token
// consumption, same newest-first listing.
type memStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
	evals []domain.Evaluation
	seq   int
}

func newMemStore() *memStore {
	return &memStore{users: map[string]*domain.User{}}
}

func (m *memStore) Ping(ctx context.Context) error { return nil }

func (m *memStore) CreateUser(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

func (m *memStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) ConsumeVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if !u.Verified && u.VerificationToken == token && token != "" {
			u.Verified = true
			u.VerificationToken = ""
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) SetResetToken(ctx context.Context, email, token string, expiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		exp := expiry.UTC()
		u.ResetToken = token
		u.ResetTokenExpiry = &exp
	}
	return nil
}

func (m *memStore) ConsumeResetToken(ctx context.Context, token, newHash string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	for _, u := range m.users {
		if u.ResetToken == token && token != "" && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now) {
			u.PasswordHash = newHash
			u.ResetToken = ""
			u.ResetTokenExpiry = nil
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// expireReset backdates a pending reset token, for expiry tests.
func (m *memStore) expireReset(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok && u.ResetTokenExpiry != nil {
		past := time.Now().Add(-time.Minute).UTC()
		u.ResetTokenExpiry = &past
	}
}

func (m *memStore) AddEvaluation(ctx context.Context, ev *domain.Evaluation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if strings.TrimSpace(ev.UserEmail) == "" {
		return repo.ErrInvalidEvaluation{Field: "userEmail"}
	}
	if ev.DetailedEvaluation == "" {
		return repo.ErrInvalidEvaluation{Field: "detailed_evaluation"}
	}
	ev.ID = primitive.NewObjectID()
	// distinct, strictly increasing timestamps so ordering is deterministic
	m.seq++
	ev.CreatedAt = time.Unix(1700000000, 0).UTC().Add(time.Duration(m.seq) * time.Second)
	m.evals = append(m.evals, *ev)
	return nil
}

func (m *memStore) ListEvaluationsByEmail(ctx context.Context, email string) ([]domain.Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Evaluation{}
	for _, ev := range m.evals {
		if ev.UserEmail == email {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// recordMailer captures outbound mail instead of sending it.
type recordMailer struct {
	mu          sync.Mutex
	verifyLinks map[string]string
	resetLinks  map[string]string
	fail        bool
}

func newRecordMailer() *recordMailer {
	return &recordMailer{verifyLinks: map[string]string{}, resetLinks: map[string]string{}}
}

func (r *recordMailer) SendVerification(ctx context.Context, to, name, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errMailDown
	}
	r.verifyLinks[to] = link
	return nil
}

func (r *recordMailer) SendPasswordReset(ctx context.Context, to, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errMailDown
	}
	r.resetLinks[to] = link
	return nil
}

func (r *recordMailer) verifyToken(email string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.TrimPrefix(r.verifyLinks[email], testFrontendURL+"/verify-email/")
}

func (r *recordMailer) resetToken(email string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.TrimPrefix(r.resetLinks[email], testFrontendURL+"/reset-password/")
}

var errMailDown = errors.New("smtp unavailable")

type testEnv struct {
	Store  *memStore
	Mail   *recordMailer
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	mailer := newRecordMailer()
	h := api.NewHandler(store, store, mailer, queue.NewNoop(), nil, 0, testFrontendURL)
	return &testEnv{Store: store, Mail: mailer, Router: api.NewRouter(h)}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	e.Router.ServeHTTP(w, req)
	return w
}
