package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
)

// HTTPGateway implements BackendGateway over the backend's JSON/HTTP API.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger

	mu         sync.RWMutex
	credential Credential
}

// Ensure HTTPGateway implements the BackendGateway interface.
var _ BackendGateway = (*HTTPGateway)(nil)

// NewHTTPGateway creates a gateway talking to the backend at baseURL.
// A zero timeout defaults to 15 seconds.
func NewHTTPGateway(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPGateway {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("component", "http_gateway"),
	}
}

// SetCredential installs the bearer credential for authenticated calls.
func (g *HTTPGateway) SetCredential(cred Credential) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.credential = cred
}

// ClearCredential removes the bearer credential.
func (g *HTTPGateway) ClearCredential() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.credential = ""
}

func (g *HTTPGateway) currentCredential() Credential {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.credential
}

// Wire types shared with the server's API layer.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type submitQuizRequest struct {
	LessonID uuid.UUID `json:"lesson_id"`
	Correct  int       `json:"correct_count"`
	Total    int       `json:"total_questions"`
}

type submitQuizResponse struct {
	Score  int   `json:"score"`
	Earned int64 `json:"earned"`
}

type rewardSummaryResponse struct {
	TotalEarned int64 `json:"total_earned"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Login implements BackendGateway.Login.
func (g *HTTPGateway) Login(ctx context.Context, email, password string) (Credential, *domain.User, error) {
	var resp authResponse
	err := g.call(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp, false)
	if err != nil {
		return "", nil, err
	}
	g.SetCredential(Credential(resp.AccessToken))
	return Credential(resp.AccessToken), &resp.User, nil
}

// Signup implements BackendGateway.Signup.
func (g *HTTPGateway) Signup(ctx context.Context, name, email, password string) (Credential, *domain.User, error) {
	var resp authResponse
	req := signupRequest{Name: name, Email: email, Password: password}
	err := g.call(ctx, http.MethodPost, "/auth/signup", req, &resp, false)
	if err != nil {
		return "", nil, err
	}
	g.SetCredential(Credential(resp.AccessToken))
	return Credential(resp.AccessToken), &resp.User, nil
}

// Me implements BackendGateway.Me.
func (g *HTTPGateway) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := g.call(ctx, http.MethodGet, "/user/profile", nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// Balance implements BackendGateway.Balance.
func (g *HTTPGateway) Balance(ctx context.Context) (int64, error) {
	var resp balanceResponse
	if err := g.call(ctx, http.MethodGet, "/wallet/balance", nil, &resp, true); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

// Categories implements BackendGateway.Categories.
func (g *HTTPGateway) Categories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := g.call(ctx, http.MethodGet, "/lessons/categories", nil, &cats, true); err != nil {
		return nil, err
	}
	return cats, nil
}

// Lessons implements BackendGateway.Lessons.
func (g *HTTPGateway) Lessons(ctx context.Context, categoryID string) ([]domain.Lesson, error) {
	var lessons []domain.Lesson
	path := "/lessons/category/" + categoryID
	if err := g.call(ctx, http.MethodGet, path, nil, &lessons, true); err != nil {
		return nil, err
	}
	return lessons, nil
}

// Questions implements BackendGateway.Questions.
func (g *HTTPGateway) Questions(ctx context.Context, lessonID uuid.UUID) ([]domain.Question, error) {
	var questions []domain.Question
	path := "/quiz/start/" + lessonID.String()
	if err := g.call(ctx, http.MethodGet, path, nil, &questions, true); err != nil {
		return nil, err
	}
	return questions, nil
}

// CompleteLesson implements BackendGateway.CompleteLesson.
func (g *HTTPGateway) CompleteLesson(ctx context.Context, lessonID uuid.UUID) error {
	path := "/lesson/" + lessonID.String() + "/complete"
	return g.call(ctx, http.MethodPost, path, nil, nil, true)
}

// SubmitQuiz implements BackendGateway.SubmitQuiz.
func (g *HTTPGateway) SubmitQuiz(ctx context.Context, lessonID uuid.UUID, score Score) (int64, error) {
	var resp submitQuizResponse
	req := submitQuizRequest{LessonID: lessonID, Correct: score.Correct, Total: score.Total}
	if err := g.call(ctx, http.MethodPost, "/quiz/submit", req, &resp, true); err != nil {
		return 0, err
	}
	return resp.Earned, nil
}

// RewardSummary implements BackendGateway.RewardSummary.
func (g *HTTPGateway) RewardSummary(ctx context.Context) (int64, error) {
	var resp rewardSummaryResponse
	if err := g.call(ctx, http.MethodGet, "/rewards/summary", nil, &resp, true); err != nil {
		return 0, err
	}
	return resp.TotalEarned, nil
}

// call performs a JSON round trip against the backend. When authed is true the
// current bearer credential is attached; a 401 on such a call classifies as
// ErrSessionExpired, while on login/signup it classifies as
// ErrInvalidCredentials.
func (g *HTTPGateway) call(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if cred := g.currentCredential(); cred != "" {
			req.Header.Set("Authorization", "Bearer "+string(cred))
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("backend request failed",
			"method", method,
			"path", path,
			"error", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrNetwork)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return g.classifyStatus(method, path, resp, authed)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", method, path, ErrServer)
	}
	return nil
}

func (g *HTTPGateway) classifyStatus(method, path string, resp *http.Response, authed bool) error {
	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	g.logger.Debug("backend rejected request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"message", msg)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if authed {
			return fmt.Errorf("%s: %w", msg, ErrSessionExpired)
		}
		return fmt.Errorf("%s: %w", msg, ErrInvalidCredentials)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, ErrEmailExists)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%s: %w", msg, ErrValidation)
	default:
		return fmt.Errorf("%s: %w", msg, ErrServer)
	}
}
