package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Great2008/reads-web-app/internal/domain"
)

func newTestGateway(t *testing.T, handler http.Handler) *HTTPGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPGateway(server.URL, 5*time.Second, slog.Default())
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "issued-token",
			"user": map[string]interface{}{
				"id":           userID,
				"email":        req.Email,
				"display_name": "Ada",
			},
		})
	}))

	cred, user, err := gw.Login(context.Background(), "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, Credential("issued-token"), cred)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Ada", user.DisplayName)
}

func TestLoginRejectedClassifiesInvalidCredentials(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))

	_, _, err := gw.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthedCallSendsBearerAndClassifiesExpiry(t *testing.T) {
	t.Parallel()

	var gotAuth string
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	gw.SetCredential("session-token")

	_, err := gw.Balance(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestSignupConflictClassifiesEmailExists(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	_, _, err := gw.Signup(context.Background(), "Ada", "ada@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestStatusClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"bad request", http.StatusBadRequest, ErrValidation},
		{"server error", http.StatusInternalServerError, ErrServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			gw.SetCredential("token")

			_, err := gw.Categories(context.Background())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUnreachableBackendClassifiesNetwork(t *testing.T) {
	t.Parallel()

	// Point at a closed port.
	gw := NewHTTPGateway("http://127.0.0.1:1", time.Second, slog.Default())
	_, err := gw.Balance(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestSubmitQuiz(t *testing.T) {
	t.Parallel()

	lessonID := uuid.New()
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quiz/submit", r.URL.Path)

		var req struct {
			LessonID uuid.UUID `json:"lesson_id"`
			Correct  int       `json:"correct_count"`
			Total    int       `json:"total_questions"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, lessonID, req.LessonID)
		assert.Equal(t, 3, req.Correct)
		assert.Equal(t, 4, req.Total)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"score": 75, "earned": 6})
	}))
	gw.SetCredential("token")

	earned, err := gw.SubmitQuiz(context.Background(), lessonID, Score{Correct: 3, Total: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(6), earned)
}

func TestQuestionsRoundTrip(t *testing.T) {
	t.Parallel()

	lessonID := uuid.New()
	questionID := uuid.New()
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quiz/start/"+lessonID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.Question{
			{ID: questionID, Prompt: "q", Options: []string{"a", "b"}, CorrectOption: 1},
		})
	}))
	gw.SetCredential("token")

	questions, err := gw.Questions(context.Background(), lessonID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, questionID, questions[0].ID)
	assert.Equal(t, 1, questions[0].CorrectOption)
}

func TestScorePercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Score{}.Percent())
	assert.Equal(t, 50, Score{Correct: 1, Total: 2}.Percent())
	assert.Equal(t, 100, Score{Correct: 3, Total: 3}.Percent())
}
