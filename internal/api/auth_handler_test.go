package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/service/auth"
	"github.com/Great2008/reads-web-app/internal/store"
)

// fakeUserStore is an in-memory UserStore keyed by email.
type fakeUserStore struct {
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	if _, ok := s.users[user.Email]; ok {
		return store.ErrEmailExists
	}
	s.users[user.Email] = user
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

// fakeJWTService issues a fixed token.
type fakeJWTService struct {
	token string
	err   error
}

func (s *fakeJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.token, s.err
}

func (s *fakeJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken
}

// fakeVerifier accepts one password.
type fakeVerifier struct {
	password string
}

func (v *fakeVerifier) Compare(hashedPassword, password string) error {
	if password != v.password {
		return errors.New("password mismatch")
	}
	return nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestLogin(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	userStore := newFakeUserStore()
	userStore.users["ada@example.com"] = &domain.User{
		ID:             userID,
		Email:          "ada@example.com",
		DisplayName:    "Ada",
		HashedPassword: "stored-hash",
	}

	handler := NewAuthHandler(nil, userStore, nil,
		&fakeJWTService{token: "test-token"},
		auth.NewBcryptHasher(0),
		&fakeVerifier{password: "password1234567"})

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid login",
			payload: map[string]interface{}{
				"email":    "ada@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name: "unknown email",
			payload: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			payload: map[string]interface{}{
				"email":    "ada@example.com",
				"password": "not-the-password",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid email format",
			payload: map[string]interface{}{
				"email":    "not-an-email",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "ada@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler.Login, "/auth/login", tt.payload)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantToken {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "test-token", resp.AccessToken)
				assert.Equal(t, userID, resp.User.ID)
				assert.Empty(t, resp.User.HashedPassword, "hashed password must not leak")
			}
		})
	}
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()

	// Validation failures return before the store or database is touched.
	handler := NewAuthHandler(nil, newFakeUserStore(), nil,
		&fakeJWTService{token: "test-token"},
		auth.NewBcryptHasher(0),
		&fakeVerifier{})

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{
			name: "password too short",
			payload: map[string]interface{}{
				"name":     "Ada",
				"email":    "ada@example.com",
				"password": "short",
			},
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"name":     "Ada",
				"email":    "not-an-email",
				"password": "password1234567",
			},
		},
		{
			name: "missing name",
			payload: map[string]interface{}{
				"email":    "ada@example.com",
				"password": "password1234567",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler.Signup, "/auth/signup", tt.payload)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestSignupRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(nil, newFakeUserStore(), nil,
		&fakeJWTService{token: "test-token"},
		auth.NewBcryptHasher(0),
		&fakeVerifier{})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.Signup(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
