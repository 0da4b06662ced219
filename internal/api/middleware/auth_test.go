// internal/api/middleware/auth_test.go
package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trackhub/internal/domain"
	"trackhub/internal/repository"
	"trackhub/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func authTestHandler(users *MockUserRepository, captured *int64) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := UserIDFromContext(r.Context()); ok {
			*captured = id
		}
		w.WriteHeader(http.StatusOK)
	})
	return Auth(testSecret, users, nil, logger)(next)
}

func TestAuth(t *testing.T) {
	t.Run("ResolvesUserIntoContext", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByID", mock.Anything, mock.Anything, int64(42)).
			Return(&domain.User{ID: 42}, nil).Once()

		token, err := util.GenerateToken(testSecret, 42, time.Hour)
		require.NoError(t, err)

		var captured int64
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		authTestHandler(users, &captured).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(42), captured)
	})

	t.Run("RejectsMissingHeader", func(t *testing.T) {
		users := new(MockUserRepository)

		var captured int64
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets", nil)
		authTestHandler(users, &captured).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		users.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RejectsBadToken", func(t *testing.T) {
		users := new(MockUserRepository)

		var captured int64
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		authTestHandler(users, &captured).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("RejectsTokenSignedWithOtherSecret", func(t *testing.T) {
		users := new(MockUserRepository)
		token, err := util.GenerateToken("other-secret", 42, time.Hour)
		require.NoError(t, err)

		var captured int64
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		authTestHandler(users, &captured).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("RejectsUnknownUser", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByID", mock.Anything, mock.Anything, int64(42)).
			Return(nil, util.ErrNotFound).Once()

		token, err := util.GenerateToken(testSecret, 42, time.Hour)
		require.NoError(t, err)

		var captured int64
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		authTestHandler(users, &captured).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
