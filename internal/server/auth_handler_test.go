package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careerlaunch/internal/config"
	"github.com/jonathan/careerlaunch/internal/types"
)

func setupTestAuthHandler(t *testing.T) (*AuthHandler, *fakeUserStore) {
	t.Helper()
	passwordConfig, err := config.NewPasswordConfig()
	require.NoError(t, err)
	store := newFakeUserStore()
	userService := NewUserService(store, passwordConfig)
	jwtService := setupTestJWTService(t, 24)
	return NewAuthHandler(userService, jwtService), store
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	t.Run("successful registration", func(t *testing.T) {
		rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "secure-password-1",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp types.LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.NotNil(t, resp.User)
		assert.Equal(t, "jane@example.com", resp.User.Email)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
			Name:     "Jane Again",
			Email:    "jane@example.com",
			Password: "secure-password-2",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("not json")))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("password too short", func(t *testing.T) {
		rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
			Name:     "Short",
			Email:    "short@example.com",
			Password: "short",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Password")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secure-password-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("valid credentials", func(t *testing.T) {
		rec := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
			Email:    "jane@example.com",
			Password: "secure-password-1",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp types.LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secure-password-1",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "old-password-123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&registered))
	userID := registered.User.ID

	t.Run("wrong current password", func(t *testing.T) {
		payload, _ := json.Marshal(types.UpdatePasswordRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "new-password-456",
		})
		req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		handler.UpdatePasswordWithUserID(rec, req, userID)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("successful update", func(t *testing.T) {
		payload, _ := json.Marshal(types.UpdatePasswordRequest{
			CurrentPassword: "old-password-123",
			NewPassword:     "new-password-456",
		})
		req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		handler.UpdatePasswordWithUserID(rec, req, userID)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Password updated successfully")
	})
}
