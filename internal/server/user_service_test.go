package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careerlaunch/internal/config"
	"github.com/jonathan/careerlaunch/internal/db"
	"github.com/jonathan/careerlaunch/internal/types"
)

// fakeUserStore is an in-memory DBClient for unit tests.
type fakeUserStore struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	u.UpdatedAt = time.Now()
	return nil
}

func setupTestUserService(t *testing.T) (*UserService, *fakeUserStore) {
	t.Helper()
	passwordConfig, err := config.NewPasswordConfig()
	require.NoError(t, err)
	store := newFakeUserStore()
	return NewUserService(store, passwordConfig), store
}

func TestConvertDBUserToTypesUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		now := time.Now()
		dbUser := &db.User{
			ID:           uuid.New(),
			Name:         "John Doe",
			Email:        "john@example.com",
			PasswordHash: "hashed-password",
			PasswordSet:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		typesUser := convertDBUserToTypesUser(dbUser)
		require.NotNil(t, typesUser)
		assert.Equal(t, dbUser.ID, typesUser.ID)
		assert.Equal(t, dbUser.Name, typesUser.Name)
		assert.Equal(t, dbUser.Email, typesUser.Email)
		assert.Equal(t, dbUser.PasswordSet, typesUser.PasswordSet)
		assert.Equal(t, dbUser.CreatedAt, typesUser.CreatedAt)
		assert.Equal(t, dbUser.UpdatedAt, typesUser.UpdatedAt)
		// Password hash should not be in types.User (it doesn't have that field)
	})

	t.Run("nil user", func(t *testing.T) {
		typesUser := convertDBUserToTypesUser(nil)
		assert.Nil(t, typesUser)
	})
}

func TestUserService_Register(t *testing.T) {
	service, _ := setupTestUserService(t)
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := service.Register(ctx, &types.CreateUserRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Jane Doe", user.Name)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.True(t, user.PasswordSet)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := service.Register(ctx, &types.CreateUserRequest{
			Name:     "Jane Again",
			Email:    "jane@example.com",
			Password: "another-password",
		})
		require.Error(t, err)
		assert.IsType(t, &ErrEmailAlreadyExists{}, err)
	})
}

func TestUserService_Login(t *testing.T) {
	service, _ := setupTestUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.Login(ctx, &types.LoginRequest{
			Email:    "jane@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		user, err := service.Login(ctx, &types.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)
		assert.Nil(t, user)
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})

	t.Run("unknown email returns same error as wrong password", func(t *testing.T) {
		user, err := service.Login(ctx, &types.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-horse-battery",
		})
		require.Error(t, err)
		assert.Nil(t, user)
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	service, _ := setupTestUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "old-password-123",
	})
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := service.UpdatePassword(ctx, user.ID, "not-the-password", "new-password-456")
		require.Error(t, err)
		assert.IsType(t, &ErrPasswordMismatch{}, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := service.UpdatePassword(ctx, uuid.New(), "old-password-123", "new-password-456")
		require.Error(t, err)
		assert.IsType(t, &ErrUserNotFound{}, err)
	})

	t.Run("successful update", func(t *testing.T) {
		err := service.UpdatePassword(ctx, user.ID, "old-password-123", "new-password-456")
		require.NoError(t, err)

		// Old password no longer works
		_, err = service.Login(ctx, &types.LoginRequest{
			Email:    "jane@example.com",
			Password: "old-password-123",
		})
		require.Error(t, err)

		// New password does
		_, err = service.Login(ctx, &types.LoginRequest{
			Email:    "jane@example.com",
			Password: "new-password-456",
		})
		require.NoError(t, err)
	})
}
