package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports/mocks"
)

func TestUserService_Register(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, "secret", time.Hour)

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, u *domain.User) {
		created = u
	}).Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     domain.RoleStudent,
	})

	require.NoError(t, err)
	assert.Equal(t, created, user)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))
}

func TestUserService_Register_Invalid(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepo(t), "secret", time.Hour)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "short",
		Role:     domain.RoleStudent,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     "tenant",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, "secret", time.Hour)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     domain.RoleStudent,
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, "secret", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleStudent,
	}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	token, got, err := svc.Login(context.Background(), "alice@example.com", "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, user, got)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "student", claims["role"])
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, "secret", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, "secret", time.Hour)

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	// Same error as a wrong password, so callers cannot probe for emails.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}
