package service

import (
	"context"
	"testing"

	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_NormalizesEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email: "  Alice@Example.COM ",
		Name:  "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "Alice"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateUserInput{Email: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_GetByEmail_Normalizes(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	user := &domain.User{ID: "u1", Email: "alice@example.com"}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	got, err := svc.GetByEmail(context.Background(), " Alice@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email: "alice@example.com",
		Name:  "Alice",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}
