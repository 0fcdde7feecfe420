package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/ecomap/hazard_reporting_system/internal/models"
	"github.com/ecomap/hazard_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestUserService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestUserService(t *testing.T) (*userService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewUserService(repoMock, logger)
	return service.(*userService), repoMock
}

func TestCreateUser_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	userToCreate := &models.User{
		Username: "alice",
		Email:    "alice@example.com",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			// Симулируем, что БД присвоила ID
			u.ID = 1
			return nil
		}).Times(1)

	// Действие
	err := service.CreateUser(ctx, userToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(1), userToCreate.ID)
}

func TestCreateUser_Duplicate(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	userToCreate := &models.User{
		Username: "alice",
		Email:    "alice@example.com",
	}

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(ErrUserExists).Times(1)

	// Действие
	err := service.CreateUser(ctx, userToCreate)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestGetUser_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	expectedUser := &models.User{
		ID:       1,
		Username: "alice",
		Email:    "alice@example.com",
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(1)).Return(expectedUser, nil).Times(1)

	// Действие
	user, err := service.GetUser(ctx, 1)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestGetUser_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(99)).Return(nil, ErrUserNotFound).Times(1)

	// Действие
	user, err := service.GetUser(ctx, 99)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	expectedUsers := []*models.User{
		{ID: 2, Username: "bob"},
		{ID: 1, Username: "alice"},
	}

	// Ожидания
	repoMock.EXPECT().List(ctx).Return(expectedUsers, nil).Times(1)

	// Действие
	users, err := service.ListUsers(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedUsers, users)
}

func TestListUsers_RepoError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("db down")

	// Ожидания
	repoMock.EXPECT().List(ctx).Return(nil, repoError).Times(1)

	// Действие
	users, err := service.ListUsers(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, users)
	assert.ErrorContains(t, err, "could not list users")
}
