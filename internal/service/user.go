package service

import (
	"context"
	"fmt"

	"github.com/ecomap/hazard_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// UserService определяет контракт для бизнес-логики управления пользователями
type UserService interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// CreateUser регистрирует нового пользователя. Уникальность username и email
// обеспечивается ограничениями в бд и возвращается как ErrUserExists.
func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "CreateUser",
		"username": user.Username,
	})
	log.Info("Attempting to create a new user")

	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to create user in repository")
		return fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User created successfully")
	return nil
}

// GetUser получает пользователя по ID
func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "GetUser",
		"user_id": id,
	})
	log.Info("Fetching user by ID")

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	log.Info("User fetched successfully")
	return user, nil
}

// ListUsers возвращает всех пользователей, новые первыми
func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "ListUsers",
	})
	log.Info("Listing users")

	users, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list users from repository")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}

	log.WithField("count", len(users)).Info("Users listed successfully")
	return users, nil
}
