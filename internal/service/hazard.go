package service

import (
	"context"
	"fmt"

	"github.com/ecomap/hazard_reporting_system/internal/models"
	"github.com/ecomap/hazard_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// HazardRepository определяет контракт для работы с бд опасностей
type HazardRepository interface {
	Create(ctx context.Context, hazard *models.Hazard) error
	GetByID(ctx context.Context, id int64) (*models.Hazard, error)
	List(ctx context.Context) ([]*models.Hazard, error)
	Claim(ctx context.Context, id, userID int64) (*models.Hazard, error)
	Complete(ctx context.Context, id, userID int64) (*models.Hazard, error)
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (*models.HazardStats, error)
	GetHazardFromCache(ctx context.Context, id int64) (*models.Hazard, error)
	SetHazardCache(ctx context.Context, hazard *models.Hazard) error
	InvalidateHazardCache(ctx context.Context, id int64) error
}

// HazardService определяет контракт для бизнес-логики управления опасностями
type HazardService interface {
	CreateHazard(ctx context.Context, hazard *models.Hazard) error
	GetHazard(ctx context.Context, id int64) (*models.Hazard, error)
	ListHazards(ctx context.Context) ([]*models.Hazard, error)
	ClaimHazard(ctx context.Context, id, userID int64) (*models.Hazard, error)
	CompleteHazard(ctx context.Context, id, userID int64) (*models.Hazard, error)
	DeleteHazard(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*models.HazardStats, error)
}

type hazardService struct {
	repo      HazardRepository
	logger    *logrus.Logger
	publisher webhook.HazardEventPublisher
}

func NewHazardService(repo HazardRepository, logger *logrus.Logger, publisher webhook.HazardEventPublisher) HazardService {
	return &hazardService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateHazard создает новую опасность со статусом open
func (s *hazardService) CreateHazard(ctx context.Context, hazard *models.Hazard) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "CreateHazard",
	})
	log.Info("Attempting to create a new hazard")

	hazard.Status = models.StatusOpen
	if err := s.repo.Create(ctx, hazard); err != nil {
		log.WithError(err).Error("Failed to create hazard in repository")
		return fmt.Errorf("service: could not create hazard: %w", err)
	}

	s.publishEvent(ctx, webhook.EventHazardCreated, hazard, hazard.UserID)

	log.WithField("hazard_id", hazard.ID).Info("Hazard created successfully")
	return nil
}

// GetHazard получает опасность по ID, сначала проверяя кеш
func (s *hazardService) GetHazard(ctx context.Context, id int64) (*models.Hazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "GetHazard",
		"hazard_id": id,
	})
	log.Info("Fetching hazard by ID")

	cached, err := s.repo.GetHazardFromCache(ctx, id)
	if err != nil {
		// Ошибка кеша не фатальна, идем в бд
		log.WithError(err).Warn("Failed to read hazard from cache")
	}
	if cached != nil {
		log.Info("Hazard fetched from cache")
		return cached, nil
	}

	hazard, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get hazard from repository")
		return nil, fmt.Errorf("service: could not get hazard: %w", err)
	}

	if err := s.repo.SetHazardCache(ctx, hazard); err != nil {
		log.WithError(err).Warn("Failed to set hazard cache")
	}

	log.Info("Hazard fetched successfully")
	return hazard, nil
}

// ListHazards возвращает все опасности, новые первыми
func (s *hazardService) ListHazards(ctx context.Context) ([]*models.Hazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "ListHazards",
	})
	log.Info("Listing hazards")

	hazards, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list hazards from repository")
		return nil, fmt.Errorf("service: could not list hazards: %w", err)
	}

	log.WithField("count", len(hazards)).Info("Hazards listed successfully")
	return hazards, nil
}

// ClaimHazard резервирует открытую опасность за пользователем.
// Проверка статуса и запись выполняются одним условным UPDATE в репозитории,
// поэтому из двух конкурентных claim победит ровно один.
func (s *hazardService) ClaimHazard(ctx context.Context, id, userID int64) (*models.Hazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "ClaimHazard",
		"hazard_id": id,
		"user_id":   userID,
	})
	log.Info("Attempting to claim hazard")

	hazard, err := s.repo.Claim(ctx, id, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to claim hazard")
		return nil, fmt.Errorf("service: could not claim hazard: %w", err)
	}

	if err := s.repo.InvalidateHazardCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate hazard cache")
	}
	s.publishEvent(ctx, webhook.EventHazardClaimed, hazard, &userID)

	log.Info("Hazard claimed successfully")
	return hazard, nil
}

// CompleteHazard помечает опасность выполненной. Завершить опасность в статусе
// claimed может только пользователь, который ее зарезервировал.
func (s *hazardService) CompleteHazard(ctx context.Context, id, userID int64) (*models.Hazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "CompleteHazard",
		"hazard_id": id,
		"user_id":   userID,
	})
	log.Info("Attempting to complete hazard")

	hazard, err := s.repo.Complete(ctx, id, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to complete hazard")
		return nil, fmt.Errorf("service: could not complete hazard: %w", err)
	}

	if err := s.repo.InvalidateHazardCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate hazard cache")
	}
	s.publishEvent(ctx, webhook.EventHazardCompleted, hazard, &userID)

	log.Info("Hazard completed successfully")
	return hazard, nil
}

// DeleteHazard удаляет опасность
func (s *hazardService) DeleteHazard(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "DeleteHazard",
		"hazard_id": id,
	})
	log.Info("Attempting to delete hazard")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete hazard")
		return fmt.Errorf("service: could not delete hazard: %w", err)
	}

	if err := s.repo.InvalidateHazardCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate hazard cache")
	}
	s.publishEvent(ctx, webhook.EventHazardDeleted, &models.Hazard{ID: id}, nil)

	log.Info("Hazard deleted successfully")
	return nil
}

// GetStats возвращает количество опасностей по каждому статусу
func (s *hazardService) GetStats(ctx context.Context) (*models.HazardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "GetStats",
	})
	log.Info("Fetching hazard stats")

	stats, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get hazard stats from repository")
		return nil, fmt.Errorf("service: could not get hazard stats: %w", err)
	}
	return stats, nil
}

// publishEvent отправляет событие жизненного цикла в очередь вебхуков.
// Ошибка публикации не влияет на исходный запрос.
func (s *hazardService) publishEvent(ctx context.Context, eventType webhook.EventType, hazard *models.Hazard, actorID *int64) {
	event := webhook.NewHazardEvent(eventType, hazard, actorID)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_type", eventType).Warn("Failed to publish hazard event")
	}
}
