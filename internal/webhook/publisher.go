package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecomap/hazard_reporting_system/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	hazardEventQueueKey = "hazard_events"
)

// EventType - тип события жизненного цикла опасности
type EventType string

const (
	EventHazardCreated   EventType = "hazard.created"
	EventHazardClaimed   EventType = "hazard.claimed"
	EventHazardCompleted EventType = "hazard.completed"
	EventHazardDeleted   EventType = "hazard.deleted"
)

// HazardEvent - структура для данных вебхука
type HazardEvent struct {
	EventID   uuid.UUID      `json:"event_id"`
	Type      EventType      `json:"type"`
	Hazard    *models.Hazard `json:"hazard,omitempty"`
	ActorID   *int64         `json:"actor_id,omitempty"` // Пользователь, выполнивший действие
	Timestamp time.Time      `json:"timestamp"`
}

// NewHazardEvent создает событие с уникальным ID доставки
func NewHazardEvent(eventType EventType, hazard *models.Hazard, actorID *int64) HazardEvent {
	return HazardEvent{
		EventID:   uuid.New(),
		Type:      eventType,
		Hazard:    hazard,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	}
}

// HazardEventPublisher - интерфейс для публикации событий жизненного цикла
type HazardEventPublisher interface {
	Publish(ctx context.Context, event HazardEvent) error
}

// RedisEventPublisher - реализация HazardEventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event HazardEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard event: %w", err)
	}

	// LPUSH в левую часть списка, воркер читает BRPOP с правой
	if err := p.redisClient.LPush(ctx, hazardEventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish hazard event to Redis: %w", err)
	}
	return nil
}
