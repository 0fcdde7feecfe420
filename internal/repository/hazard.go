package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecomap/hazard_reporting_system/internal/models"
	"github.com/ecomap/hazard_reporting_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// hazardJoinedSelect - выборка опасности вместе с именами пользователей
// (создатель, зарезервировавший, завершивший) из таблицы users
const hazardJoinedSelect = `
	SELECT
		h.id,
		h.user_id,
		h.lat,
		h.lng,
		h.description,
		h.status,
		h.claimed_by,
		h.completed_by,
		h.created_at,
		h.updated_at,
		u1.username AS created_by_username,
		u2.username AS claimed_by_username,
		u3.username AS completed_by_username
	FROM hazards h
	LEFT JOIN users u1 ON h.user_id = u1.id
	LEFT JOIN users u2 ON h.claimed_by = u2.id
	LEFT JOIN users u3 ON h.completed_by = u3.id
`

type HazardRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewHazardRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.HazardRepository {
	return &HazardRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись об опасности в бд
func (r *HazardRepository) Create(ctx context.Context, hazard *models.Hazard) error {
	query := `
		INSERT INTO hazards (user_id, lat, lng, description, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		hazard.UserID,
		hazard.Lat,
		hazard.Lng,
		hazard.Description,
		hazard.Status,
	).Scan(&hazard.ID, &hazard.CreatedAt, &hazard.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hazard: %w", err)
	}
	return nil
}

// GetByID возвращает опасность по ID вместе с именами пользователей
func (r *HazardRepository) GetByID(ctx context.Context, id int64) (*models.Hazard, error) {
	hazard := &models.Hazard{}
	query := hazardJoinedSelect + `WHERE h.id = $1;`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&hazard.ID,
		&hazard.UserID,
		&hazard.Lat,
		&hazard.Lng,
		&hazard.Description,
		&hazard.Status,
		&hazard.ClaimedBy,
		&hazard.CompletedBy,
		&hazard.CreatedAt,
		&hazard.UpdatedAt,
		&hazard.CreatedByUsername,
		&hazard.ClaimedByUsername,
		&hazard.CompletedByUsername,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrHazardNotFound
		}
		return nil, fmt.Errorf("failed to get hazard by id: %w", err)
	}
	return hazard, nil
}

// List возвращает все опасности, новые первыми
func (r *HazardRepository) List(ctx context.Context) ([]*models.Hazard, error) {
	query := hazardJoinedSelect + `ORDER BY h.created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hazards: %w", err)
	}
	defer rows.Close()

	hazards := make([]*models.Hazard, 0)
	for rows.Next() {
		hazard := &models.Hazard{}
		err := rows.Scan(
			&hazard.ID,
			&hazard.UserID,
			&hazard.Lat,
			&hazard.Lng,
			&hazard.Description,
			&hazard.Status,
			&hazard.ClaimedBy,
			&hazard.CompletedBy,
			&hazard.CreatedAt,
			&hazard.UpdatedAt,
			&hazard.CreatedByUsername,
			&hazard.ClaimedByUsername,
			&hazard.CompletedByUsername,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard row: %w", err)
		}
		hazards = append(hazards, hazard)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return hazards, nil
}

// Claim резервирует открытую опасность за пользователем. Проверка статуса
// и запись выполняются одним условным UPDATE: при конкурентных claim
// условие status = 'open' выполнится ровно для одного из них.
func (r *HazardRepository) Claim(ctx context.Context, id, userID int64) (*models.Hazard, error) {
	query := `
		UPDATE hazards
		SET status = 'claimed', claimed_by = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'open'
		RETURNING id, user_id, lat, lng, description, status, claimed_by, completed_by, created_at, updated_at;
	`
	hazard := &models.Hazard{}
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&hazard.ID,
		&hazard.UserID,
		&hazard.Lat,
		&hazard.Lng,
		&hazard.Description,
		&hazard.Status,
		&hazard.ClaimedBy,
		&hazard.CompletedBy,
		&hazard.CreatedAt,
		&hazard.UpdatedAt,
	)
	if err == nil {
		return hazard, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to claim hazard: %w", err)
	}

	// UPDATE не затронул строк: различаем отсутствие опасности и неподходящий статус
	var status models.HazardStatus
	err = r.db.QueryRow(ctx, `SELECT status FROM hazards WHERE id = $1;`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrHazardNotFound
		}
		return nil, fmt.Errorf("failed to check hazard status: %w", err)
	}
	return nil, service.ErrHazardNotOpen
}

// Complete помечает опасность завершенной одним условным UPDATE. Опасность
// в статусе claimed может завершить только зарезервировавший ее пользователь,
// открытую - любой вызвавший.
func (r *HazardRepository) Complete(ctx context.Context, id, userID int64) (*models.Hazard, error) {
	query := `
		UPDATE hazards
		SET status = 'completed', completed_by = $1, updated_at = NOW()
		WHERE id = $2 AND status <> 'completed' AND (status <> 'claimed' OR claimed_by = $1)
		RETURNING id, user_id, lat, lng, description, status, claimed_by, completed_by, created_at, updated_at;
	`
	hazard := &models.Hazard{}
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&hazard.ID,
		&hazard.UserID,
		&hazard.Lat,
		&hazard.Lng,
		&hazard.Description,
		&hazard.Status,
		&hazard.ClaimedBy,
		&hazard.CompletedBy,
		&hazard.CreatedAt,
		&hazard.UpdatedAt,
	)
	if err == nil {
		return hazard, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to complete hazard: %w", err)
	}

	// UPDATE не затронул строк: различаем отсутствие, уже завершенную
	// и зарезервированную другим пользователем
	var status models.HazardStatus
	var claimedBy *int64
	err = r.db.QueryRow(ctx, `SELECT status, claimed_by FROM hazards WHERE id = $1;`, id).Scan(&status, &claimedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrHazardNotFound
		}
		return nil, fmt.Errorf("failed to check hazard status: %w", err)
	}
	if status == models.StatusCompleted {
		return nil, service.ErrHazardCompleted
	}
	return nil, service.ErrNotClaimer
}

// Delete удаляет запись об опасности
func (r *HazardRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM hazards WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hazard: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return service.ErrHazardNotFound
	}
	return nil
}

// CountByStatus возвращает количество опасностей по каждому статусу
func (r *HazardRepository) CountByStatus(ctx context.Context) (*models.HazardStats, error) {
	query := `
		SELECT status, COUNT(*)
		FROM hazards
		GROUP BY status;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count hazards by status: %w", err)
	}
	defer rows.Close()

	stats := &models.HazardStats{}
	for rows.Next() {
		var status models.HazardStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan hazard stats row: %w", err)
		}
		switch status {
		case models.StatusOpen:
			stats.Open = count
		case models.StatusClaimed:
			stats.Claimed = count
		case models.StatusCompleted:
			stats.Completed = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return stats, nil
}

// GetHazardFromCache пытается получить опасность из Redis
func (r *HazardRepository) GetHazardFromCache(ctx context.Context, id int64) (*models.Hazard, error) {
	key := fmt.Sprintf("hazard:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hazard from cache: %w", err)
	}

	hazard := &models.Hazard{}
	if err := json.Unmarshal(val, hazard); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hazard from cache: %w", err)
	}
	return hazard, nil
}

// SetHazardCache сохраняет опасность в Redis
func (r *HazardRepository) SetHazardCache(ctx context.Context, hazard *models.Hazard) error {
	key := fmt.Sprintf("hazard:%d", hazard.ID)
	val, err := json.Marshal(hazard)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hazard in cache: %w", err)
	}
	return nil
}

// InvalidateHazardCache удаляет опасность из Redis кэша
func (r *HazardRepository) InvalidateHazardCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("hazard:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hazard cache: %w", err)
	}
	return nil
}
