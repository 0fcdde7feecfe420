package models

import (
	"time"
)

// HazardStatus - статус жизненного цикла опасности
type HazardStatus string

const (
	StatusOpen      HazardStatus = "open"
	StatusClaimed   HazardStatus = "claimed"
	StatusCompleted HazardStatus = "completed"
)

// Hazard представляет зарегистрированную опасность на карте
type Hazard struct {
	ID          int64        `json:"id"`
	UserID      *int64       `json:"user_id"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	Description string       `json:"description"`
	Status      HazardStatus `json:"status"`
	ClaimedBy   *int64       `json:"claimed_by"`
	CompletedBy *int64       `json:"completed_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Имена пользователей из LEFT JOIN с таблицей users
	CreatedByUsername   *string `json:"created_by_username,omitempty"`
	ClaimedByUsername   *string `json:"claimed_by_username,omitempty"`
	CompletedByUsername *string `json:"completed_by_username,omitempty"`
}

// HazardStats - количество опасностей по каждому статусу
type HazardStats struct {
	Open      int `json:"open"`
	Claimed   int `json:"claimed"`
	Completed int `json:"completed"`
}
