package v1

import (
	"time"
)

// CreateHazardRequest DTO для создания опасности
// @Description DTO для создания опасности
type CreateHazardRequest struct {
	Lat         float64 `json:"lat" validate:"required,latitude"`
	Lng         float64 `json:"lng" validate:"required,longitude"`
	Description string  `json:"description" validate:"required"`
	UserID      *int64  `json:"userId,omitempty"`
}

// HazardActionRequest DTO для claim и complete
// @Description DTO для резервирования и завершения опасности
type HazardActionRequest struct {
	UserID int64 `json:"userId" validate:"required"`
}

// HazardResponse DTO для ответа с информацией об опасности
// @Description DTO для ответа с информацией об опасности
type HazardResponse struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ClaimedBy   *int64    `json:"claimed_by"`
	CompletedBy *int64    `json:"completed_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedByUsername   *string `json:"created_by_username,omitempty"`
	ClaimedByUsername   *string `json:"claimed_by_username,omitempty"`
	CompletedByUsername *string `json:"completed_by_username,omitempty"`
}

// CreateUserRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsResponse DTO для ответа со статистикой по статусам
// @Description DTO для ответа со статистикой по статусам
type StatsResponse struct {
	Open      int `json:"open"`
	Claimed   int `json:"claimed"`
	Completed int `json:"completed"`
}

// MessageResponse DTO для ответа с сообщением
// @Description DTO для ответа с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
