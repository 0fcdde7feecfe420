package service

import "errors"

// Сентинельные ошибки доменного слоя. Хэндлеры соотносят их
// с HTTP-статусами через errors.Is.
var (
	ErrHazardNotFound  = errors.New("hazard not found")
	ErrHazardNotOpen   = errors.New("hazard is not available to claim")
	ErrHazardCompleted = errors.New("hazard is already completed")
	ErrNotClaimer      = errors.New("hazard can only be completed by the user who claimed it")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("username or email already exists")
)
