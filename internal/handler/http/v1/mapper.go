package v1

import "github.com/ecomap/hazard_reporting_system/internal/models"

// DTOToHazardModel преобразует DTO создания в доменную модель
func DTOToHazardModel(dto CreateHazardRequest) *models.Hazard {
	return &models.Hazard{
		UserID:      dto.UserID,
		Lat:         dto.Lat,
		Lng:         dto.Lng,
		Description: dto.Description,
	}
}

// ModelToHazardResponse преобразует доменную модель в DTO для ответа
func ModelToHazardResponse(model *models.Hazard) *HazardResponse {
	return &HazardResponse{
		ID:                  model.ID,
		UserID:              model.UserID,
		Lat:                 model.Lat,
		Lng:                 model.Lng,
		Description:         model.Description,
		Status:              string(model.Status),
		ClaimedBy:           model.ClaimedBy,
		CompletedBy:         model.CompletedBy,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
		CreatedByUsername:   model.CreatedByUsername,
		ClaimedByUsername:   model.ClaimedByUsername,
		CompletedByUsername: model.CompletedByUsername,
	}
}

// ModelsToHazardResponses преобразует слайс моделей в слайс DTO
func ModelsToHazardResponses(models []*models.Hazard) []*HazardResponse {
	responses := make([]*HazardResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHazardResponse(model)
	}
	return responses
}

// DTOToUserModel преобразует DTO регистрации в доменную модель
func DTOToUserModel(dto CreateUserRequest) *models.User {
	return &models.User{
		Username: dto.Username,
		Email:    dto.Email,
	}
}

// ModelToUserResponse преобразует доменную модель в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Username:  model.Username,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToUserResponses преобразует слайс моделей в слайс DTO
func ModelsToUserResponses(models []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToUserResponse(model)
	}
	return responses
}

// ModelToStatsResponse преобразует статистику в DTO для ответа
func ModelToStatsResponse(model *models.HazardStats) *StatsResponse {
	return &StatsResponse{
		Open:      model.Open,
		Claimed:   model.Claimed,
		Completed: model.Completed,
	}
}
