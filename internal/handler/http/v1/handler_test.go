package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecomap/hazard_reporting_system/internal/config"
	"github.com/ecomap/hazard_reporting_system/internal/models"
	"github.com/ecomap/hazard_reporting_system/internal/service"
	"github.com/ecomap/hazard_reporting_system/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T, cfg *config.Config) (*mocks.MockHazardService, *mocks.MockUserService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockHazardService := mocks.NewMockHazardService(ctrl)
	mockUserService := mocks.NewMockUserService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{}
	}

	handler := NewHandler(mockHazardService, mockUserService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	return mockHazardService, mockUserService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCreateHazard_Success(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := CreateHazardRequest{
		Lat:         25.2,
		Lng:         55.3,
		Description: "spill",
		UserID:      int64Ptr(1),
	}
	expectedHazard := &models.Hazard{
		ID:          1,
		UserID:      int64Ptr(1),
		Lat:         reqBody.Lat,
		Lng:         reqBody.Lng,
		Description: reqBody.Description,
		Status:      models.StatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	mockHazards.EXPECT().
		CreateHazard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *models.Hazard) error {
			*h = *expectedHazard // Обновляем переданную опасность
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/hazards", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp HazardResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, reqBody.Lat, resp.Lat)
	assert.Equal(t, reqBody.Lng, resp.Lng)
	assert.Equal(t, reqBody.Description, resp.Description)
}

func TestCreateHazard_InvalidJSON(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)

	mockHazards.EXPECT().CreateHazard(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/hazards", bytes.NewBufferString(`{"lat": 25.2`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateHazard_MissingDescription(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := CreateHazardRequest{ // Отсутствует Description
		Lat: 25.2,
		Lng: 55.3,
	}

	mockHazards.EXPECT().CreateHazard(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/hazards", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Description' failed on the 'required' tag")
}

func TestCreateHazard_ServiceError(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := CreateHazardRequest{
		Lat:         25.2,
		Lng:         55.3,
		Description: "spill",
	}
	serviceError := fmt.Errorf("service: could not create hazard: db down")

	mockHazards.EXPECT().CreateHazard(gomock.Any(), gomock.Any()).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/hazards", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListHazards_Success(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	alice := "alice"
	expectedHazards := []*models.Hazard{
		{ID: 2, Description: "leak", Status: models.StatusClaimed, ClaimedBy: int64Ptr(1), ClaimedByUsername: &alice},
		{ID: 1, Description: "spill", Status: models.StatusOpen},
	}

	mockHazards.EXPECT().ListHazards(gomock.Any()).Return(expectedHazards, nil).Times(1)

	w := makeRequest(router, "GET", "/api/hazards", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []HazardResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "claimed", resp[0].Status)
	require.NotNil(t, resp[0].ClaimedByUsername)
	assert.Equal(t, "alice", *resp[0].ClaimedByUsername)
}

func TestListHazards_ServiceError(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	serviceError := fmt.Errorf("service: could not list hazards: db down")

	mockHazards.EXPECT().ListHazards(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/hazards", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetHazard_Success(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	expectedHazard := &models.Hazard{
		ID:          3,
		Lat:         25.2,
		Lng:         55.3,
		Description: "spill",
		Status:      models.StatusOpen,
	}

	mockHazards.EXPECT().GetHazard(gomock.Any(), int64(3)).Return(expectedHazard, nil).Times(1)

	w := makeRequest(router, "GET", "/api/hazards/3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HazardResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "open", resp.Status)
}

func TestGetHazard_InvalidID(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)

	mockHazards.EXPECT().GetHazard(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/hazards/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid hazard ID")
}

func TestGetHazard_NotFound(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	serviceError := fmt.Errorf("service: could not get hazard: %w", service.ErrHazardNotFound)

	mockHazards.EXPECT().GetHazard(gomock.Any(), int64(99)).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/hazards/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Hazard not found")
}

func TestClaimHazard_Success(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := HazardActionRequest{UserID: 2}
	claimedHazard := &models.Hazard{
		ID:        5,
		Status:    models.StatusClaimed,
		ClaimedBy: int64Ptr(2),
	}

	mockHazards.EXPECT().ClaimHazard(gomock.Any(), int64(5), int64(2)).Return(claimedHazard, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/hazards/5/claim", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HazardResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "claimed", resp.Status)
	require.NotNil(t, resp.ClaimedBy)
	assert.Equal(t, int64(2), *resp.ClaimedBy)
}

func TestClaimHazard_MissingUserID(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)

	mockHazards.EXPECT().ClaimHazard(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", "/api/hazards/5/claim", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'UserID' failed on the 'required' tag")
}

func TestClaimHazard_NotOpen(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := HazardActionRequest{UserID: 2}
	serviceError := fmt.Errorf("service: could not claim hazard: %w", service.ErrHazardNotOpen)

	mockHazards.EXPECT().ClaimHazard(gomock.Any(), int64(5), int64(2)).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/hazards/5/claim", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Hazard is not available to claim")
}

func TestClaimHazard_NotFound(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := HazardActionRequest{UserID: 2}
	serviceError := fmt.Errorf("service: could not claim hazard: %w", service.ErrHazardNotFound)

	mockHazards.EXPECT().ClaimHazard(gomock.Any(), int64(99), int64(2)).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/hazards/99/claim", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Hazard not found")
}

func TestCompleteHazard_Success(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := HazardActionRequest{UserID: 2}
	completedHazard := &models.Hazard{
		ID:          5,
		Status:      models.StatusCompleted,
		ClaimedBy:   int64Ptr(2),
		CompletedBy: int64Ptr(2),
	}

	mockHazards.EXPECT().CompleteHazard(gomock.Any(), int64(5), int64(2)).Return(completedHazard, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/hazards/5/complete", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HazardResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.CompletedBy)
	assert.Equal(t, int64(2), *resp.CompletedBy)
}

func TestCompleteHazard_AlreadyCompleted(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := HazardActionRequest{UserID: 2}
	serviceError := fmt.Errorf("service: could not complete hazard: %w", service.ErrHazardCompleted)

	mockHazards.EXPECT().CompleteHazard(gomock.Any(), int64(5), int64(2)).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/hazards/5/complete", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Hazard is already completed")
}

func TestCompleteHazard_WrongClaimer(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := HazardActionRequest{UserID: 3}
	serviceError := fmt.Errorf("service: could not complete hazard: %w", service.ErrNotClaimer)

	mockHazards.EXPECT().CompleteHazard(gomock.Any(), int64(5), int64(3)).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/hazards/5/complete", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You can only complete hazards you claimed")
}

func TestCompleteHazard_NotFound(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	reqBody := HazardActionRequest{UserID: 2}
	serviceError := fmt.Errorf("service: could not complete hazard: %w", service.ErrHazardNotFound)

	mockHazards.EXPECT().CompleteHazard(gomock.Any(), int64(99), int64(2)).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/hazards/99/complete", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Hazard not found")
}

func TestDeleteHazard_Success(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)

	mockHazards.EXPECT().DeleteHazard(gomock.Any(), int64(5)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/hazards/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hazard deleted successfully")
}

func TestDeleteHazard_NotFound(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	serviceError := fmt.Errorf("service: could not delete hazard: %w", service.ErrHazardNotFound)

	mockHazards.EXPECT().DeleteHazard(gomock.Any(), int64(99)).Return(serviceError).Times(1)

	w := makeRequest(router, "DELETE", "/api/hazards/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Hazard not found")
}

func TestDeleteHazard_APIKeyRequired(t *testing.T) {
	cfg := &config.Config{APIKeys: []string{"valid-key"}}
	mockHazards, _, router := newTestHandler(t, cfg)

	mockHazards.EXPECT().DeleteHazard(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/hazards/5", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestDeleteHazard_APIKeyValid(t *testing.T) {
	cfg := &config.Config{APIKeys: []string{"valid-key"}}
	mockHazards, _, router := newTestHandler(t, cfg)

	mockHazards.EXPECT().DeleteHazard(gomock.Any(), int64(5)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/hazards/5", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteHazard_APIKeyInvalid(t *testing.T) {
	cfg := &config.Config{APIKeys: []string{"valid-key"}}
	mockHazards, _, router := newTestHandler(t, cfg)

	mockHazards.EXPECT().DeleteHazard(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/hazards/5", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestGetStats_Success(t *testing.T) {
	mockHazards, _, router := newTestHandler(t, nil)
	expectedStats := &models.HazardStats{Open: 3, Claimed: 1, Completed: 5}

	mockHazards.EXPECT().GetStats(gomock.Any()).Return(expectedStats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/hazards/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Open)
	assert.Equal(t, 1, resp.Claimed)
	assert.Equal(t, 5, resp.Completed)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t, nil)

	w := makeRequest(router, "GET", "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

// TestHazardLifecycle_Scenario проверяет последовательность:
// создание открытой опасности, claim пользователем B, отказ в complete
// пользователю A (403) и успешный complete пользователем B.
func TestHazardLifecycle_Scenario(t *testing.T) {
	mockHazards, mockUsers, router := newTestHandler(t, nil)

	userA := &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}

	// Регистрация пользователя A
	mockUsers.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			*u = *userA
			return nil
		}).Times(1)

	body, _ := json.Marshal(CreateUserRequest{Username: "alice", Email: "alice@example.com"})
	w := makeRequest(router, "POST", "/api/users", bytes.NewBuffer(body))
	require.Equal(t, http.StatusCreated, w.Code)

	// Создание опасности от имени A
	mockHazards.EXPECT().
		CreateHazard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *models.Hazard) error {
			h.ID = 10
			h.Status = models.StatusOpen
			return nil
		}).Times(1)

	body, _ = json.Marshal(CreateHazardRequest{Lat: 25.2, Lng: 55.3, Description: "spill", UserID: int64Ptr(1)})
	w = makeRequest(router, "POST", "/api/hazards", bytes.NewBuffer(body))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"open"`)

	// Claim пользователем B
	mockHazards.EXPECT().
		ClaimHazard(gomock.Any(), int64(10), int64(2)).
		Return(&models.Hazard{ID: 10, Status: models.StatusClaimed, ClaimedBy: int64Ptr(2)}, nil).
		Times(1)

	body, _ = json.Marshal(HazardActionRequest{UserID: 2})
	w = makeRequest(router, "PATCH", "/api/hazards/10/claim", bytes.NewBuffer(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"claimed"`)

	// Complete пользователем A - отказ, опасность зарезервирована B
	mockHazards.EXPECT().
		CompleteHazard(gomock.Any(), int64(10), int64(1)).
		Return(nil, fmt.Errorf("service: could not complete hazard: %w", service.ErrNotClaimer)).
		Times(1)

	body, _ = json.Marshal(HazardActionRequest{UserID: 1})
	w = makeRequest(router, "PATCH", "/api/hazards/10/complete", bytes.NewBuffer(body))
	require.Equal(t, http.StatusForbidden, w.Code)

	// Complete пользователем B - успех
	mockHazards.EXPECT().
		CompleteHazard(gomock.Any(), int64(10), int64(2)).
		Return(&models.Hazard{ID: 10, Status: models.StatusCompleted, ClaimedBy: int64Ptr(2), CompletedBy: int64Ptr(2)}, nil).
		Times(1)

	body, _ = json.Marshal(HazardActionRequest{UserID: 2})
	w = makeRequest(router, "PATCH", "/api/hazards/10/complete", bytes.NewBuffer(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"completed"`)
}
