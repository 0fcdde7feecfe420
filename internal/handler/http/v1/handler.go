package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecomap/hazard_reporting_system/internal/config"
	"github.com/ecomap/hazard_reporting_system/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	hazardService service.HazardService
	userService   service.UserService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(hazardService service.HazardService, userService service.UserService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		hazardService: hazardService,
		userService:   userService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// hazardErrorToStatus соотносит доменные ошибки сервиса опасностей с HTTP-статусами.
// Неклассифицированные ошибки отдаются как 500 с общим сообщением,
// оригинал остается только в логах.
func hazardErrorToStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrHazardNotFound):
		return http.StatusNotFound, "Hazard not found"
	case errors.Is(err, service.ErrHazardNotOpen):
		return http.StatusBadRequest, "Hazard is not available to claim"
	case errors.Is(err, service.ErrHazardCompleted):
		return http.StatusBadRequest, "Hazard is already completed"
	case errors.Is(err, service.ErrNotClaimer):
		return http.StatusForbidden, "You can only complete hazards you claimed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// parseID разбирает числовой идентификатор из параметра пути
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// @Summary Create a new hazard
// @Description Report a new hazard at the given coordinates. It is always created with status "open".
// @Tags Hazards
// @Accept json
// @Produce json
// @Param hazard body CreateHazardRequest true "Hazard creation request"
// @Success 201 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [post]
func (h *Handler) createHazard(c *gin.Context) {
	var input CreateHazardRequest
	log := h.logger.WithField("method", "createHazard")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToHazardModel(input)
	if err := h.hazardService.CreateHazard(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create hazard in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToHazardResponse(model))
}

// @Summary Get all hazards
// @Description Get all hazards with creator, claimer and completer usernames, newest first.
// @Tags Hazards
// @Accept json
// @Produce json
// @Success 200 {array} HazardResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [get]
func (h *Handler) listHazards(c *gin.Context) {
	log := h.logger.WithField("method", "listHazards")

	hazards, err := h.hazardService.ListHazards(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list hazards from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHazardResponses(hazards))
}

// @Summary Get hazard by ID
// @Description Get a single hazard by its ID with joined usernames.
// @Tags Hazards
// @Accept json
// @Produce json
// @Param id path int true "Hazard ID"
// @Success 200 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id} [get]
func (h *Handler) getHazard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "getHazard").WithField("id", id)

	hazard, err := h.hazardService.GetHazard(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get hazard from service")
		status, msg := hazardErrorToStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, ModelToHazardResponse(hazard))
}

// @Summary Claim a hazard
// @Description Reserve an open hazard for the given user. Fails if the hazard is not open.
// @Tags Hazards
// @Accept json
// @Produce json
// @Param id path int true "Hazard ID"
// @Param action body HazardActionRequest true "Claim request"
// @Success 200 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid request or hazard is not open"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id}/claim [patch]
func (h *Handler) claimHazard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "claimHazard").WithField("id", id)

	var input HazardActionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hazard, err := h.hazardService.ClaimHazard(c.Request.Context(), id, input.UserID)
	if err != nil {
		log.WithError(err).Warn("Failed to claim hazard in service")
		status, msg := hazardErrorToStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, ModelToHazardResponse(hazard))
}

// @Summary Complete a hazard
// @Description Mark a hazard as completed. A claimed hazard can only be completed by the user who claimed it.
// @Tags Hazards
// @Accept json
// @Produce json
// @Param id path int true "Hazard ID"
// @Param action body HazardActionRequest true "Complete request"
// @Success 200 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid request or hazard is already completed"
// @Failure 403 {object} map[string]string "Hazard was claimed by another user"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id}/complete [patch]
func (h *Handler) completeHazard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "completeHazard").WithField("id", id)

	var input HazardActionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hazard, err := h.hazardService.CompleteHazard(c.Request.Context(), id, input.UserID)
	if err != nil {
		log.WithError(err).Warn("Failed to complete hazard in service")
		status, msg := hazardErrorToStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, ModelToHazardResponse(hazard))
}

// @Summary Delete a hazard
// @Description Delete a hazard by its ID. Requires an API key when API_KEYS is configured.
// @Tags Hazards
// @Accept json
// @Produce json
// @Param id path int true "Hazard ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id} [delete]
func (h *Handler) deleteHazard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "deleteHazard").WithField("id", id)

	if err := h.hazardService.DeleteHazard(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to delete hazard in service")
		status, msg := hazardErrorToStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Hazard deleted successfully"})
}

// @Summary Get hazard statistics
// @Description Get the number of hazards per lifecycle status.
// @Tags Hazards
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.hazardService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
