package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/andinabank/ledger-service/internal/apperrors"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/dto"
	"github.com/andinabank/ledger-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// movementHandler handles HTTP requests related to ledger movements.
type movementHandler struct {
	movementService portssvc.MovementSvc
}

// newMovementHandler creates a new movementHandler.
func newMovementHandler(ms portssvc.MovementSvc) *movementHandler {
	return &movementHandler{movementService: ms}
}

// registerMovementRoutes registers routes related to movements.
func registerMovementRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvc) {
	h := newMovementHandler(movementService)

	movements := rg.Group("/movements")
	{
		movements.POST("/register", h.registerMovement)
		movements.POST("", h.createMovement)
		movements.GET("", h.listMovements)
		movements.GET("/:id", h.getMovement)
		movements.PUT("/:id", h.updateMovement)
		movements.DELETE("/:id", h.deleteMovement)
	}
}

// registerMovement godoc
// @Summary Register a credit or debit
// @Description Records a movement against an account, deriving the resulting balance from the current one
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movement body dto.RegisterMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid input, non-positive value or insufficient balance"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account deleted or concurrent balance change"
// @Failure 500 {object} map[string]string "Failed to register movement"
// @Router /movements/register [post]
func (h *movementHandler) registerMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to register movement",
		slog.String("account_id", req.AccountID),
		slog.String("movement_type", string(req.MovementType)),
		slog.String("value", req.Value.String()),
	)

	movement, err := h.movementService.RegisterMovement(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error registering movement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			logger.Warn("Insufficient balance", slog.String("account_id", req.AccountID))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrAccountDeleted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Concurrent balance change", slog.String("account_id", req.AccountID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to register movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register movement"})
		}
		return
	}

	logger.Info("Movement registered", slog.String("movement_id", movement.MovementID), slog.String("balance", movement.Balance.String()))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// createMovement godoc
// @Summary Create a movement
// @Description Persists a movement with the caller-supplied resulting balance
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movement body dto.CreateMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to create movement"
// @Router /movements [post]
func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.movementService.CreateMovement(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		default:
			logger.Error("Failed to create movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movement"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List movements
// @Description Retrieves a page of movements, newest first
// @Tags movements
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Router /movements [get]
func (h *movementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.movementService.ListMovements(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list movements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// getMovement godoc
// @Summary Get a movement by ID
// @Description Retrieves a movement with its account number
// @Tags movements
// @Produce  json
// @Param   id path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 500 {object} map[string]string "Failed to retrieve movement"
// @Router /movements/{id} [get]
func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("id")

	movement, err := h.movementService.GetMovementByID(c.Request.Context(), movementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		} else {
			logger.Error("Failed to get movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// updateMovement godoc
// @Summary Update a movement
// @Description Re-persists a movement wholesale under an existing identifier
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   id path string true "Movement ID"
// @Param   movement body dto.CreateMovementRequest true "Movement details"
// @Success 200 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 500 {object} map[string]string "Failed to update movement"
// @Router /movements/{id} [put]
func (h *movementHandler) updateMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("id")

	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.movementService.UpdateMovement(c.Request.Context(), movementID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		default:
			logger.Error("Failed to update movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update movement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// deleteMovement godoc
// @Summary Delete a movement
// @Description Removes a movement row; later stored balances are not recomputed
// @Tags movements
// @Produce  json
// @Param   id path string true "Movement ID"
// @Success 204 "Movement deleted"
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 500 {object} map[string]string "Failed to delete movement"
// @Router /movements/{id} [delete]
func (h *movementHandler) deleteMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("id")

	if err := h.movementService.DeleteMovement(c.Request.Context(), movementID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		} else {
			logger.Error("Failed to delete movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete movement"})
		}
		return
	}

	logger.Info("Movement deleted", slog.String("movement_id", movementID))
	c.Status(http.StatusNoContent)
}
