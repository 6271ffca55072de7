package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/andinabank/ledger-service/internal/apperrors"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/dto"
	"github.com/andinabank/ledger-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

const statementDateLayout = "2006-01-02"

// statementHandler handles HTTP requests for customer statements.
type statementHandler struct {
	statementService portssvc.StatementSvc
}

// newStatementHandler creates a new statementHandler.
func newStatementHandler(ss portssvc.StatementSvc) *statementHandler {
	return &statementHandler{statementService: ss}
}

// registerStatementRoutes registers routes related to statements.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvc) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/statements")
	{
		statements.GET("", h.getStatement)
		statements.GET("/export", h.exportStatement)
	}
}

func (h *statementHandler) bindRange(c *gin.Context) (dto.StatementParams, time.Time, time.Time, bool) {
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return params, time.Time{}, time.Time{}, false
	}

	from, err := time.Parse(statementDateLayout, params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
		return params, time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(statementDateLayout, params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
		return params, time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' date must not precede 'from' date"})
		return params, time.Time{}, time.Time{}, false
	}

	// Make the range inclusive of the whole 'to' day.
	to = to.Add(24*time.Hour - time.Nanosecond)
	return params, from, to, true
}

// getStatement godoc
// @Summary Get a customer statement
// @Description Retrieves the customer's accounts and their movements within a date range, grouped per account key
// @Tags statements
// @Produce  json
// @Param   customerId query int true "Customer ID"
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Router /statements [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, from, to, ok := h.bindRange(c)
	if !ok {
		return
	}

	logger.Info("Received request for statement", slog.Int64("customer_id", params.CustomerID))

	statement, err := h.statementService.GetStatement(c.Request.Context(), params.CustomerID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Customer not found for statement", slog.Int64("customer_id", params.CustomerID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to build statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}

// exportStatement godoc
// @Summary Export a customer statement as XLSX
// @Description Renders the statement as a spreadsheet attachment
// @Tags statements
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   customerId query int true "Customer ID"
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {file} file "Statement workbook"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to export statement"
// @Router /statements/export [get]
func (h *statementHandler) exportStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, from, to, ok := h.bindRange(c)
	if !ok {
		return
	}

	data, err := h.statementService.ExportStatementXLSX(c.Request.Context(), params.CustomerID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to export statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export statement"})
		}
		return
	}

	filename := fmt.Sprintf("statement_%d_%s_%s.xlsx", params.CustomerID, params.From, params.To)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
