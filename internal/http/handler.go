package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/service"
)

type Handler struct {
	ledger       *service.LedgerService
	staff        *service.StaffService
	fieldWork    *service.FieldWorkService
	transactions *service.TransactionService
	log          zerolog.Logger
}

func NewHandler(
	ledger *service.LedgerService,
	staff *service.StaffService,
	fieldWork *service.FieldWorkService,
	transactions *service.TransactionService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		ledger:       ledger,
		staff:        staff,
		fieldWork:    fieldWork,
		transactions: transactions,
		log:          log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parsePage(c *gin.Context) model.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return model.PageRequest{Page: page, PageSize: pageSize}.Clamp()
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
