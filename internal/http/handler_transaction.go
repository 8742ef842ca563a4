package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/service"
)

func (h *Handler) listTransactions(c *gin.Context) {
	result, err := h.transactions.List(c.Request.Context(), service.ListTransactionsInput{
		Page:        parsePage(c),
		PaymentTime: c.Query("payment_time"),
		Recipient:   c.Query("recipient"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	page(c, result.Rows, result.Total, parsePage(c), nil)
}

func (h *Handler) getTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.transactions.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, rec, "OK")
}

type createTransactionRequest struct {
	PaymentTime   time.Time       `json:"payment_time" binding:"required"`
	PaymentAmount decimal.Decimal `json:"payment_amount" binding:"required"`
	Recipient     string          `json:"recipient" binding:"required"`
}

func (h *Handler) createTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.transactions.Create(c.Request.Context(), model.TransactionRecord{
		PaymentTime:   req.PaymentTime,
		PaymentAmount: req.PaymentAmount,
		Recipient:     req.Recipient,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, saved, "Created Successfully")
}

type updateTransactionRequest struct {
	ID int64 `json:"id" binding:"required"`
	model.TransactionRecordPatch
}

func (h *Handler) updateTransaction(c *gin.Context) {
	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.transactions.Update(c.Request.Context(), req.ID, req.TransactionRecordPatch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, saved, "Updated Successfully")
}

func (h *Handler) deleteTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.transactions.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	success(c, nil, "Deleted Successfully")
}
