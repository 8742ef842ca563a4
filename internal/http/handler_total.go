package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/dispatch-admin/internal/http/middleware"
	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/service"
)

func (h *Handler) listTotals(c *gin.Context) {
	result, err := h.ledger.List(c.Request.Context(), service.ListLedgerInput{
		Page:       parsePage(c),
		Date:       c.Query("date"),
		Plate:      c.Query("plate"),
		Business:   c.Query("business"),
		FieldStaff: c.Query("field_staff"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	page(c, result.Rows, result.Total, parsePage(c), nil)
}

func (h *Handler) listTotalsFinance(c *gin.Context) {
	result, err := h.ledger.ListFinance(c.Request.Context(), service.ListFinanceInput{
		Page:       parsePage(c),
		FieldStaff: c.Query("field_staff"),
		Plate:      c.Query("plate"),
		Business:   c.Query("business"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	page(c, result.Rows, result.Total, parsePage(c), gin.H{
		"count":                    result.Count,
		"expected_expenditure_sum": result.ExpectedExpenditureSum,
	})
}

func (h *Handler) listTotalsBusiness(c *gin.Context) {
	result, err := h.ledger.BusinessRollup(c.Request.Context(), c.Query("business"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	// total is the number of summary rows, not underlying ledger rows.
	page(c, result.Rows, int64(len(result.Rows)), parsePage(c), gin.H{
		"count_sum":                result.Totals.CountSum,
		"expected_expenditure_sum": result.Totals.ExpectedExpenditureSum,
		"income_sum":               result.Totals.IncomeSum,
	})
}

func (h *Handler) listTotalsOperator(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	result, err := h.ledger.ListOperator(c.Request.Context(), service.ListOperatorInput{
		Page:       parsePage(c),
		Date:       c.Query("date"),
		Plate:      c.Query("plate"),
		Business:   c.Query("business"),
		FieldStaff: c.Query("field_staff"),
		Principal:  principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	page(c, result.Rows, result.Total, parsePage(c), nil)
}

func (h *Handler) getTotal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.ledger.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, rec, "OK")
}

type createTotalRequest struct {
	Date                time.Time  `json:"date" binding:"required"`
	Plate               string     `json:"plate" binding:"required"`
	Region              string     `json:"region" binding:"required"`
	Company             string     `json:"company" binding:"required"`
	FieldStaff          string     `json:"field_staff" binding:"required"`
	InternalStaff       string     `json:"internal_staff" binding:"required"`
	Platform            string     `json:"platform" binding:"required"`
	Account             string     `json:"account" binding:"required"`
	Password            string     `json:"password" binding:"required"`
	Business            string     `json:"business" binding:"required"`
	ExpectedExpenditure int64      `json:"expected_expenditure" binding:"required"`
	Income              *int64     `json:"income"`
	Destination         string     `json:"destination" binding:"required"`
	Remark              *string    `json:"remark"`
	DockingTime         *time.Time `json:"docking_time"`
	HandoverTime        *time.Time `json:"handover_time"`
	IsCompleted         *bool      `json:"is_completed"`
}

func (h *Handler) createTotal(c *gin.Context) {
	var req createTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	income := int64(0)
	if req.Income != nil {
		income = *req.Income
	}
	rec := model.TotalRecord{
		Date:                req.Date,
		Plate:               req.Plate,
		Region:              req.Region,
		Company:             req.Company,
		FieldStaff:          req.FieldStaff,
		InternalStaff:       req.InternalStaff,
		Platform:            req.Platform,
		Account:             req.Account,
		Password:            req.Password,
		Business:            req.Business,
		ExpectedExpenditure: req.ExpectedExpenditure,
		Income:              income,
		Destination:         req.Destination,
		Remark:              req.Remark,
		DockingTime:         req.DockingTime,
		HandoverTime:        req.HandoverTime,
		IsCompleted:         req.IsCompleted,
	}
	saved, err := h.ledger.Create(c.Request.Context(), rec)
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, saved, "Created Successfully")
}

type updateTotalRequest struct {
	ID int64 `json:"id" binding:"required"`
	model.TotalRecordPatch
}

func (h *Handler) updateTotal(c *gin.Context) {
	var req updateTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.ledger.Update(c.Request.Context(), req.ID, req.TotalRecordPatch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, saved, "Updated Successfully")
}

type updateActualExpenditureRequest struct {
	ID                int64  `json:"id" binding:"required"`
	ActualExpenditure *int64 `json:"actual_expenditure" binding:"required"`
}

func (h *Handler) updateTotalActualExpenditure(c *gin.Context) {
	var req updateActualExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.ledger.UpdateActualExpenditure(c.Request.Context(), req.ID, *req.ActualExpenditure); err != nil {
		h.handleError(c, err)
		return
	}
	success(c, nil, "Updated Successfully")
}

func (h *Handler) deleteTotal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ledger.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	success(c, nil, "Deleted Successfully")
}

func (h *Handler) exportTotals(c *gin.Context) {
	result, err := h.ledger.ExportLedger(c.Request.Context(), service.ListLedgerInput{
		Date:       c.Query("date"),
		Plate:      c.Query("plate"),
		Business:   c.Query("business"),
		FieldStaff: c.Query("field_staff"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) exportTotalsBusiness(c *gin.Context) {
	result, err := h.ledger.ExportBusinessReport(c.Request.Context(), c.Query("business"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
