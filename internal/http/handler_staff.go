package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/service"
)

func (h *Handler) listStaff(c *gin.Context) {
	result, err := h.staff.List(c.Request.Context(), service.ListStaffInput{
		Page: parsePage(c),
		Name: c.Query("name"),
		Type: c.Query("type"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	page(c, result.Rows, result.Total, parsePage(c), nil)
}

func (h *Handler) listStaffFinance(c *gin.Context) {
	result, err := h.staff.ListFieldStaffFinance(c.Request.Context(), service.ListFieldStaffFinanceInput{
		Page: parsePage(c),
		Name: c.Query("field_staff"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	page(c, result.Rows, result.Total, parsePage(c), gin.H{
		"total_count":                    result.Totals.TotalCount,
		"total_expected_expenditure_sum": result.Totals.TotalExpectedExpenditureSum,
		"total_actual_expenditure":       result.Totals.TotalActualExpenditure,
	})
}

func (h *Handler) getStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	staff, err := h.staff.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, staff, "OK")
}

type createStaffRequest struct {
	Name              string `json:"name" binding:"required"`
	Type              string `json:"type" binding:"required"`
	ActualExpenditure int64  `json:"actual_expenditure"`
}

func (h *Handler) createStaff(c *gin.Context) {
	var req createStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.staff.Create(c.Request.Context(), model.DutyStaff{
		Name:              req.Name,
		Type:              req.Type,
		ActualExpenditure: req.ActualExpenditure,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, saved, "Created Successfully")
}

type updateStaffRequest struct {
	ID int64 `json:"id" binding:"required"`
	model.DutyStaffPatch
}

func (h *Handler) updateStaff(c *gin.Context) {
	var req updateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.staff.Update(c.Request.Context(), req.ID, req.DutyStaffPatch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, saved, "Updated Successfully")
}

func (h *Handler) deleteStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.staff.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	success(c, nil, "Deleted Successfully")
}
