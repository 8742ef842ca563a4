package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/service"
)

func (h *Handler) listFieldWork(c *gin.Context) {
	result, err := h.fieldWork.List(c.Request.Context(), service.ListFieldWorkInput{
		Page: parsePage(c),
		Date: c.Query("date"),
		Name: c.Query("name"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	page(c, result.Rows, result.Total, parsePage(c), nil)
}

func (h *Handler) getFieldWork(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.fieldWork.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, rec, "OK")
}

type createFieldWorkRequest struct {
	Name                string    `json:"name" binding:"required"`
	Number              int64     `json:"number" binding:"required"`
	ExpectedExpenditure int64     `json:"expected_expenditure"`
	ActualExpenditure   int64     `json:"actual_expenditure"`
	Difference          int64     `json:"difference"`
	Date                time.Time `json:"date" binding:"required"`
	Remark              *string   `json:"remark"`
}

func (h *Handler) createFieldWork(c *gin.Context) {
	var req createFieldWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.fieldWork.Create(c.Request.Context(), model.FieldWorkRecord{
		Name:                req.Name,
		Number:              req.Number,
		ExpectedExpenditure: req.ExpectedExpenditure,
		ActualExpenditure:   req.ActualExpenditure,
		Difference:          req.Difference,
		Date:                req.Date,
		Remark:              req.Remark,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, saved, "Created Successfully")
}

type updateFieldWorkRequest struct {
	ID int64 `json:"id" binding:"required"`
	model.FieldWorkRecordPatch
}

func (h *Handler) updateFieldWork(c *gin.Context) {
	var req updateFieldWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.fieldWork.Update(c.Request.Context(), req.ID, req.FieldWorkRecordPatch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	success(c, saved, "Updated Successfully")
}

func (h *Handler) deleteFieldWork(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.fieldWork.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	success(c, nil, "Deleted Successfully")
}
