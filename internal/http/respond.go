package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/dispatch-admin/internal/model"
)

// success renders the uniform {data, msg} envelope.
func success(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, gin.H{"data": data, "msg": msg})
}

// page renders the paginated envelope. Operation-specific aggregates go in
// extra; they are additive and never replace the base fields.
func page(c *gin.Context, data interface{}, total int64, p model.PageRequest, extra gin.H) {
	body := gin.H{
		"data":      data,
		"msg":       "OK",
		"total":     total,
		"page":      p.Page,
		"page_size": p.PageSize,
	}
	for key, value := range extra {
		body[key] = value
	}
	c.JSON(http.StatusOK, body)
}
