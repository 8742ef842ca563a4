package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/dispatch-admin/internal/auth"
	"github.com/nurpe/dispatch-admin/internal/http/middleware"
)

// NewRouter wires the versioned API. Every business route passes the auth
// middleware and a per-resource policy check; only /healthz is open.
func NewRouter(h *Handler, policy auth.Policy, authMiddleware gin.HandlerFunc, log zerolog.Logger, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(log))
	router.Use(cors.Default())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(authMiddleware)

	gate := func(resource, action string) gin.HandlerFunc {
		return middleware.Authorize(policy, resource, action)
	}

	staff := api.Group("/duty_staff")
	staff.GET("/list", gate("duty_staff", auth.ActionRead), h.listStaff)
	staff.GET("/list_fs", gate("duty_staff", auth.ActionRead), h.listStaffFinance)
	staff.GET("/get", gate("duty_staff", auth.ActionRead), h.getStaff)
	staff.POST("/create", gate("duty_staff", auth.ActionWrite), h.createStaff)
	staff.POST("/update", gate("duty_staff", auth.ActionWrite), h.updateStaff)
	staff.DELETE("/delete", gate("duty_staff", auth.ActionDelete), h.deleteStaff)

	total := api.Group("/total")
	total.GET("/list", gate("total", auth.ActionRead), h.listTotals)
	total.GET("/list/yyfs", gate("total", auth.ActionRead), h.listTotalsFinance)
	total.GET("/list/bs", gate("total", auth.ActionRead), h.listTotalsBusiness)
	total.GET("/list/ob", gate("total", auth.ActionRead), h.listTotalsOperator)
	total.GET("/get", gate("total", auth.ActionRead), h.getTotal)
	total.GET("/export", gate("total", auth.ActionRead), h.exportTotals)
	total.GET("/export/bs", gate("total", auth.ActionRead), h.exportTotalsBusiness)
	total.POST("/create", gate("total", auth.ActionWrite), h.createTotal)
	total.POST("/update", gate("total", auth.ActionWrite), h.updateTotal)
	total.POST("/update/yyfs", gate("total", auth.ActionWrite), h.updateTotalActualExpenditure)
	// alias of the full update path
	total.POST("/update/ob", gate("total", auth.ActionWrite), h.updateTotal)
	total.DELETE("/delete", gate("total", auth.ActionDelete), h.deleteTotal)

	fieldWork := api.Group("/field_work")
	fieldWork.GET("/list", gate("field_work", auth.ActionRead), h.listFieldWork)
	fieldWork.GET("/get", gate("field_work", auth.ActionRead), h.getFieldWork)
	fieldWork.POST("/create", gate("field_work", auth.ActionWrite), h.createFieldWork)
	fieldWork.POST("/update", gate("field_work", auth.ActionWrite), h.updateFieldWork)
	fieldWork.DELETE("/delete", gate("field_work", auth.ActionDelete), h.deleteFieldWork)

	transactions := api.Group("/transactions")
	transactions.GET("/list", gate("transactions", auth.ActionRead), h.listTransactions)
	transactions.GET("/get", gate("transactions", auth.ActionRead), h.getTransaction)
	transactions.POST("/create", gate("transactions", auth.ActionWrite), h.createTransaction)
	transactions.POST("/update", gate("transactions", auth.ActionWrite), h.updateTransaction)
	transactions.DELETE("/delete", gate("transactions", auth.ActionDelete), h.deleteTransaction)

	return router
}
