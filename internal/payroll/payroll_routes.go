package payroll

import (
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbac middleware.RBACService, rdb *redis.Client) {
	runs := rg.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware())
	{
		runs.POST("",
			middleware.RBACAuthorize(rbac, "payroll_run", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		runs.GET("", middleware.RBACAuthorize(rbac, "payroll_run", "read"), handler.GetAll)
		runs.GET("/:id", middleware.RBACAuthorize(rbac, "payroll_run", "read"), handler.GetByID)
		runs.POST("/:id/approve", middleware.RBACAuthorize(rbac, "payroll_run", "approve"), handler.Approve)
		runs.POST("/:id/pay", middleware.RBACAuthorize(rbac, "payroll_run", "pay"), handler.MarkAsPaid)
		runs.POST("/:id/cancel", middleware.RBACAuthorize(rbac, "payroll_run", "approve"), handler.Cancel)
		runs.DELETE("/:id", middleware.RBACAuthorize(rbac, "payroll_run", "delete"), handler.Delete)
	}
}
