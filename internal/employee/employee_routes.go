package employee

import (
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	employees := rg.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.POST("", middleware.RBACAuthorize(rbac, "employee", "create"), handler.Create)
		employees.GET("", middleware.RBACAuthorize(rbac, "employee", "read"), handler.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(rbac, "employee", "read"), handler.GetByID)
		employees.PUT("/:id", middleware.RBACAuthorize(rbac, "employee", "update"), handler.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbac, "employee", "delete"), handler.Delete)
	}
}
