package app

import (
	"database/sql"
	"path/filepath"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/employee"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/messaging/kafka"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/middleware"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payroll"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/rbac"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, outboxRepo, logger)
	payrollService := payroll.NewService(db, payrollRepo, employeeRepo, outboxRepo, payrollcalc.DefaultRates(), logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}
