package app

import (
	"context"

	"go-hris-leave/internal/approvalsetting"
	"go-hris-leave/internal/employee"
	"go-hris-leave/internal/grouppolicy"
	"go-hris-leave/internal/leave"
	"go-hris-leave/internal/leavepolicy"
	"go-hris-leave/internal/ledger"
	"go-hris-leave/internal/messaging/kafka"
	"go-hris-leave/internal/rbac"
	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table the service owns. The employees table is owned
// elsewhere and migrated only for sqlite local runs.
func Models() []any {
	return []any{
		&leavepolicy.SystemLeavePolicy{},
		&leavepolicy.CompanyLeaveType{},
		&grouppolicy.GroupPolicySetting{},
		&ledger.EmployeeLeavePolicy{},
		&ledger.IndividualLeaveAdjustment{},
		&ledger.CarryForwardRecord{},
		&approvalsetting.ApprovalSetting{},
		&leave.LeaveApplication{},
		&leave.LeaveApplicationAction{},
		&counter.CompanyCounter{},
		&kafka.OutboxEvent{},
		&rbac.Role{},
		&rbac.Permission{},
		&rbac.RolePermission{},
		&rbac.EmployeeRole{},
	}
}

func migrate(db *gorm.DB, driver string) error {
	models := Models()
	if driver == connection.DriverSQLite {
		models = append(models, &employee.Employee{})
	}
	return db.AutoMigrate(models...)
}

func BuildApp(router *gin.Engine, cfg Config) error {
	log := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return err
	}
	log.Info("database connection established", zap.String("driver", cfg.DB.Driver))

	if err := migrate(gormDB, cfg.DB.Driver); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	log.Info("redis connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	m, err := registerModules(router, sqlDB, gormDB, redisClient, cfg)
	if err != nil {
		return err
	}
	return m.rbac.SeedPermissions(context.Background())
}
