package app

import (
	"context"
	"database/sql"

	"go-hris-leave/internal/approvalsetting"
	"go-hris-leave/internal/employee"
	"go-hris-leave/internal/grouppolicy"
	"go-hris-leave/internal/leave"
	"go-hris-leave/internal/leavepolicy"
	"go-hris-leave/internal/ledger"
	"go-hris-leave/internal/messaging/kafka"
	"go-hris-leave/internal/middleware"
	"go-hris-leave/internal/rbac"
	"go-hris-leave/internal/rbac/infra"
	"go-hris-leave/internal/shared/counter"
	"go-hris-leave/internal/summary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	ipRateLimit = rate.Limit(20)
	ipBurst     = 60
)

// invalidatorRef breaks the construction cycle between the policy registry,
// which invalidates eligibility, and the resolver, which reads the registry.
type invalidatorRef struct {
	target grouppolicy.Service
}

func (r *invalidatorRef) Invalidate(ctx context.Context, companyIDs ...string) error {
	if r.target == nil {
		return nil
	}
	return r.target.Invalidate(ctx, companyIDs...)
}

type modules struct {
	leavePolicy leavepolicy.Service
	eligibility grouppolicy.Service
	ledger      ledger.Service
	approvals   approvalsetting.Service
	leave       leave.Service
	summary     summary.Service
	rbac        rbac.Service
	directory   employee.Directory
}

// buildServices wires every service over one database. It is shared by the
// API and the consumer.
func buildServices(db *sql.DB, gormDB *gorm.DB, rdb *redis.Client, cfg Config) (modules, error) {
	directory := employee.NewDirectory(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)

	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return modules{}, err
	}
	rbacService := rbac.NewService(rbac.NewRepository(gormDB), enforcer)

	invalidator := &invalidatorRef{}
	leavePolicyService := leavepolicy.NewService(db, leavepolicy.NewRepository(gormDB), invalidator)
	ledgerService := ledger.NewService(db, ledger.NewRepository(gormDB), leavePolicyService, directory)
	eligibilityService := grouppolicy.NewService(
		db,
		grouppolicy.NewRepository(gormDB),
		leavePolicyService,
		ledgerService,
		directory,
		rdb,
		cfg.EligibilityCacheTTL,
	)
	invalidator.target = eligibilityService

	approvalService := approvalsetting.NewService(db, approvalsetting.NewRepository(gormDB), directory)
	leaveService := leave.NewService(
		db,
		leave.NewRepository(gormDB),
		directory,
		eligibilityService,
		ledgerService,
		approvalService,
		counterRepo,
		outboxRepo,
	)
	summaryService := summary.NewService(
		summary.NewRepository(gormDB),
		directory,
		leavePolicyService,
		eligibilityService,
		ledgerService,
	)

	return modules{
		leavePolicy: leavePolicyService,
		eligibility: eligibilityService,
		ledger:      ledgerService,
		approvals:   approvalService,
		leave:       leaveService,
		summary:     summaryService,
		rbac:        rbacService,
		directory:   directory,
	}, nil
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg Config,
) (modules, error) {
	m, err := buildServices(db, gormDB, rdb, cfg)
	if err != nil {
		return modules{}, err
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
	)

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(ipRateLimit, ipBurst))
	{
		leavepolicy.RegisterRoutes(api, leavepolicy.NewHandler(m.leavePolicy), m.rbac)
		grouppolicy.RegisterRoutes(api, grouppolicy.NewHandler(m.eligibility), m.rbac)
		ledger.RegisterRoutes(api, ledger.NewHandler(m.ledger), m.rbac)
		approvalsetting.RegisterRoutes(api, approvalsetting.NewHandler(m.approvals), m.rbac)
		leave.RegisterRoutes(api, leave.NewHandler(m.leave), m.rbac, rdb)
		summary.RegisterRoutes(api, summary.NewHandler(m.summary), m.rbac)
		rbac.RegisterRoutes(api, rbac.NewHandler(m.rbac), m.rbac)
	}

	return m, nil
}
