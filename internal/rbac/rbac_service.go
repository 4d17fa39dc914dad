package rbac

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go-hris-leave/internal/domain"
	rbacerrors "go-hris-leave/internal/rbac/errors"
	"go-hris-leave/internal/shared/connection"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req domain.EnforceRequest) (bool, error)

	ListRoles(ctx context.Context, companyID string) ([]RoleResponse, error)
	CreateRole(ctx context.Context, companyID string, req CreateRoleRequest) (RoleResponse, error)
	AssignRole(ctx context.Context, companyID, roleID string, req AssignRoleRequest) error
	GrantPermissions(ctx context.Context, companyID, roleID string, req GrantPermissionsRequest) error
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
	// SeedPermissions makes sure every permission the API checks exists.
	SeedPermissions(ctx context.Context) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// DefaultPermissions lists every resource/action pair the routes enforce.
func DefaultPermissions() []Permission {
	type def struct{ resource, label, category string }
	resources := []def{
		{domain.ResourceLeavePolicy, "Leave policies", "Leave"},
		{domain.ResourceLeaveApplication, "Leave applications", "Leave"},
		{domain.ResourceLeaveReport, "Leave reports", "Reports"},
		{domain.ResourceApprovalSetting, "Approval settings", "Leave"},
		{domain.ResourceRole, "Roles", "Access"},
	}

	var perms []Permission
	for _, r := range resources {
		perms = append(perms,
			Permission{ID: uuid.New(), Resource: r.resource, Action: domain.ActionRead, Label: "Read " + strings.ToLower(r.label), Category: r.category},
			Permission{ID: uuid.New(), Resource: r.resource, Action: domain.ActionManage, Label: "Manage " + strings.ToLower(r.label), Category: r.category},
		)
	}
	perms = append(perms, Permission{
		ID:       uuid.New(),
		Resource: domain.ResourceLeaveApplication,
		Action:   domain.ActionCreate,
		Label:    "Apply for leave",
		Category: "Leave",
	})
	return perms
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	ctx := context.Background()
	s.enforcer.ClearPolicy()

	employeeRoles, err := s.repo.GetEmployeeRoles(ctx, companyID)
	if err != nil {
		return err
	}
	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleID, companyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx, companyID)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("company_id", req.CompanyID),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context, companyID string) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]RoleResponse, len(roles))
	for i, r := range roles {
		resp[i] = RoleResponse{ID: r.ID.String(), Name: r.Name, Description: r.Description}
	}
	return resp, nil
}

func (s *service) CreateRole(ctx context.Context, companyID string, req CreateRoleRequest) (RoleResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RoleResponse{}, rbacerrors.ErrInvalidCompanyID
	}

	now := time.Now().UTC()
	role := &Role{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateRole(ctx, role); err != nil {
		if connection.IsUniqueViolation(err) {
			return RoleResponse{}, rbacerrors.ErrRoleExists
		}
		return RoleResponse{}, err
	}

	s.logger.Info("rbac role created", zap.String("company_id", companyID), zap.String("role", role.Name))
	return RoleResponse{ID: role.ID.String(), Name: role.Name, Description: role.Description}, nil
}

func (s *service) findRole(ctx context.Context, companyID, roleID string) (*Role, error) {
	if _, err := uuid.Parse(roleID); err != nil {
		return nil, rbacerrors.ErrInvalidRoleID
	}
	role, err := s.repo.FindRole(ctx, companyID, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rbacerrors.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

func (s *service) AssignRole(ctx context.Context, companyID, roleID string, req AssignRoleRequest) error {
	role, err := s.findRole(ctx, companyID, roleID)
	if err != nil {
		return err
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return rbacerrors.ErrInvalidEmployeeID
	}
	if err := s.repo.AssignRole(ctx, &EmployeeRole{EmployeeID: employeeID, RoleID: role.ID}); err != nil {
		return err
	}

	s.logger.Info("rbac role assigned",
		zap.String("company_id", companyID),
		zap.String("role_id", roleID),
		zap.String("employee_id", req.EmployeeID),
	)
	return nil
}

func (s *service) GrantPermissions(ctx context.Context, companyID, roleID string, req GrantPermissionsRequest) error {
	role, err := s.findRole(ctx, companyID, roleID)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(req.PermissionIDs))
	seen := map[uuid.UUID]bool{}
	for _, raw := range req.PermissionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return rbacerrors.ErrUnknownPermission
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) > 0 {
		n, err := s.repo.CountPermissions(ctx, ids)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return rbacerrors.ErrUnknownPermission
		}
	}

	if err := s.repo.ReplaceRolePermissions(ctx, role.ID, ids); err != nil {
		return err
	}
	s.logger.Info("rbac role permissions replaced",
		zap.String("role_id", roleID),
		zap.Int("permissions", len(ids)),
	)
	return nil
}

func (s *service) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]PermissionResponse, len(perms))
	for i, p := range perms {
		resp[i] = PermissionResponse{
			ID:       p.ID.String(),
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		}
	}
	return resp, nil
}

func (s *service) SeedPermissions(ctx context.Context) error {
	return s.repo.SeedPermissions(ctx, DefaultPermissions())
}
