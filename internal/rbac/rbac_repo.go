package rbac

import "gorm.io/gorm"

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error)
	GetRolePermissions(companyID string) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

func (r *repository) GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error) {
	var rows []EmployeeRoleRow
	err := r.db.
		Table("employee_roles").
		Select("employee_roles.employee_id::text AS employee_id, employee_roles.role_id::text AS role_id").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Where("roles.company_id = ?", companyID).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions(companyID string) ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	err := r.db.
		Table("role_permissions").
		Select("role_permissions.role_id::text AS role_id, permissions.resource, permissions.action").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Where("roles.company_id = ?", companyID).
		Scan(&rows).Error
	return rows, err
}
