package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cemdis/cemdis-api/internal/domain/rbac"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

var _ repository.RBACRepository = (*RBACRepo)(nil)

// RBACRepo persistencia de la matriz de permisos por rol.
//
// Esquema:
//
//	role_permissions(role, resource, can_view, can_create, can_edit, can_delete)
//	role_sidebar(role, module, position)
//
// La lectura se hace por petición desde el AccessGate; cualquier error aquí
// termina en denegación (fail-closed), así que no se enmascaran errores.
type RBACRepo struct {
	pool *pgxpool.Pool
}

// NewRBACRepository construye el adaptador de la matriz de permisos.
func NewRBACRepository(pool *pgxpool.Pool) *RBACRepo {
	return &RBACRepo{pool: pool}
}

// GetRoleConfig carga la configuración de un rol. Devuelve (nil, nil) si el rol
// no tiene ninguna fila de permisos ni de sidebar.
func (r *RBACRepo) GetRoleConfig(ctx context.Context, role string) (*rbac.RoleConfig, error) {
	permissions, err := r.loadPermissions(ctx, role)
	if err != nil {
		return nil, err
	}
	sidebar, err := r.loadSidebar(ctx, role)
	if err != nil {
		return nil, err
	}
	if len(permissions) == 0 && len(sidebar) == 0 {
		return nil, nil
	}
	return &rbac.RoleConfig{Role: role, Permissions: permissions, Sidebar: sidebar}, nil
}

// ListRoleConfigs carga la configuración de todos los roles con al menos una fila.
func (r *RBACRepo) ListRoleConfigs(ctx context.Context) ([]rbac.RoleConfig, error) {
	query := `
		SELECT role, resource, can_view, can_create, can_edit, can_delete
		FROM role_permissions ORDER BY role, resource`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()

	byRole := map[string]rbac.Matrix{}
	var order []string
	for rows.Next() {
		var role, resource string
		var p rbac.Permission
		if err := rows.Scan(&role, &resource, &p.View, &p.Create, &p.Edit, &p.Delete); err != nil {
			return nil, fmt.Errorf("scan role permission: %w", err)
		}
		if _, ok := byRole[role]; !ok {
			byRole[role] = rbac.Matrix{}
			order = append(order, role)
		}
		byRole[role][resource] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	configs := make([]rbac.RoleConfig, 0, len(order))
	for _, role := range order {
		sidebar, err := r.loadSidebar(ctx, role)
		if err != nil {
			return nil, err
		}
		configs = append(configs, rbac.RoleConfig{Role: role, Permissions: byRole[role], Sidebar: sidebar})
	}
	return configs, nil
}

// SaveRoleConfig reemplaza la matriz y el sidebar del rol en una sola transacción.
func (r *RBACRepo) SaveRoleConfig(ctx context.Context, cfg *rbac.RoleConfig) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role = $1`, cfg.Role); err != nil {
		return fmt.Errorf("clear role permissions: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM role_sidebar WHERE role = $1`, cfg.Role); err != nil {
		return fmt.Errorf("clear role sidebar: %w", err)
	}

	insertPerm := `
		INSERT INTO role_permissions (role, resource, can_view, can_create, can_edit, can_delete)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for resource, p := range cfg.Permissions {
		if _, err := tx.Exec(ctx, insertPerm, cfg.Role, resource, p.View, p.Create, p.Edit, p.Delete); err != nil {
			return fmt.Errorf("insert role permission: %w", err)
		}
	}

	insertSidebar := `INSERT INTO role_sidebar (role, module, position) VALUES ($1, $2, $3)`
	for i, module := range cfg.Sidebar {
		if _, err := tx.Exec(ctx, insertSidebar, cfg.Role, module, i); err != nil {
			return fmt.Errorf("insert role sidebar: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *RBACRepo) loadPermissions(ctx context.Context, role string) (rbac.Matrix, error) {
	query := `
		SELECT resource, can_view, can_create, can_edit, can_delete
		FROM role_permissions WHERE role = $1`
	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("get role permissions: %w", err)
	}
	defer rows.Close()

	matrix := rbac.Matrix{}
	for rows.Next() {
		var resource string
		var p rbac.Permission
		if err := rows.Scan(&resource, &p.View, &p.Create, &p.Edit, &p.Delete); err != nil {
			return nil, fmt.Errorf("scan role permission: %w", err)
		}
		matrix[resource] = p
	}
	return matrix, rows.Err()
}

func (r *RBACRepo) loadSidebar(ctx context.Context, role string) ([]string, error) {
	query := `SELECT module FROM role_sidebar WHERE role = $1 ORDER BY position`
	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("get role sidebar: %w", err)
	}
	defer rows.Close()

	var sidebar []string
	for rows.Next() {
		var module string
		if err := rows.Scan(&module); err != nil {
			return nil, fmt.Errorf("scan sidebar module: %w", err)
		}
		sidebar = append(sidebar, module)
	}
	return sidebar, rows.Err()
}
