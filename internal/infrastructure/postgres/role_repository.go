package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación de RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// GetByID obtiene un rol por ID. Retorna nil sin error si no existe.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.scanOne(`SELECT id, role_name, created_at FROM roles WHERE id = $1`, id)
}

// GetByName obtiene un rol por nombre. Retorna nil sin error si no existe.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.scanOne(`SELECT id, role_name, created_at FROM roles WHERE role_name = $1`, name)
}

func (r *RoleRepo) scanOne(query string, arg any) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&role.ID, &role.RoleName, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", classifyError(err))
	}
	return &role, nil
}

// List devuelve todos los roles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, role_name, created_at FROM roles ORDER BY role_name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", classifyError(err))
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.RoleName, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
