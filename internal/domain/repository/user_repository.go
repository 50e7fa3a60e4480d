package repository

import "github.com/jhoicas/Despensa-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}

// RoleRepository define el puerto de persistencia para roles. El role_name
// es solo una llave hacia la tabla de permisos de policy.
type RoleRepository interface {
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
}
