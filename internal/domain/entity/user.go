package entity

import "time"

// User representa un usuario del sistema. El rol vive en la tabla roles
// (RoleID); role_name es solo una llave de búsqueda en la tabla de permisos,
// no un contenedor de permisos.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Phone        string
	RoleID       string
	IsActive     bool
	CreatedAt    time.Time
}

// Role es un nombre de rol registrado. RoleName se usa como llave en la
// tabla estática de AccessPolicy.
type Role struct {
	ID        string
	RoleName  string
	CreatedAt time.Time
}
