// Package policy implementa el control de acceso por rol: una tabla estática
// rol → acciones permitidas. Es una función pura sin estado ni errores; roles
// o acciones desconocidos simplemente evalúan a false (fail-closed).
package policy

// Acciones del sistema.
const (
	ActionAdmin          = "admin"
	ActionInventory      = "inventory"
	ActionCreateMovement = "create_movement"
	ActionRead           = "read"
	ActionUpdate         = "update"
	ActionDelete         = "delete"
)

// Roles conocidos por la tabla de permisos.
const (
	RoleAdmin     = "admin"
	RoleInventory = "inventory"
)

// permissionTable mapea rol → conjunto de acciones. Extensible sin tocar
// los call sites: agregar un rol nuevo es agregar una entrada aquí.
var permissionTable = map[string]map[string]struct{}{
	RoleAdmin: {
		ActionAdmin:          {},
		ActionInventory:      {},
		ActionCreateMovement: {},
		ActionRead:           {},
		ActionUpdate:         {},
		ActionDelete:         {},
	},
	RoleInventory: {
		ActionInventory:      {},
		ActionCreateMovement: {},
		ActionRead:           {},
	},
}

// HasPermission indica si el rol puede ejecutar la acción. Total sobre
// cualquier par (rol, acción): lo desconocido es false.
func HasPermission(role, action string) bool {
	actions, ok := permissionTable[role]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}

// Actions devuelve el conjunto de acciones del sistema (para tests y seeds).
func Actions() []string {
	return []string{
		ActionAdmin,
		ActionInventory,
		ActionCreateMovement,
		ActionRead,
		ActionUpdate,
		ActionDelete,
	}
}
