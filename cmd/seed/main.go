// seed puebla los roles base (admin, inventory) y crea el usuario
// administrador inicial si no existe.
//
// Uso: go run ./cmd/seed
// Variables: SEED_ADMIN_EMAIL (default admin@despensa.local),
// SEED_ADMIN_PASSWORD (requerida) y la configuración de DB habitual.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Despensa-api/internal/domain/policy"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Despensa-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@despensa.local"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD es requerida")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, roleName := range []string{policy.RoleAdmin, policy.RoleInventory} {
		_, err := pool.Exec(ctx,
			`INSERT INTO roles (role_name) VALUES ($1) ON CONFLICT (role_name) DO NOTHING`,
			roleName,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar rol %s: %v\n", roleName, err)
			os.Exit(1)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}

	tag, err := pool.Exec(ctx, `
		INSERT INTO users (username, email, password_hash, role_id, is_active)
		SELECT $1, $2, $3, r.id, TRUE
		FROM roles r
		WHERE r.role_name = $4
		ON CONFLICT (email) DO NOTHING`,
		adminEmail, adminEmail, string(hash), policy.RoleAdmin,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar usuario admin: %v\n", err)
		os.Exit(1)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("usuario %s ya existe, roles verificados\n", adminEmail)
		return
	}
	fmt.Printf("seed completado: roles admin/inventory y usuario %s\n", adminEmail)
}
