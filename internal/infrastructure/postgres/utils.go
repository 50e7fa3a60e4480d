package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Despensa-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// classifyError traduce errores de infraestructura a errores de dominio:
// timeouts e indisponibilidad → ErrTransient (el caller puede reintentar);
// fallos de serialización/deadlock → ErrConflict (reintento seguro).
// Cualquier otro error pasa sin tocar.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTransient
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return domain.ErrConflict
		case "57014", "57P01", "57P02", "57P03": // cancelado / apagando / no disponible
			return domain.ErrTransient
		}
	}
	if pgconn.Timeout(err) {
		return domain.ErrTransient
	}
	return err
}
