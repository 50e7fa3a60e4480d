package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Despensa-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }

type fakeRoleRepo struct {
	byID map[string]*entity.Role
}

func (r *fakeRoleRepo) GetByID(id string) (*entity.Role, error) { return r.byID[id], nil }
func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.byID {
		if role.RoleName == name {
			return role, nil
		}
	}
	return nil, nil
}
func (r *fakeRoleRepo) List() ([]*entity.Role, error) { return nil, nil }

const jwtSecret = "test-secret"

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	roles := &fakeRoleRepo{byID: map[string]*entity.Role{
		"role-admin": {ID: "role-admin", RoleName: "admin"},
		"role-inv":   {ID: "role-inv", RoleName: "inventory"},
	}}
	uc := auth.NewAuthUseCase(users, roles, auth.JWTConfig{
		Secret: jwtSecret, ExpMinutes: 60, Issuer: "despensa-test",
	})
	return uc, users
}

func TestRegisterYLogin(t *testing.T) {
	uc, _ := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "chef", Email: "chef@cocina.co", Password: "secreto123",
		FirstName: "Ana", LastName: "Pérez", RoleID: "role-inv",
	})
	require.NoError(t, err)
	assert.Equal(t, "inventory", out.Role)
	assert.True(t, out.IsActive)

	login, err := uc.Login(dto.LoginRequest{Email: "chef@cocina.co", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	// El token lleva el role_name que policy evalúa.
	userID, role, err := pkgjwt.Parse(jwtSecret, login.Token)
	require.NoError(t, err)
	assert.Equal(t, out.ID, userID)
	assert.Equal(t, "inventory", role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "chef@cocina.co", Password: "x", RoleID: "role-admin",
	})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{
		Email: "chef@cocina.co", Password: "y", RoleID: "role-admin",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "x@y.co", Password: "x", RoleID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "chef@cocina.co", Password: "correcto", RoleID: "role-admin",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "chef@cocina.co", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, users := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "chef@cocina.co", Password: "secreto", RoleID: "role-admin",
	})
	require.NoError(t, err)
	users.byEmail["chef@cocina.co"].IsActive = false

	_, err = uc.Login(dto.LoginRequest{Email: "chef@cocina.co", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@cocina.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
