package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/application/usecase"
	"github.com/jhoicas/garments-tracker-api/internal/domain"
	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return domain.ErrNotFound
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Register — upsert por email
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaCuentaConDefaults(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com",
		Name:  "Ana",
	})
	require.NoError(t, err)

	assert.True(t, out.Created)
	require.NotNil(t, out.User)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Equal(t, entity.RoleBuyer, out.User.Role, "el rol por defecto es buyer")
	assert.Equal(t, entity.StatusActive, out.User.Status)
	assert.NotEmpty(t, out.User.ID)
	assert.False(t, out.User.CreatedAt.IsZero(), "la fecha la pone el servidor")
}

func TestRegister_EmailRepetido_NoMutaNada(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	first, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com",
		Name:  "Ana",
	})
	require.NoError(t, err)
	require.True(t, first.Created)

	// Segundo registro con el mismo email y otro nombre: no es error, no muta.
	second, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com",
		Name:  "Otra Ana",
	})
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, "User already exists", second.Message)
	require.Len(t, repo.users, 1, "debe quedar exactamente una cuenta")
	assert.Equal(t, "Ana", repo.users[0].Name, "el registro original queda intacto")
}

func TestRegister_SinEmail_EsEntradaInvalida(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "sin email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByEmail — la ausencia es (nil, nil), no error
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByEmail_Ausente_DevuelveNilSinError(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	out, err := uc.GetByEmail(context.Background(), "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, out, "la ausencia se reporta con nil, el handler responde {}")
}

// ──────────────────────────────────────────────────────────────────────────────
// Patch — precedencia status sobre suspendReason
// ──────────────────────────────────────────────────────────────────────────────

func TestPatch_SuspenderConRazon(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@example.com"})
	require.NoError(t, err)

	out, err := uc.Patch(context.Background(), created.User.ID, dto.UpdateUserRequest{
		Status:        strPtr(entity.StatusSuspended),
		SuspendReason: strPtr("impago"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusSuspended, out.Status)
	require.NotNil(t, out.SuspendReason)
	assert.Equal(t, "impago", *out.SuspendReason)
}

func TestPatch_ReactivarLimpiaLaRazon(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = uc.Patch(context.Background(), created.User.ID, dto.UpdateUserRequest{
		Status:        strPtr(entity.StatusSuspended),
		SuspendReason: strPtr("impago"),
	})
	require.NoError(t, err)

	// Reactivar mandando una razón nueva en la misma llamada: la regla del
	// status gana y la razón queda limpia.
	out, err := uc.Patch(context.Background(), created.User.ID, dto.UpdateUserRequest{
		Status:        strPtr(entity.StatusActive),
		SuspendReason: strPtr("esta razón no debe quedar"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusActive, out.Status)
	assert.Nil(t, out.SuspendReason, "status=active limpia suspendReason siempre")
}

func TestPatch_CuentaInexistente_Retorna404(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	_, err := uc.Patch(context.Background(), "00000000-0000-0000-0000-000000000099", dto.UpdateUserRequest{
		Name: strPtr("nadie"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPatch_SoloCamposPresentes(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com",
		Name:  "Ana",
		Photo: "https://cdn.example.com/ana.png",
	})
	require.NoError(t, err)

	out, err := uc.Patch(context.Background(), created.User.ID, dto.UpdateUserRequest{
		Role: strPtr(entity.RoleManager),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleManager, out.Role)
	assert.Equal(t, "Ana", out.Name, "los campos ausentes no se tocan")
	assert.Equal(t, "https://cdn.example.com/ana.png", out.Photo)
}
