package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/domain"
	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
	"github.com/jhoicas/garments-tracker-api/internal/domain/repository"
)

// UserUseCase cuentas del marketplace: registro upsert-por-email, consulta
// por email, listado y patch administrativo.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Register crea la cuenta si el email no existe. Un segundo registro con el
// mismo email no muta nada y reporta created=false; no es un error.
func (uc *UserUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.RegisterResponse{Created: false, Message: "User already exists"}, nil
	}
	role := in.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Email:     in.Email,
		Name:      in.Name,
		Photo:     in.Photo,
		Role:      role,
		Status:    entity.StatusActive,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{Created: true, User: toUserResponse(user)}, nil
}

// GetByEmail busca la cuenta por email. La ausencia devuelve (nil, nil):
// el handler responde {} y no un 404, por diseño.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List devuelve todas las cuentas, más recientes primero.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Patch aplica solo los campos presentes. suspendReason se asigna antes que
// status: si el status pasa a "active", la regla de limpieza pisa cualquier
// razón enviada en la misma llamada. Esa precedencia es intencional.
func (uc *UserUseCase) Patch(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Photo != nil {
		user.Photo = *in.Photo
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.SuspendReason != nil {
		user.SuspendReason = in.SuspendReason
	}
	if in.Status != nil {
		user.Status = *in.Status
		if user.Status == entity.StatusActive {
			user.SuspendReason = nil
		}
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Photo:         u.Photo,
		Role:          u.Role,
		Status:        u.Status,
		SuspendReason: u.SuspendReason,
		CreatedAt:     u.CreatedAt,
	}
}
