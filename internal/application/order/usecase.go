// Package order implementa el ciclo de vida de pedidos: creación con
// defaults forzados, transición de estado con approvedAt derivado, diario
// de producción append-only y listados global y por comprador.
package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/domain"
	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
	"github.com/jhoicas/garments-tracker-api/internal/domain/repository"
)

// UseCase ciclo de vida de pedidos.
type UseCase struct {
	repo     repository.OrderRepository
	receipts ReceiptGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.OrderRepository, receipts ReceiptGenerator) *UseCase {
	return &UseCase{repo: repo, receipts: receipts}
}

// Create crea el pedido con fecha de servidor. Status y paymentStatus solo
// se defaultean cuando el caller los omite; si vienen en el payload se
// respetan tal cual (brecha de confianza heredada del original). El email
// del comprador cae al de la credencial si el body no lo trae.
func (uc *UseCase) Create(ctx context.Context, requester string, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	buyer := in.BuyerEmail
	if buyer == "" {
		buyer = requester
	}
	if buyer == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusUnpaid
	}
	o := &entity.Order{
		ID:            uuid.New().String(),
		BuyerEmail:    buyer,
		OrderPrice:    in.OrderPrice,
		Items:         in.Items,
		Status:        status,
		PaymentStatus: paymentStatus,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return &dto.CreateOrderResponse{InsertedID: o.ID}, nil
}

// ListForBuyer lista los pedidos de un comprador. Es el único chequeo de
// propiedad del sistema: si la identidad de la credencial no coincide con
// el email consultado, se rechaza antes de tocar la base.
func (uc *UseCase) ListForBuyer(ctx context.Context, requester, email string) ([]dto.OrderResponse, error) {
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	if requester != email {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByBuyer(ctx, email)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListAll lista todos los pedidos, más recientes primero.
func (uc *UseCase) ListAll(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListApproved lista solo los pedidos aprobados.
func (uc *UseCase) ListApproved(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByStatus(ctx, entity.OrderStatusApproved)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// GetByID obtiene un pedido con su diario de producción.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(o), nil
}

// SetStatus reemplaza el status del pedido. No hay tabla de transiciones:
// cualquier valor sustituye a cualquier otro. approvedAt se deriva en la
// misma escritura: now si el nuevo status es exactamente "approved", NULL
// en cualquier otro caso.
func (uc *UseCase) SetStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	var approvedAt *time.Time
	if status == entity.OrderStatusApproved {
		now := time.Now()
		approvedAt = &now
	}
	if err := uc.repo.UpdateStatus(ctx, id, status, approvedAt); err != nil {
		return nil, err
	}
	o.Status = status
	o.ApprovedAt = approvedAt
	return toOrderResponse(o), nil
}

// AppendUpdate agrega una entrada al diario de producción con fecha de
// servidor. No valida progresión de etapas ni el status del pedido: un
// pedido rechazado también acepta entradas, como en el original.
func (uc *UseCase) AppendUpdate(ctx context.Context, id string, in dto.ProductionUpdateRequest) (*dto.ProductionUpdateResponse, error) {
	if in.Stage == "" {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	update := &entity.ProductionUpdate{
		ID:        uuid.New().String(),
		OrderID:   id,
		Stage:     in.Stage,
		Note:      in.Note,
		UpdatedBy: in.UpdatedBy,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.AppendProductionUpdate(ctx, update); err != nil {
		return nil, err
	}
	return &dto.ProductionUpdateResponse{
		Stage:     update.Stage,
		Note:      update.Note,
		UpdatedBy: update.UpdatedBy,
		CreatedAt: update.CreatedAt,
	}, nil
}

// Receipt genera el PDF de recibo del pedido.
func (uc *UseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.GenerateReceipt(ctx, o)
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	updates := make([]dto.ProductionUpdateResponse, 0, len(o.ProductionUpdates))
	for _, u := range o.ProductionUpdates {
		updates = append(updates, dto.ProductionUpdateResponse{
			Stage:     u.Stage,
			Note:      u.Note,
			UpdatedBy: u.UpdatedBy,
			CreatedAt: u.CreatedAt,
		})
	}
	return &dto.OrderResponse{
		ID:                o.ID,
		BuyerEmail:        o.BuyerEmail,
		OrderPrice:        o.OrderPrice,
		Items:             o.Items,
		Status:            o.Status,
		PaymentStatus:     o.PaymentStatus,
		ApprovedAt:        o.ApprovedAt,
		ProductionUpdates: updates,
		CreatedAt:         o.CreatedAt,
	}
}
