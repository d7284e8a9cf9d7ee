package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/domain"
	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
	"github.com/jhoicas/garments-tracker-api/internal/domain/repository"
)

const homeDefaultLimit = 6 // productos de portada por defecto

// ProductUseCase CRUD y búsqueda del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. ShowOnHome defaultea a false y la fecha de
// creación la pone el servidor.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	showOnHome := false
	if in.ShowOnHome != nil {
		showOnHome = *in.ShowOnHome
	}
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Category:   in.Category,
		Price:      in.Price,
		ShowOnHome: showOnHome,
		Attributes: in.Attributes,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica un patch al producto: solo campos presentes. El identificador
// es inmutable; el handler ya descartó cualquier id del payload.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.ShowOnHome != nil {
		product.ShowOnHome = *in.ShowOnHome
	}
	if len(in.Attributes) > 0 {
		product.Attributes = in.Attributes
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. No hay verificación referencial contra
// pedidos existentes, igual que en el sistema original.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Search busca en el catálogo: texto (substring case-insensitive sobre el
// nombre), categoría exacta (el sentinel "all" la omite), rango de precio
// inclusivo y orden por precio o por fecha de creación descendente.
func (uc *ProductUseCase) Search(ctx context.Context, in dto.ProductSearchRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()

	filter := repository.ProductFilter{
		Search: in.Search,
		Sort:   normalizeSort(in.Sort),
		Limit:  in.Limit,
		Offset: in.Offset(),
	}
	if in.Category != "" && in.Category != "all" {
		filter.Category = in.Category
	}
	var err error
	if filter.MinPrice, err = parsePrice(in.MinPrice); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = parsePrice(in.MaxPrice); err != nil {
		return nil, err
	}

	list, total, err := uc.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       in.Page,
		Limit:      in.Limit,
	}, nil
}

// Home devuelve los productos de portada, más recientes primero.
func (uc *ProductUseCase) Home(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 {
		limit = homeDefaultLimit
	}
	list, err := uc.repo.ListHome(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// normalizeSort reduce el parámetro de orden a los valores soportados.
func normalizeSort(sort string) string {
	switch sort {
	case repository.SortPriceAsc, repository.SortPriceDesc:
		return sort
	default:
		return repository.SortNewest
	}
}

// parsePrice coerciona el query param a decimal; vacío significa sin filtro.
func parsePrice(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &d, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		ShowOnHome: p.ShowOnHome,
		Attributes: p.Attributes,
		CreatedAt:  p.CreatedAt,
	}
}
