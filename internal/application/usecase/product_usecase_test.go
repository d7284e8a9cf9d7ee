package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/application/usecase"
	"github.com/jhoicas/garments-tracker-api/internal/domain"
	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
	"github.com/jhoicas/garments-tracker-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de productos. Captura el último filtro
// recibido para poder asertar la traducción query → filtro.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products   []*entity.Product
	lastFilter repository.ProductFilter
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) Search(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int64, error) {
	r.lastFilter = f
	return r.products, int64(len(r.products)), nil
}

func (r *fakeProductRepo) ListHome(_ context.Context, limit int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.ShowOnHome {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_SinNombre_EsEntradaInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Category: "camisas",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_ShowOnHomeDefaulteaFalse(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Camisa lino",
		Price: decimal.RequireFromString("39.90"),
	})
	require.NoError(t, err)

	assert.False(t, out.ShowOnHome)
	assert.NotEmpty(t, out.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search — traducción de la query al filtro del repositorio
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_TraduceFiltrosDePrecio(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Search(context.Background(), dto.ProductSearchRequest{
		Search:   "lino",
		Category: "camisas",
		MinPrice: "10",
		MaxPrice: "49.99",
		Sort:     "price_asc",
	})
	require.NoError(t, err)

	f := repo.lastFilter
	assert.Equal(t, "lino", f.Search)
	assert.Equal(t, "camisas", f.Category)
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.True(t, f.MinPrice.Equal(decimal.RequireFromString("10")))
	assert.True(t, f.MaxPrice.Equal(decimal.RequireFromString("49.99")))
	assert.Equal(t, repository.SortPriceAsc, f.Sort)
}

func TestSearch_CategoriaAll_NoFiltra(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Search(context.Background(), dto.ProductSearchRequest{Category: "all"})
	require.NoError(t, err)

	assert.Empty(t, repo.lastFilter.Category, `category="all" es el sentinel de "sin filtro"`)
}

func TestSearch_PrecioNoNumerico_EsEntradaInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Search(context.Background(), dto.ProductSearchRequest{MinPrice: "barato"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearch_OrdenDesconocido_CaeEnNewest(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Search(context.Background(), dto.ProductSearchRequest{Sort: "alfabetico"})
	require.NoError(t, err)

	assert.Equal(t, repository.SortNewest, repo.lastFilter.Sort)
}

func TestSearch_PaginacionUnoIndexada(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Search(context.Background(), dto.ProductSearchRequest{
		PageRequest: dto.PageRequest{Page: 2, Limit: 9},
	})
	require.NoError(t, err)

	assert.Equal(t, 9, repo.lastFilter.Limit)
	assert.Equal(t, 9, repo.lastFilter.Offset, "page=2 con limit=9 es offset 9")
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 9, out.Limit)
}

func TestSearch_SinParametros_AplicaDefaults(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Search(context.Background(), dto.ProductSearchRequest{})
	require.NoError(t, err)

	assert.Equal(t, 20, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Offset)
	assert.Equal(t, 1, out.Page)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_SoloCamposPresentes(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Camisa lino",
		Category: "camisas",
		Price:    decimal.RequireFromString("39.90"),
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.RequireFromString("29.90")
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Price: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(nuevoPrecio))
	assert.Equal(t, "Camisa lino", out.Name, "los campos ausentes no se tocan")
	assert.Equal(t, "camisas", out.Category)
}

func TestProductUpdate_Inexistente_Retorna404(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	nombre := "nadie"
	_, err := uc.Update(context.Background(), "00000000-0000-0000-0000-000000000099", dto.UpdateProductRequest{
		Name: &nombre,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_InexistenteNoEsError(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	err := uc.Delete(context.Background(), "00000000-0000-0000-0000-000000000099")
	assert.NoError(t, err, "borrar lo que no existe es idempotente")
}
