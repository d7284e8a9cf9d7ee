package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/garments-tracker-api/internal/application/analytics"
	"github.com/jhoicas/garments-tracker-api/internal/domain/repository"
)

type fakeStatsRepo struct {
	counts     repository.EntityCounts
	countsErr  error
	revenue    decimal.Decimal
	revenueErr error
}

func (r fakeStatsRepo) CountEntities(_ context.Context) (repository.EntityCounts, error) {
	return r.counts, r.countsErr
}

func (r fakeStatsRepo) PaidRevenue(_ context.Context) (decimal.Decimal, error) {
	return r.revenue, r.revenueErr
}

func TestGetStats_CombinaConteosYRevenue(t *testing.T) {
	uc := analytics.NewStatsUseCase(fakeStatsRepo{
		counts:  repository.EntityCounts{Users: 42, Products: 120, Orders: 311},
		revenue: decimal.RequireFromString("15230.559"),
	})

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), out.Users)
	assert.Equal(t, int64(120), out.Products)
	assert.Equal(t, int64(311), out.Orders)
	assert.True(t, out.Revenue.Equal(decimal.RequireFromString("15230.56")),
		"el revenue se redondea a dos decimales")
}

func TestGetStats_SinPedidosPagados_RevenueEsCero(t *testing.T) {
	uc := analytics.NewStatsUseCase(fakeStatsRepo{
		revenue: decimal.Zero,
	})

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.True(t, out.Revenue.IsZero(), "sin ventas el revenue es cero, no null ni error")
}

func TestGetStats_ErrorEnConteos_SePropaga(t *testing.T) {
	uc := analytics.NewStatsUseCase(fakeStatsRepo{
		countsErr: errors.New("estadísticas no disponibles"),
	})

	_, err := uc.GetStats(context.Background())
	assert.Error(t, err)
}
