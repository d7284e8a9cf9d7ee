// Package analytics contiene el resumen del panel administrativo.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/garments-tracker-api/internal/application/dto"
	"github.com/jhoicas/garments-tracker-api/internal/domain/repository"
)

// StatsUseCase calcula conteos por colección y el revenue de pedidos
// pagados. Los conteos son estimaciones rápidas, no COUNT exactos.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetStats lanza las dos consultas en paralelo y arma la respuesta.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	type countsResult struct {
		counts repository.EntityCounts
		err    error
	}
	type revenueResult struct {
		revenue decimal.Decimal
		err     error
	}

	countsCh := make(chan countsResult, 1)
	revenueCh := make(chan revenueResult, 1)

	go func() {
		counts, err := uc.statsRepo.CountEntities(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		revenue, err := uc.statsRepo.PaidRevenue(ctx)
		revenueCh <- revenueResult{revenue, err}
	}()

	counts := <-countsCh
	revenue := <-revenueCh

	if counts.err != nil {
		return nil, fmt.Errorf("stats: conteos: %w", counts.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("stats: revenue: %w", revenue.err)
	}

	return &dto.AdminStatsResponse{
		Users:    counts.counts.Users,
		Products: counts.counts.Products,
		Orders:   counts.counts.Orders,
		Revenue:  revenue.revenue.Round(2),
	}, nil
}
