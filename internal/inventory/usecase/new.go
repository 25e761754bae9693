package usecase

import (
	"steaminvest/internal/inventory/repository"
	"steaminvest/pkg/log"
	"steaminvest/pkg/steammarket"
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo   repository.Repository
	prices steammarket.PriceSource
	l      log.Logger
}

// New creates a new inventory UseCase implementation.
func New(repo repository.Repository, prices steammarket.PriceSource, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		prices: prices,
		l:      l,
	}
}
