package usecases_port

import (
	"context"
	"marketplace-proxy/internal/core/domain"
)

type SearchItemsUseCase interface {
	Execute(ctx context.Context, query string) (*domain.SearchResult, error)
}
