package usecases_port

import (
	"context"
	"marketplace-proxy/internal/core/domain"
)

type GetItemDetailsUseCase interface {
	Execute(ctx context.Context, itemID string) (*domain.ItemDetail, error)
}
