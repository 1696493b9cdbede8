package usecase

import (
	"context"
	"fmt"
	"marketplace-proxy/internal/contextkeys"
	"marketplace-proxy/internal/core/domain"
	"marketplace-proxy/internal/core/port"
	"net/http"

	"golang.org/x/sync/errgroup"
)

type GetItemDetailsUseCase struct {
	fetcher port.MarketplaceFetcherPort
}

func NewGetItemDetailsUseCase(fetcher port.MarketplaceFetcherPort) *GetItemDetailsUseCase {
	return &GetItemDetailsUseCase{fetcher: fetcher}
}

// Execute параллельно запрашивает объявление и его описание.
// Первая же ошибка отменяет второй запрос и становится результатом всей операции.
func (uc *GetItemDetailsUseCase) Execute(ctx context.Context, itemID string) (*domain.ItemDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetItemDetails",
		"item_id":  itemID,
	})

	ucLogger.Info("Use case started", nil)

	var (
		listing     *domain.Listing
		description string
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := uc.fetcher.FetchItem(gCtx, itemID)
		if err != nil {
			return fmt.Errorf("fetch item: %w", err)
		}
		listing = l
		return nil
	})
	g.Go(func() error {
		d, err := uc.fetcher.FetchItemDescription(gCtx, itemID)
		if err != nil {
			return fmt.Errorf("fetch item description: %w", err)
		}
		description = d
		return nil
	})

	if err := g.Wait(); err != nil {
		ucLogger.Error("Failed to fetch item from marketplace", err, nil)
		return nil, fmt.Errorf("GetItemDetails: %w", err)
	}

	// Картинка детальной карточки берется из pictures[0], без нее ответ неполный
	if len(listing.Pictures) == 0 {
		err := domain.NewMalformedResponseError(http.StatusOK, "item has no pictures", nil)
		ucLogger.Error("Marketplace returned item without pictures", err, nil)
		return nil, fmt.Errorf("GetItemDetails: %w", err)
	}

	summary := listing.ToSummary()
	summary.Picture = listing.Pictures[0]

	detail := &domain.ItemDetail{
		ItemSummary:     summary,
		SoldQuantity:    listing.SoldQuantity,
		Description:     description,
		InitialQuantity: listing.InitialQuantity,
	}

	ucLogger.Info("Use case finished successfully", nil)

	return detail, nil
}
