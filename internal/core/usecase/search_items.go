package usecase

import (
	"context"
	"fmt"
	"marketplace-proxy/internal/contextkeys"
	"marketplace-proxy/internal/core/domain"
	"marketplace-proxy/internal/core/port"
)

type SearchItemsUseCase struct {
	fetcher port.MarketplaceFetcherPort
}

func NewSearchItemsUseCase(fetcher port.MarketplaceFetcherPort) *SearchItemsUseCase {
	return &SearchItemsUseCase{fetcher: fetcher}
}

// Execute ищет товары на маркетплейсе и собирает упрощенный результат:
// плоский список категорий и карточки найденных товаров.
func (uc *SearchItemsUseCase) Execute(ctx context.Context, query string) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchItems",
		"query":    query,
	})

	ucLogger.Info("Use case started", nil)

	page, err := uc.fetcher.SearchItems(ctx, query)
	if err != nil {
		ucLogger.Error("Marketplace search failed", err, nil)
		return nil, fmt.Errorf("SearchItems: %w", err)
	}

	items := make([]domain.ItemSummary, 0, len(page.Results))
	for _, listing := range page.Results {
		items = append(items, listing.ToSummary())
	}

	result := &domain.SearchResult{
		Categories: domain.ResolveCategories(*page),
		Items:      items,
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"items_count":      len(result.Items),
		"categories_count": len(result.Categories),
	})

	return result, nil
}
