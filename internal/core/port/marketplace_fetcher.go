package port

import (
	"context"
	"marketplace-proxy/internal/core/domain"
)

// MarketplaceFetcherPort объединяет все операции, которые можно выполнить
// с API маркетплейса.
type MarketplaceFetcherPort interface {
	// SearchItems выполняет поиск по сайту по свободному текстовому запросу.
	SearchItems(ctx context.Context, query string) (*domain.SearchPage, error)

	// FetchItem возвращает объявление по его идентификатору.
	FetchItem(ctx context.Context, itemID string) (*domain.Listing, error)

	// FetchItemDescription возвращает текстовое описание объявления.
	FetchItemDescription(ctx context.Context, itemID string) (string, error)
}
