package usecase

import (
	"context"
	"marketplace-proxy/internal/core/domain"
)

type fakeFetcher struct {
	page    *domain.SearchPage
	listing *domain.Listing
	desc    string

	searchErr error
	itemErr   error
	descErr   error

	// itemBlock, если задан, держит FetchItem до отмены контекста
	itemBlock bool

	gotQuery string
}

func (f *fakeFetcher) SearchItems(ctx context.Context, query string) (*domain.SearchPage, error) {
	f.gotQuery = query
	return f.page, f.searchErr
}

func (f *fakeFetcher) FetchItem(ctx context.Context, itemID string) (*domain.Listing, error) {
	if f.itemBlock {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.listing, f.itemErr
}

func (f *fakeFetcher) FetchItemDescription(ctx context.Context, itemID string) (string, error) {
	return f.desc, f.descErr
}
