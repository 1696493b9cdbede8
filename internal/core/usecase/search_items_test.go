package usecase

import (
	"context"
	"errors"
	"marketplace-proxy/internal/core/domain"
	"reflect"
	"testing"
)

func TestSearchItemsUseCase_Execute_mapsResults(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{
		page: &domain.SearchPage{
			Results: []domain.Listing{
				{
					ID:           "MLA1",
					Title:        "Auriculares",
					CurrencyID:   "ARS",
					Price:        1250.5,
					Thumbnail:    "http://thumb/1.jpg",
					Condition:    "new",
					FreeShipping: true,
					Pictures:     []string{"http://pic/ignored.jpg"},
				},
				{ID: "MLA2", Title: "Parlante", CurrencyID: "USD", Price: 30, Condition: "used"},
			},
			Filters: []domain.Filter{
				{
					ID: domain.CategoryFilterID,
					Values: []domain.FilterValue{{
						Name: "Headphones",
						PathFromRoot: []domain.PathNode{
							{Name: "Electronics"}, {Name: "Audio"}, {Name: "Headphones"},
						},
					}},
				},
			},
		},
	}

	uc := NewSearchItemsUseCase(f)
	res, err := uc.Execute(context.Background(), "auriculares")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.gotQuery != "auriculares" {
		t.Fatalf("query got %q, want %q", f.gotQuery, "auriculares")
	}

	wantCategories := []string{"Electronics", "Audio", "Headphones"}
	if !reflect.DeepEqual(res.Categories, wantCategories) {
		t.Fatalf("Categories got %v, want %v", res.Categories, wantCategories)
	}

	if len(res.Items) != 2 {
		t.Fatalf("Items len got %d, want 2", len(res.Items))
	}

	first := res.Items[0]
	want := domain.ItemSummary{
		ID:           "MLA1",
		Title:        "Auriculares",
		Price:        domain.Price{Currency: "ARS", Amount: 1250.5, Decimals: 1},
		Picture:      "http://thumb/1.jpg",
		Condition:    "new",
		FreeShipping: true,
	}
	if first != want {
		t.Fatalf("Items[0] got %+v, want %+v", first, want)
	}
	if res.Items[1].Price.Decimals != 0 {
		t.Fatalf("Items[1].Price.Decimals got %d, want 0", res.Items[1].Price.Decimals)
	}
}

func TestSearchItemsUseCase_Execute_emptyResultsAreNotNil(t *testing.T) {
	t.Parallel()

	uc := NewSearchItemsUseCase(&fakeFetcher{page: &domain.SearchPage{}})
	res, err := uc.Execute(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Items == nil || res.Categories == nil {
		t.Fatalf("expected non-nil slices, got items=%v categories=%v", res.Items, res.Categories)
	}
}

func TestSearchItemsUseCase_Execute_propagatesUpstreamError(t *testing.T) {
	t.Parallel()

	upstream := &domain.UpstreamError{StatusCode: 400, Message: "bad request"}
	uc := NewSearchItemsUseCase(&fakeFetcher{searchErr: upstream})

	_, err := uc.Execute(context.Background(), "x")
	if err == nil {
		t.Fatalf("expected error")
	}

	var got *domain.UpstreamError
	if !errors.As(err, &got) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if got.StatusCode != 400 || got.Message != "bad request" {
		t.Fatalf("UpstreamError got %+v", got)
	}
}
