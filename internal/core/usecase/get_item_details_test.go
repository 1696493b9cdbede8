package usecase

import (
	"context"
	"errors"
	"marketplace-proxy/internal/core/domain"
	"testing"
)

func sampleListing() *domain.Listing {
	return &domain.Listing{
		ID:              "MLA123",
		Title:           "Auriculares Bluetooth",
		CurrencyID:      "ARS",
		Price:           1250.75,
		Thumbnail:       "http://thumb/123.jpg",
		Condition:       "new",
		FreeShipping:    true,
		Pictures:        []string{"http://pic/123-1.jpg", "http://pic/123-2.jpg"},
		SoldQuantity:    7,
		InitialQuantity: 20,
	}
}

func TestGetItemDetailsUseCase_Execute_mergesItemAndDescription(t *testing.T) {
	t.Parallel()

	uc := NewGetItemDetailsUseCase(&fakeFetcher{listing: sampleListing(), desc: "Muy buenos"})

	got, err := uc.Execute(context.Background(), "MLA123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID != "MLA123" {
		t.Fatalf("ID got %q, want %q", got.ID, "MLA123")
	}
	if got.Title != "Auriculares Bluetooth" {
		t.Fatalf("Title got %q", got.Title)
	}
	if got.Price != (domain.Price{Currency: "ARS", Amount: 1250.75, Decimals: 2}) {
		t.Fatalf("Price got %+v", got.Price)
	}
	if got.Picture != "http://pic/123-1.jpg" {
		t.Fatalf("Picture got %q, want first picture", got.Picture)
	}
	if got.Condition != "new" || !got.FreeShipping {
		t.Fatalf("Condition/FreeShipping got %q/%v", got.Condition, got.FreeShipping)
	}
	if got.SoldQuantity != 7 || got.InitialQuantity != 20 {
		t.Fatalf("quantities got sold=%d initial=%d", got.SoldQuantity, got.InitialQuantity)
	}
	if got.Description != "Muy buenos" {
		t.Fatalf("Description got %q, want %q", got.Description, "Muy buenos")
	}
}

func TestGetItemDetailsUseCase_Execute_descriptionFailureFailsWholeRequest(t *testing.T) {
	t.Parallel()

	notFound := &domain.UpstreamError{StatusCode: 404, Message: "not found"}
	uc := NewGetItemDetailsUseCase(&fakeFetcher{listing: sampleListing(), descErr: notFound})

	got, err := uc.Execute(context.Background(), "MLA123")
	if got != nil {
		t.Fatalf("expected no partial result, got %+v", got)
	}

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != 404 || upstream.Message != "not found" {
		t.Fatalf("UpstreamError got %+v", upstream)
	}
}

func TestGetItemDetailsUseCase_Execute_failureCancelsSibling(t *testing.T) {
	t.Parallel()

	notFound := &domain.UpstreamError{StatusCode: 404, Message: "not found"}
	uc := NewGetItemDetailsUseCase(&fakeFetcher{itemBlock: true, descErr: notFound})

	_, err := uc.Execute(context.Background(), "MLA123")

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError from description call, got %v", err)
	}
}

func TestGetItemDetailsUseCase_Execute_noPicturesIsMalformed(t *testing.T) {
	t.Parallel()

	listing := sampleListing()
	listing.Pictures = nil
	uc := NewGetItemDetailsUseCase(&fakeFetcher{listing: listing, desc: "x"})

	_, err := uc.Execute(context.Background(), "MLA123")
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
