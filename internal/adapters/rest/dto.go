package rest

import "marketplace-proxy/internal/core/domain"

type AuthorDTO struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
}

type PriceDTO struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Decimals int     `json:"decimals"`
}

type ItemSummaryDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Price        PriceDTO `json:"price"`
	Picture      string   `json:"picture"`
	Condition    string   `json:"condition"`
	FreeShipping bool     `json:"free_shipping"`
}

type ItemDetailDTO struct {
	ItemSummaryDTO
	SoldQuantity    int    `json:"sold_quantity"`
	Description     string `json:"description"`
	InitialQuantity int    `json:"initial_quantity"`
}

// SearchResponseDTO - ответ GET /api/items
type SearchResponseDTO struct {
	Author     AuthorDTO        `json:"author"`
	Categories []string         `json:"categories"`
	Items      []ItemSummaryDTO `json:"items"`
}

// ItemResponseDTO - ответ GET /api/items/{id}
type ItemResponseDTO struct {
	Author AuthorDTO     `json:"author"`
	Item   ItemDetailDTO `json:"item"`
}

// ErrorResponseDTO - упрощенная ошибка для клиента
type ErrorResponseDTO struct {
	Message string `json:"message"`
}

func toAuthorDTO(a domain.Author) AuthorDTO {
	return AuthorDTO{Name: a.Name, Lastname: a.Lastname}
}

func toItemSummaryDTO(i domain.ItemSummary) ItemSummaryDTO {
	return ItemSummaryDTO{
		ID:    i.ID,
		Title: i.Title,
		Price: PriceDTO{
			Currency: i.Price.Currency,
			Amount:   i.Price.Amount,
			Decimals: i.Price.Decimals,
		},
		Picture:      i.Picture,
		Condition:    i.Condition,
		FreeShipping: i.FreeShipping,
	}
}

func toSearchResponseDTO(author domain.Author, res *domain.SearchResult) SearchResponseDTO {
	items := make([]ItemSummaryDTO, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, toItemSummaryDTO(item))
	}

	categories := res.Categories
	if categories == nil {
		categories = []string{}
	}

	return SearchResponseDTO{
		Author:     toAuthorDTO(author),
		Categories: categories,
		Items:      items,
	}
}

func toItemResponseDTO(author domain.Author, d *domain.ItemDetail) ItemResponseDTO {
	return ItemResponseDTO{
		Author: toAuthorDTO(author),
		Item: ItemDetailDTO{
			ItemSummaryDTO:  toItemSummaryDTO(d.ItemSummary),
			SoldQuantity:    d.SoldQuantity,
			Description:     d.Description,
			InitialQuantity: d.InitialQuantity,
		},
	}
}
