package melifetcher

import (
	"marketplace-proxy/internal/core/domain"
)

func toDomainSearchPage(resp *meliSearchResponse) *domain.SearchPage {
	page := &domain.SearchPage{
		Results:          make([]domain.Listing, 0, len(resp.Results)),
		Filters:          toDomainFilters(resp.Filters),
		AvailableFilters: toDomainFilters(resp.AvailableFilters),
	}

	for _, item := range resp.Results {
		page.Results = append(page.Results, domain.Listing{
			ID:           item.ID,
			Title:        item.Title,
			CurrencyID:   item.CurrencyID,
			Price:        item.Price,
			Thumbnail:    item.Thumbnail,
			Condition:    item.Condition,
			FreeShipping: item.Shipping.FreeShipping,
		})
	}

	return page
}

func toDomainFilters(filters []meliFilter) []domain.Filter {
	result := make([]domain.Filter, 0, len(filters))
	for _, f := range filters {
		values := make([]domain.FilterValue, 0, len(f.Values))
		for _, v := range f.Values {
			values = append(values, domain.FilterValue{
				ID:           v.ID,
				Name:         v.Name,
				PathFromRoot: toDomainPath(v.PathFromRoot),
			})
		}
		result = append(result, domain.Filter{ID: f.ID, Name: f.Name, Values: values})
	}
	return result
}

// toDomainPath сохраняет различие между отсутствующим и пустым path_from_root
func toDomainPath(path []meliPathNode) []domain.PathNode {
	if path == nil {
		return nil
	}
	nodes := make([]domain.PathNode, 0, len(path))
	for _, p := range path {
		nodes = append(nodes, domain.PathNode{ID: p.ID, Name: p.Name})
	}
	return nodes
}

func toDomainListing(resp *meliItemResponse) *domain.Listing {
	pictures := make([]string, 0, len(resp.Pictures))
	for _, p := range resp.Pictures {
		pictures = append(pictures, p.URL)
	}

	return &domain.Listing{
		ID:              resp.ID,
		Title:           resp.Title,
		CurrencyID:      resp.CurrencyID,
		Price:           resp.Price,
		Thumbnail:       resp.Thumbnail,
		Condition:       resp.Condition,
		FreeShipping:    resp.Shipping.FreeShipping,
		Pictures:        pictures,
		SoldQuantity:    resp.SoldQuantity,
		InitialQuantity: resp.InitialQuantity,
	}
}
