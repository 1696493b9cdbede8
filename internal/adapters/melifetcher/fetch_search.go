package melifetcher

import (
	"context"
	"encoding/json"
	"marketplace-proxy/internal/contextkeys"
	"marketplace-proxy/internal/contracts"
	"marketplace-proxy/internal/core/domain"
	"marketplace-proxy/internal/core/port"
)

// SearchItems ищет объявления на сайте по текстовому запросу
func (a *MeliFetcherAdapter) SearchItems(ctx context.Context, query string) (*domain.SearchPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	searchLogger := logger.WithFields(port.Fields{
		"component": "MeliFetcherAdapter(SearchItems)",
		"site_id":   a.siteID,
	})

	body, err := a.fetchPayload(ctx, searchLogger, a.searchURL(query), contracts.SearchPagePayload)
	if err != nil {
		return nil, err
	}

	var resp meliSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		searchLogger.Error("Failed to decode search response", err, nil)
		return nil, domain.NewMalformedResponseError(200, "search response decode failed", err)
	}

	searchLogger.Debug("Search response received", port.Fields{"results_count": len(resp.Results)})

	return toDomainSearchPage(&resp), nil
}
