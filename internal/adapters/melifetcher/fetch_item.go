package melifetcher

import (
	"context"
	"encoding/json"
	"marketplace-proxy/internal/contextkeys"
	"marketplace-proxy/internal/contracts"
	"marketplace-proxy/internal/core/domain"
	"marketplace-proxy/internal/core/port"
)

// FetchItem извлекает объявление по идентификатору
func (a *MeliFetcherAdapter) FetchItem(ctx context.Context, itemID string) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	itemLogger := logger.WithFields(port.Fields{
		"component": "MeliFetcherAdapter(FetchItem)",
		"item_id":   itemID,
	})

	body, err := a.fetchPayload(ctx, itemLogger, a.itemURL(itemID), contracts.ItemPayload)
	if err != nil {
		return nil, err
	}

	var resp meliItemResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		itemLogger.Error("Failed to decode item response", err, nil)
		return nil, domain.NewMalformedResponseError(200, "item response decode failed", err)
	}

	return toDomainListing(&resp), nil
}

// FetchItemDescription извлекает текстовое описание объявления
func (a *MeliFetcherAdapter) FetchItemDescription(ctx context.Context, itemID string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	descLogger := logger.WithFields(port.Fields{
		"component": "MeliFetcherAdapter(FetchItemDescription)",
		"item_id":   itemID,
	})

	body, err := a.fetchPayload(ctx, descLogger, a.itemDescriptionURL(itemID), contracts.ItemDescriptionPayload)
	if err != nil {
		return "", err
	}

	var resp meliDescriptionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		descLogger.Error("Failed to decode item description response", err, nil)
		return "", domain.NewMalformedResponseError(200, "description response decode failed", err)
	}

	return resp.PlainText, nil
}
