package melifetcher

import (
	"context"
	"encoding/json"
	"marketplace-proxy/internal/contextkeys"
	"marketplace-proxy/internal/contracts"
	"marketplace-proxy/internal/core/domain"
	"marketplace-proxy/internal/core/port"

	"github.com/go-faster/errors"
	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

// fetchPayload выполняет GET-запрос через клон коллектора и возвращает тело
// успешного ответа, уже проверенное по контракту payloadType.
func (a *MeliFetcherAdapter) fetchPayload(ctx context.Context, logger port.LoggerPort, apiURL, payloadType string) ([]byte, error) {
	collector := a.collector.Clone()
	collector.Context = ctx
	extensions.RandomUserAgent(collector)

	var body []byte
	var criticalError error

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "application/json")
		if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
			r.Headers.Set("X-Trace-ID", traceID)
		}
		logger.Debug("Making request to marketplace", port.Fields{"url": r.URL.String()})
	})

	collector.OnResponse(func(r *colly.Response) {
		if err := contracts.Validate(payloadType, contracts.V1, r.Body); err != nil {
			criticalError = domain.NewMalformedResponseError(r.StatusCode, payloadType+" violates contract", err)
			return
		}
		body = r.Body
	})

	collector.OnError(func(r *colly.Response, err error) {
		criticalError = classifyFailure(r, err)
		logger.Warn("Marketplace request failed", port.Fields{
			"url":    apiURL,
			"status": statusOf(r),
			"error":  criticalError.Error(),
		})
	})

	visitErr := collector.Visit(apiURL)
	collector.Wait()

	if criticalError != nil {
		return nil, criticalError
	}
	if visitErr != nil {
		return nil, errors.Wrap(visitErr, "marketplace request failed")
	}
	if body == nil {
		return nil, domain.NewMalformedResponseError(0, "empty response", nil)
	}

	return body, nil
}

// classifyFailure раскладывает неуспешный ответ по типам ошибок:
// ответ с телом {"error": ...} -> UpstreamError, любое другое тело -> MalformedResponseError,
// отсутствие ответа (сеть, отмена контекста) -> обернутая транспортная ошибка.
func classifyFailure(r *colly.Response, err error) error {
	status := statusOf(r)
	if status == 0 {
		return errors.Wrap(err, "marketplace is unreachable")
	}

	if vErr := contracts.Validate(contracts.ErrorPayload, contracts.V1, r.Body); vErr != nil {
		return domain.NewMalformedResponseError(status, "unexpected error body", vErr)
	}

	var errBody meliErrorResponse
	if dErr := json.Unmarshal(r.Body, &errBody); dErr != nil {
		return domain.NewMalformedResponseError(status, "unexpected error body", dErr)
	}

	return &domain.UpstreamError{StatusCode: status, Message: errBody.Error}
}

func statusOf(r *colly.Response) int {
	if r == nil {
		return 0
	}
	return r.StatusCode
}
