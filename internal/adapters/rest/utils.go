package rest

import (
	"encoding/json"
	"marketplace-proxy/internal/core/domain"
	"net/http"

	"github.com/go-faster/errors"
)

const (
	msgMalformedUpstream   = "upstream returned an unexpected response"
	msgUpstreamUnavailable = "upstream service unavailable"
)

// WriteJSONError отправляет JSON-ответ вида {"message": "..."} с заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponseDTO{Message: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// errorToResponse переводит ошибку use case в статус и сообщение для клиента.
// Ошибка маркетплейса в формате {"error"} пробрасывается с его статусом,
// все остальное превращается в 502.
func errorToResponse(err error) (int, string) {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) && validStatus(upstream.StatusCode) {
		return upstream.StatusCode, upstream.Message
	}
	if errors.Is(err, domain.ErrMalformedResponse) {
		return http.StatusBadGateway, msgMalformedUpstream
	}
	return http.StatusBadGateway, msgUpstreamUnavailable
}

func validStatus(code int) bool {
	return code >= 100 && code <= 999
}
