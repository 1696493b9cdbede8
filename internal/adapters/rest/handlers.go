package rest

import (
	"marketplace-proxy/internal/contextkeys"
	"marketplace-proxy/internal/core/domain"
	"marketplace-proxy/internal/core/port"
	"marketplace-proxy/internal/core/port/usecases_port"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ItemsHandlers struct {
	searchItemsUC    usecases_port.SearchItemsUseCase
	getItemDetailsUC usecases_port.GetItemDetailsUseCase
	author           domain.Author
}

// NewItemsHandlers - конструктор обработчиков. author добавляется в каждый успешный ответ.
func NewItemsHandlers(searchItemsUC usecases_port.SearchItemsUseCase,
	getItemDetailsUC usecases_port.GetItemDetailsUseCase,
	author domain.Author) *ItemsHandlers {
	return &ItemsHandlers{
		searchItemsUC:    searchItemsUC,
		getItemDetailsUC: getItemDetailsUC,
		author:           author,
	}
}

// HandleSearchItems - обработчик для GET /api/items?q=...
// Пустой или отсутствующий q передается маркетплейсу как есть.
func (h *ItemsHandlers) HandleSearchItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "HandleSearchItems",
		"query":   query,
	})

	result, err := h.searchItemsUC.Execute(r.Context(), query)
	if err != nil {
		status, message := errorToResponse(err)
		logger.Error("Search failed", err, port.Fields{"status_code": status})
		WriteJSONError(w, status, message)
		return
	}

	RespondWithJSON(w, http.StatusOK, toSearchResponseDTO(h.author, result))
}

// HandleGetItem - обработчик для GET /api/items/{id}
func (h *ItemsHandlers) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "HandleGetItem",
		"item_id": itemID,
	})

	detail, err := h.getItemDetailsUC.Execute(r.Context(), itemID)
	if err != nil {
		status, message := errorToResponse(err)
		logger.Error("Get item failed", err, port.Fields{"status_code": status})
		WriteJSONError(w, status, message)
		return
	}

	RespondWithJSON(w, http.StatusOK, toItemResponseDTO(h.author, detail))
}
