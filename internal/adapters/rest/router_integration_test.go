package rest

import (
	"encoding/json"
	"marketplace-proxy/internal/adapters/melifetcher"
	"marketplace-proxy/internal/core/usecase"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

// newStackRouter собирает роутер поверх настоящего адаптера маркетплейса,
// направленного на тестовый сервер.
func newStackRouter(t *testing.T, upstream http.Handler) http.Handler {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	fetcher, err := melifetcher.NewMeliFetcherAdapter(melifetcher.Config{
		BaseURL: srv.URL,
		SiteID:  "MLA",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to build fetcher: %v", err)
	}

	h := NewItemsHandlers(
		usecase.NewSearchItemsUseCase(fetcher),
		usecase.NewGetItemDetailsUseCase(fetcher),
		testAuthor,
	)
	return NewRouter(h, CORSOptions{AllowedOrigin: "http://localhost:3000"}, discardLogger())
}

func writeUpstream(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestStack_searchUsesAvailableFiltersWhenFiltersEmpty(t *testing.T) {
	t.Parallel()

	router := newStackRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sites/MLA/search" {
			writeUpstream(w, http.StatusNotFound, `{"error":"not_found"}`)
			return
		}
		writeUpstream(w, http.StatusOK, `{
		  "results": [
		    {"id":"MLA9","title":"Mate","currency_id":"ARS","price":99.99,
		     "thumbnail":"http://thumb/9.jpg","condition":"new","shipping":{"free_shipping":false}}
		  ],
		  "filters": [],
		  "available_filters": [
		    {"id":"category","name":"Categorías","values":[
		      {"id":"MLA1","name":"Hogar"},
		      {"id":"MLA2","name":"Cocina"}
		    ]}
		  ]
		}`)
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items?q=mate", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body SearchResponseDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !reflect.DeepEqual(body.Categories, []string{"Hogar", "Cocina"}) {
		t.Fatalf("Categories got %v, want [Hogar Cocina]", body.Categories)
	}
	if len(body.Items) != 1 {
		t.Fatalf("Items got %d, want 1", len(body.Items))
	}
	if got := body.Items[0].Price; got != (PriceDTO{Currency: "ARS", Amount: 99.99, Decimals: 2}) {
		t.Fatalf("Price got %+v", got)
	}
}

func TestStack_itemMergesDescription(t *testing.T) {
	t.Parallel()

	router := newStackRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/items/MLA123":
			writeUpstream(w, http.StatusOK, `{"id":"MLA123","title":"Parlante","currency_id":"USD","price":30,
			  "thumbnail":"http://thumb/123.jpg","condition":"used","shipping":{"free_shipping":true},
			  "pictures":[{"url":"http://pic/123-1.jpg"}],"sold_quantity":3,"initial_quantity":10}`)
		case "/items/MLA123/description":
			writeUpstream(w, http.StatusOK, `{"plain_text":"Suena fuerte"}`)
		default:
			writeUpstream(w, http.StatusNotFound, `{"error":"not_found"}`)
		}
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/MLA123", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body ItemResponseDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	want := ItemDetailDTO{
		ItemSummaryDTO: ItemSummaryDTO{
			ID:           "MLA123",
			Title:        "Parlante",
			Price:        PriceDTO{Currency: "USD", Amount: 30, Decimals: 0},
			Picture:      "http://pic/123-1.jpg",
			Condition:    "used",
			FreeShipping: true,
		},
		SoldQuantity:    3,
		Description:     "Suena fuerte",
		InitialQuantity: 10,
	}
	if body.Item != want {
		t.Fatalf("Item got %+v, want %+v", body.Item, want)
	}
}

func TestStack_descriptionNotFoundFailsWholeRequest(t *testing.T) {
	t.Parallel()

	router := newStackRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/items/MLA123":
			writeUpstream(w, http.StatusOK, `{"id":"MLA123","title":"Parlante","currency_id":"USD","price":30,
			  "condition":"used","shipping":{"free_shipping":true},"pictures":[{"url":"http://pic/1.jpg"}]}`)
		default:
			writeUpstream(w, http.StatusNotFound, `{"error":"resource not found"}`)
		}
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/MLA123", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != `{"message":"resource not found"}` {
		t.Fatalf("body got %s", got)
	}
}

func TestStack_malformedUpstreamBodyIsBadGateway(t *testing.T) {
	t.Parallel()

	router := newStackRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeUpstream(w, http.StatusInternalServerError, `<html>oops</html>`)
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items?q=x", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
	}
}
