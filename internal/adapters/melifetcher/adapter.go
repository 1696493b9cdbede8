package melifetcher

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// Config - параметры подключения к API маркетплейса
type Config struct {
	BaseURL string        // например, "https://api.mercadolibre.com"
	SiteID  string        // например, "MLA"
	Timeout time.Duration // таймаут одного HTTP-запроса, 0 - без таймаута
}

// MeliFetcherAdapter отвечает за все взаимодействия с API маркетплейса
type MeliFetcherAdapter struct {
	// родительский коллектор, на каждый запрос создается клон
	collector *colly.Collector
	baseURL   string
	siteID    string
}

// NewMeliFetcherAdapter - конструктор
func NewMeliFetcherAdapter(cfg Config) (*MeliFetcherAdapter, error) {
	if cfg.SiteID == "" {
		return nil, fmt.Errorf("MeliFetcherAdapter: site id is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("MeliFetcherAdapter: invalid base URL %q", cfg.BaseURL)
	}

	// Один и тот же товар можно запрашивать сколько угодно раз
	c := colly.NewCollector(colly.AllowURLRevisit())

	if cfg.Timeout > 0 {
		c.SetRequestTimeout(cfg.Timeout)
	}

	return &MeliFetcherAdapter{
		collector: c,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		siteID:    cfg.SiteID,
	}, nil
}

func (a *MeliFetcherAdapter) searchURL(query string) string {
	q := url.Values{}
	q.Set("q", query)
	return fmt.Sprintf("%s/sites/%s/search?%s", a.baseURL, url.PathEscape(a.siteID), q.Encode())
}

func (a *MeliFetcherAdapter) itemURL(itemID string) string {
	return fmt.Sprintf("%s/items/%s", a.baseURL, url.PathEscape(itemID))
}

func (a *MeliFetcherAdapter) itemDescriptionURL(itemID string) string {
	return a.itemURL(itemID) + "/description"
}
