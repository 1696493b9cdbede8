package melifetcher

// DTO ответов API маркетплейса. Описаны только поля, которые реально читаются.

type meliSearchResponse struct {
	Query            string           `json:"query"`
	Results          []meliSearchItem `json:"results"`
	Filters          []meliFilter     `json:"filters"`
	AvailableFilters []meliFilter     `json:"available_filters"`
}

type meliSearchItem struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	CurrencyID string       `json:"currency_id"`
	Price      float64      `json:"price"`
	Thumbnail  string       `json:"thumbnail"`
	Condition  string       `json:"condition"`
	Shipping   meliShipping `json:"shipping"`
}

type meliShipping struct {
	FreeShipping bool `json:"free_shipping"`
}

type meliFilter struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Values []meliFilterValue `json:"values"`
}

type meliFilterValue struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	PathFromRoot []meliPathNode `json:"path_from_root"`
}

type meliPathNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type meliItemResponse struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	CurrencyID      string        `json:"currency_id"`
	Price           float64       `json:"price"`
	Thumbnail       string        `json:"thumbnail"`
	Condition       string        `json:"condition"`
	Shipping        meliShipping  `json:"shipping"`
	Pictures        []meliPicture `json:"pictures"`
	SoldQuantity    int           `json:"sold_quantity"`
	InitialQuantity int           `json:"initial_quantity"`
}

type meliPicture struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type meliDescriptionResponse struct {
	PlainText string `json:"plain_text"`
}

type meliErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}
