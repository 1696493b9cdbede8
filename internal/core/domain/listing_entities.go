package domain

// Сущности, полученные от API маркетплейса (до проекции в ответ клиенту).

// PathNode - один узел "хлебных крошек" категории (path_from_root).
type PathNode struct {
	ID   string
	Name string
}

// FilterValue - значение фильтра поиска.
type FilterValue struct {
	ID           string
	Name         string
	PathFromRoot []PathNode
}

// Filter - фильтр из блоков filters / available_filters.
type Filter struct {
	ID     string
	Name   string
	Values []FilterValue
}

// Listing - объявление в том виде, в котором его отдает маркетплейс.
type Listing struct {
	ID              string
	Title           string
	CurrencyID      string
	Price           float64
	Thumbnail       string
	Condition       string
	FreeShipping    bool
	Pictures        []string
	SoldQuantity    int
	InitialQuantity int
}

// SearchPage - результат поиска по сайту.
type SearchPage struct {
	Results          []Listing
	Filters          []Filter
	AvailableFilters []Filter
}
