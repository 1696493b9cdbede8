package domain

// Author - подпись автора, которая добавляется в каждый ответ.
type Author struct {
	Name     string
	Lastname string
}

// Price - цена товара с количеством знаков после запятой.
type Price struct {
	Currency string
	Amount   float64
	Decimals int
}

// ItemSummary - упрощенная карточка товара для списка результатов.
type ItemSummary struct {
	ID           string
	Title        string
	Price        Price
	Picture      string
	Condition    string
	FreeShipping bool
}

// ItemDetail - полная карточка товара.
type ItemDetail struct {
	ItemSummary
	SoldQuantity    int
	Description     string
	InitialQuantity int
}

// SearchResult - результат поиска, готовый к отдаче клиенту.
type SearchResult struct {
	Categories []string
	Items      []ItemSummary
}

// NewPrice собирает цену и сразу считает количество знаков после запятой.
func NewPrice(currency string, amount float64) Price {
	return Price{
		Currency: currency,
		Amount:   amount,
		Decimals: CountDecimals(amount),
	}
}

// ToSummary проецирует объявление маркетплейса в карточку для списка.
// В списке картинкой служит миниатюра (thumbnail).
func (l Listing) ToSummary() ItemSummary {
	return ItemSummary{
		ID:           l.ID,
		Title:        l.Title,
		Price:        NewPrice(l.CurrencyID, l.Price),
		Picture:      l.Thumbnail,
		Condition:    l.Condition,
		FreeShipping: l.FreeShipping,
	}
}
