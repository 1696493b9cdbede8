package domain

// CategoryFilterID - идентификатор фильтра, из которого берутся категории.
const CategoryFilterID = "category"

// ResolveCategories выбирает источник категорий: filters, если он не пуст,
// иначе available_filters.
func ResolveCategories(page SearchPage) []string {
	if len(page.Filters) != 0 {
		return ExtractCategories(page.Filters)
	}
	return ExtractCategories(page.AvailableFilters)
}

// ExtractCategories разворачивает фильтр "category" в плоский список имен.
// Если у значения есть path_from_root (даже пустой), берутся все узлы пути
// по порядку, иначе - имя самого значения. Дубликаты не удаляются.
func ExtractCategories(filters []Filter) []string {
	categories := make([]string, 0)

	var categoryFilter *Filter
	for i := range filters {
		if filters[i].ID == CategoryFilterID {
			categoryFilter = &filters[i]
			break
		}
	}
	if categoryFilter == nil {
		return categories
	}

	for _, value := range categoryFilter.Values {
		if value.PathFromRoot == nil {
			categories = append(categories, value.Name)
			continue
		}
		for _, node := range value.PathFromRoot {
			categories = append(categories, node.Name)
		}
	}

	return categories
}
