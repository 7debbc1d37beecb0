package shared

// FilterAll is the categorical filter value that matches every record.
const FilterAll = "all"

// MatchCategory reports whether value passes a categorical filter. An empty
// filter behaves like FilterAll, so a zero Filters value and an empty query
// parameter both mean "no filter".
func MatchCategory(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// IsAll reports whether a categorical filter is inactive.
func IsAll(filter string) bool {
	return filter == "" || filter == FilterAll
}

// Merge returns patch when set, otherwise current.
func Merge(current string, patch *string) string {
	if patch == nil {
		return current
	}
	return *patch
}
