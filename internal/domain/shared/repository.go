package shared

// Filter carries list query options. A zero Page or PageSize disables
// pagination; repositories fall back to their default ordering when
// OrderBy is empty.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// NewFilter returns an empty filter with the extension map initialized
func NewFilter() Filter {
	return Filter{
		Filters: make(map[string]interface{}),
	}
}

// DefaultFilter returns the standard first page of results
func DefaultFilter() Filter {
	f := NewFilter()
	f.Page = 1
	f.PageSize = 20
	return f
}
