package dto

import "strings"

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SortOptions is the per-entity sort allow-list and its fallback.
type SortOptions struct {
	Allowed      []string
	DefaultField string
	DefaultOrder string
}

var (
	RocketSort = SortOptions{
		Allowed:      []string{"name", "manufacturer", "country", "rocket_type", "status"},
		DefaultField: "name",
		DefaultOrder: OrderAsc,
	}
	CosmodromeSort = SortOptions{
		Allowed:      []string{"name", "country", "location", "founded_year", "is_active"},
		DefaultField: "name",
		DefaultOrder: OrderAsc,
	}
	LaunchSort = SortOptions{
		Allowed:      []string{"mission_name", "rocket__name", "cosmodrome__name", "launch_date", "status"},
		DefaultField: "launch_date",
		DefaultOrder: OrderDesc,
	}
)

// ListQuery carries ?sort=&order= from a list page.
type ListQuery struct {
	Sort  string `form:"sort"`
	Order string `form:"order"`
}

// Resolve never fails: a sort field outside the allow-list falls back to the
// entity default field and direction. A missing order takes the entity
// default direction, any order other than desc is ascending.
func (q ListQuery) Resolve(opts SortOptions) (field, order string) {
	field = strings.TrimSpace(q.Sort)
	if !contains(opts.Allowed, field) {
		return opts.DefaultField, opts.DefaultOrder
	}
	switch strings.TrimSpace(q.Order) {
	case OrderDesc:
		return field, OrderDesc
	case "":
		return field, opts.DefaultOrder
	default:
		return field, OrderAsc
	}
}

// SearchQuery is the global search box.
type SearchQuery struct {
	Query string `form:"query"`
}

const maxSearchQueryLength = 200

// Normalized trims the query and caps it at the search box length.
func (q SearchQuery) Normalized() string {
	s := strings.TrimSpace(q.Query)
	if r := []rune(s); len(r) > maxSearchQueryLength {
		s = string(r[:maxSearchQueryLength])
	}
	return s
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
