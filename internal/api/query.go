package api

import (
	"net/url"
	"strconv"
	"strings"
)

// CardQuery carries the catalog query parameters at the fetch boundary.
// Page is 1-based here: callers translate their internal zero-based page
// index when building the query. Empty fields are omitted from the request.
type CardQuery struct {
	Page     int
	Sort     string // column name; sent only when Order is also set
	Order    string // "asc" or "desc"
	Name     string
	Set      string
	Rarity   []string
	Color    []string
	Type     []string
	ManaCost *float64
}

// params encodes the query as URL parameters. Multi-valued filters are
// joined with commas.
func (q CardQuery) params() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))

	if q.Sort != "" && q.Order != "" {
		v.Set("sort", q.Sort)
		v.Set("order", q.Order)
	}

	if q.Name != "" {
		v.Set("name", q.Name)
	}
	if q.Set != "" {
		v.Set("set", q.Set)
	}
	if len(q.Rarity) > 0 {
		v.Set("rarity", strings.Join(q.Rarity, ","))
	}
	if len(q.Color) > 0 {
		v.Set("color", strings.Join(q.Color, ","))
	}
	if len(q.Type) > 0 {
		v.Set("type", strings.Join(q.Type, ","))
	}
	if q.ManaCost != nil {
		v.Set("cmc", strconv.FormatFloat(*q.ManaCost, 'f', -1, 64))
	}

	return v
}
