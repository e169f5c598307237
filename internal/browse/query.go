package browse

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// SearchParams is a browse request: free text, sort, page and the filter selection.
type SearchParams struct {
	Q       string `schema:"q"`
	Sort    string `schema:"sort"`
	Page    int    `schema:"page"`
	Instant bool   `schema:"instant"`

	Filters FilterState `schema:"-"`
}

// ParseSearchParams decodes browse query parameters. Filter keys are read through
// ParseQuery; `instant=1` switches the instant-availability filter on.
func ParseSearchParams(values url.Values) (SearchParams, error) {
	var p SearchParams
	if err := queryDecoder.Decode(&p, values); err != nil {
		return SearchParams{}, err
	}
	if p.Page < 0 {
		p.Page = 0
	}
	p.Q = strings.TrimSpace(p.Q)
	p.Filters = ParseQuery(values)
	if p.Instant {
		if err := p.Filters.Set(KeyIsInstantAvailable, Bool(true)); err != nil {
			return SearchParams{}, err
		}
	}
	return p, nil
}

// ParseQuery builds a filter state from query parameters on top of DefaultFilters,
// so every key keeps its default shape. List keys take repeated parameters
// (gender=men&gender=women). Unknown keys are ignored.
func ParseQuery(values url.Values) FilterState {
	f := DefaultFilters()
	for _, e := range defaultOrder {
		raw, ok := values[e.key]
		if !ok {
			continue
		}
		switch e.kind {
		case KindList:
			items := make([]string, 0, len(raw))
			for _, r := range raw {
				if r = strings.TrimSpace(r); r != "" {
					items = append(items, r)
				}
			}
			f.values[e.key] = List(items...)
		case KindBool:
			b, _ := strconv.ParseBool(strings.TrimSpace(first(raw)))
			f.values[e.key] = Bool(b)
		default:
			f.values[e.key] = String(strings.TrimSpace(first(raw)))
		}
	}
	return f
}

func first(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}
