package turso

import (
	"net/url"
	"strconv"
)

// ListParams expresses the query options accepted by listing endpoints.
// Only fields that are actually set end up on the wire; absent values are
// never sent as empty parameters.
type ListParams struct {
	// Cursor is the opaque continuation token for paginated listings.
	Cursor string

	// PageSize bounds the number of items per page.
	PageSize int

	// Group restricts database listings to one group.
	Group string

	// Filters holds additional flat key-value parameters.
	Filters map[string]string
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: make(map[string]string),
	}
}

// WithCursor sets the continuation token.
func (p *ListParams) WithCursor(cursor string) *ListParams {
	p.Cursor = cursor

	return p
}

// WithPageSize sets the page size.
func (p *ListParams) WithPageSize(size int) *ListParams {
	p.PageSize = size

	return p
}

// WithGroup restricts the listing to a group.
func (p *ListParams) WithGroup(group string) *ListParams {
	p.Group = group

	return p
}

// WithFilter sets an arbitrary flat filter parameter, replacing any
// previous value for the same key.
func (p *ListParams) WithFilter(key, value string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string]string)
	}

	p.Filters[key] = value

	return p
}

// ToValues converts the params to url.Values, including only non-absent
// values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Cursor != "" {
		values.Set("cursor", p.Cursor)
	}

	if p.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(p.PageSize))
	}

	if p.Group != "" {
		values.Set("group", p.Group)
	}

	for key, value := range p.Filters {
		if value != "" {
			values.Set(key, value)
		}
	}

	return values
}
