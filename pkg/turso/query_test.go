package turso_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalis/turso/pkg/turso"
)

func TestListParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *turso.ListParams
		expected url.Values
	}{
		{
			name:     "empty params",
			params:   turso.NewListParams(),
			expected: url.Values{},
		},
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
		{
			name: "with pagination",
			params: &turso.ListParams{
				Cursor:   "abc123",
				PageSize: 50,
			},
			expected: url.Values{
				"cursor":    []string{"abc123"},
				"page_size": []string{"50"},
			},
		},
		{
			name: "with group filter",
			params: &turso.ListParams{
				Group: "default",
			},
			expected: url.Values{
				"group": []string{"default"},
			},
		},
		{
			name: "absent values stay off the wire",
			params: &turso.ListParams{
				PageSize: 0,
				Filters:  map[string]string{"schema": ""},
			},
			expected: url.Values{},
		},
		{
			name: "with everything",
			params: &turso.ListParams{
				Cursor:   "tok",
				PageSize: 25,
				Group:    "prod",
				Filters:  map[string]string{"type": "schema"},
			},
			expected: url.Values{
				"cursor":    []string{"tok"},
				"page_size": []string{"25"},
				"group":     []string{"prod"},
				"type":      []string{"schema"},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.params.ToValues())
		})
	}
}

func TestListParams_Builders(t *testing.T) {
	t.Parallel()

	params := turso.NewListParams().
		WithCursor("tok").
		WithPageSize(100).
		WithGroup("prod").
		WithFilter("type", "schema").
		WithFilter("type", "regular")

	values := params.ToValues()

	assert.Equal(t, "tok", values.Get("cursor"))
	assert.Equal(t, "100", values.Get("page_size"))
	assert.Equal(t, "prod", values.Get("group"))
	assert.Equal(t, "regular", values.Get("type"), "WithFilter replaces")
}
