package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) *xminds.Value {
	t.Helper()

	value, err := xminds.ParseJSON([]byte(doc))
	require.NoError(t, err)

	return value
}

func TestRenderValue_YAMLKeepsKeyOrder(t *testing.T) {
	t.Parallel()

	value := mustParse(t, `{"zeta": 1, "alpha": {"id": "007", "ok": true, "none": null}, "list": [1.5, "x"]}`)

	var buf bytes.Buffer

	require.NoError(t, renderValue(&buf, constants.FormatYAML, value))

	assert.Equal(t, `zeta: 1
alpha:
  id: "007"
  ok: true
  none: null
list:
  - 1.5
  - x
`, buf.String())
}

func TestRenderValue_JSON(t *testing.T) {
	t.Parallel()

	value := mustParse(t, `{"b": 2, "a": [1]}`)

	var buf bytes.Buffer

	require.NoError(t, renderValue(&buf, constants.FormatJSON, value))
	assert.Equal(t, "{\n  \"b\": 2,\n  \"a\": [\n    1\n  ]\n}\n", buf.String())
}

func TestRenderValue_Table(t *testing.T) {
	t.Parallel()

	t.Run("list response prints one row per element", func(t *testing.T) {
		t.Parallel()

		value := mustParse(t, `{"items": [{"item_id": "i1", "price": 10}, {"item_id": "i2", "tags": ["new"]}], "next_cursor": "c2"}`)

		var buf bytes.Buffer

		require.NoError(t, renderValue(&buf, constants.FormatTable, value))

		out := buf.String()
		assert.Contains(t, out, "i1")
		assert.Contains(t, out, "i2")
		assert.Contains(t, out, `["new"]`)
		assert.NotContains(t, out, "c2")
		assert.Less(t, strings.Index(out, "i1"), strings.Index(out, "i2"))
	})

	t.Run("object prints property rows", func(t *testing.T) {
		t.Parallel()

		value := mustParse(t, `{"id": "db-1", "counters": {"rating": 3}}`)

		var buf bytes.Buffer

		require.NoError(t, renderValue(&buf, constants.FormatTable, value))
		assert.Contains(t, buf.String(), "db-1")
		assert.Contains(t, buf.String(), `{"rating":3}`)
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", preview("short"))
	assert.Equal(t, "eyJhbGciOiJI...", preview("eyJhbGciOiJIUzI1NiJ9.payload.signature"))
}
