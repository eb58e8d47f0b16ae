package xminds_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_NestedObjects(t *testing.T) {
	t.Parallel()

	value, err := xminds.ParseJSON([]byte(`{"id":"123","nested":{"x":1,"deeper":{"flag":true}},"tags":["a","b"],"none":null}`))
	require.NoError(t, err)

	id, err := value.Field("id")
	require.NoError(t, err)

	s, err := id.Str()
	require.NoError(t, err)
	assert.Equal(t, "123", s)

	x, err := value.Path("nested", "x")
	require.NoError(t, err)

	n, err := x.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	flag, err := value.Path("nested", "deeper", "flag")
	require.NoError(t, err)

	b, err := flag.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	tags, err := value.Field("tags")
	require.NoError(t, err)
	assert.Equal(t, xminds.KindArray, tags.Kind())
	assert.Equal(t, 2, tags.Len())

	second, err := tags.Index(1)
	require.NoError(t, err)

	s, err = second.Str()
	require.NoError(t, err)
	assert.Equal(t, "b", s)

	none, err := value.Field("none")
	require.NoError(t, err)
	assert.True(t, none.IsNull())

	assert.Equal(t, []string{"id", "nested", "tags", "none"}, value.Keys())
}

func TestValue_FieldErrors(t *testing.T) {
	t.Parallel()

	value, err := xminds.ParseJSON([]byte(`{"id":"123","list":[1]}`))
	require.NoError(t, err)

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()

		_, err := value.Field("missing")
		require.ErrorIs(t, err, xminds.ErrFieldNotFound)

		var fieldErr *xminds.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "missing", fieldErr.Field)
	})

	t.Run("field on a scalar", func(t *testing.T) {
		t.Parallel()

		_, err := value.Path("id", "x")
		require.ErrorIs(t, err, xminds.ErrNotObject)
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()

		list, err := value.Field("list")
		require.NoError(t, err)

		_, err = list.Index(3)
		require.ErrorIs(t, err, xminds.ErrIndexOutOfRange)
	})

	t.Run("wrong kind", func(t *testing.T) {
		t.Parallel()

		id, err := value.Field("id")
		require.NoError(t, err)

		_, err = id.Int64()
		require.ErrorIs(t, err, xminds.ErrWrongKind)
	})
}

func TestParseJSON_Invalid(t *testing.T) {
	t.Parallel()

	_, err := xminds.ParseJSON([]byte(`{"id":`))
	require.Error(t, err)

	_, err = xminds.ParseJSON([]byte(`{"id":1} {"id":2}`))
	require.ErrorIs(t, err, xminds.ErrTrailingData)
}

func TestValue_MarshalJSONPreservesOrder(t *testing.T) {
	t.Parallel()

	input := `{"z":1,"a":{"y":[true,null,"s"],"b":2.50}}`

	value, err := xminds.ParseJSON([]byte(input))
	require.NoError(t, err)

	data, err := json.Marshal(value)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))
}

func TestValue_Decode(t *testing.T) {
	t.Parallel()

	value, err := xminds.ParseJSON([]byte(`{"item":{"id":"42","price":9.5}}`))
	require.NoError(t, err)

	var result struct {
		Item struct {
			ID    string  `json:"id"`
			Price float64 `json:"price"`
		} `json:"item"`
	}

	require.NoError(t, value.Decode(&result))
	assert.Equal(t, "42", result.Item.ID)
	assert.InDelta(t, 9.5, result.Item.Price, 0.0001)
}

func TestParseResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantKeys    []string
		wantErr     bool
	}{
		{
			name:     "no content",
			status:   http.StatusNoContent,
			wantKeys: []string{},
		},
		{
			name:        "json object",
			status:      http.StatusOK,
			contentType: "application/json; charset=utf-8",
			body:        `{"id":"1"}`,
			wantKeys:    []string{"id"},
		},
		{
			name:        "empty json body",
			status:      http.StatusCreated,
			contentType: "application/json",
			wantKeys:    []string{},
		},
		{
			name:        "plain text",
			status:      http.StatusOK,
			contentType: "text/plain",
			body:        "hello",
			wantKeys:    []string{xminds.RawBodyField},
		},
		{
			name:        "error status",
			status:      http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"error_name":"WrongData"}`,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := xminds.ParseResponse(tt.status, tt.contentType, []byte(tt.body))
			if tt.wantErr {
				var apiErr *xminds.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.status, apiErr.StatusCode)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, xminds.KindObject, value.Kind())
			assert.ElementsMatch(t, tt.wantKeys, value.Keys())
		})
	}
}

func TestParseResponse_PlainTextBody(t *testing.T) {
	t.Parallel()

	value, err := xminds.ParseResponse(http.StatusOK, "text/html", []byte("<p>ok</p>"))
	require.NoError(t, err)

	body, err := value.Field(xminds.RawBodyField)
	require.NoError(t, err)

	s, err := body.Str()
	require.NoError(t, err)
	assert.Equal(t, "<p>ok</p>", s)
}
