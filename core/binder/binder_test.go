package binder_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/binder"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	type searchRequest struct {
		Query    string   `query:"q"`
		Page     int      `query:"page"`
		Tags     []string `query:"tags"`
		Active   *bool    `query:"active"`
		Internal string   `query:"-"`
		Limit    int
	}

	t.Run("binds_tagged_fields", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/search?q=go&page=2&tags=a,b&tags=c&active=true&limit=10", nil)

		var got searchRequest
		require.NoError(t, binder.Query()(req, &got))

		assert.Equal(t, "go", got.Query)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
		require.NotNil(t, got.Active)
		assert.True(t, *got.Active)
		assert.Equal(t, 10, got.Limit) // untagged fields bind by lowercase name
		assert.Empty(t, got.Internal)
	})

	t.Run("missing_values_keep_zero_values", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/search", nil)

		var got searchRequest
		require.NoError(t, binder.Query()(req, &got))
		assert.Zero(t, got.Page)
		assert.Nil(t, got.Active)
	})

	t.Run("invalid_int_wraps_query_error", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/search?page=abc", nil)

		var got searchRequest
		err := binder.Query()(req, &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})

	t.Run("rejects_non_pointer_target", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/search", nil)

		var got searchRequest
		err := binder.Query()(req, got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	type profileForm struct {
		Name  string `form:"name"`
		Age   int    `form:"age"`
		Admin bool   `form:"admin"`
	}

	t.Run("binds_urlencoded_body", func(t *testing.T) {
		t.Parallel()

		body := url.Values{"name": {"alice"}, "age": {"30"}, "admin": {"on"}}
		req := httptest.NewRequest("POST", "/profile", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got profileForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "alice", got.Name)
		assert.Equal(t, 30, got.Age)
		assert.True(t, got.Admin)
	})

	t.Run("missing_content_type_fails", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/profile", strings.NewReader("name=x"))

		var got profileForm
		err := binder.Form()(req, &got)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("unsupported_media_type_fails", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/profile", strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		var got profileForm
		err := binder.Form()(req, &got)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid_field_wraps_form_error", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/profile", strings.NewReader("age=abc"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got profileForm
		err := binder.Form()(req, &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})
}
