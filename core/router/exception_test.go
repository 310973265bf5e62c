package router_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/matcher"
	"github.com/dmitrymomot/routekit/core/response"
	"github.com/dmitrymomot/routekit/core/router"
)

func failingRoute(err error) *router.Router {
	r := router.New()
	r.Get(matcher.Catchall(), func(ctx *handler.Context) (*response.Response, error) {
		return nil, err
	})
	return r
}

func TestExceptionHandlers(t *testing.T) {
	t.Parallel()

	t.Run("http_error_values_pass_through", func(t *testing.T) {
		t.Parallel()

		r := failingRoute(response.NewHTTPError(http.StatusTeapot, "short and stout"))

		resp := get(t, r, "/x")
		assert.Equal(t, http.StatusTeapot, resp.Status())
		assert.Equal(t, "Error 418: short and stout", string(resp.Body()))
	})

	t.Run("unknown_errors_fall_back_to_500", func(t *testing.T) {
		t.Parallel()

		r := failingRoute(errors.New("database is down"))

		resp := get(t, r, "/x")
		assert.Equal(t, http.StatusInternalServerError, resp.Status())
		assert.Equal(t, "Error 500: Internal Server Error", string(resp.Body()))
	})

	t.Run("sentinel_handler_matches_wrapped_errors", func(t *testing.T) {
		t.Parallel()

		errNoRows := errors.New("no rows")
		r := failingRoute(fmt.Errorf("lookup user: %w", errNoRows))
		r.ExceptionHandlerIs(errNoRows, func(err error) *response.HTTPError {
			e := response.ErrNotFound.WithError(err)
			return &e
		})

		assert.Equal(t, http.StatusNotFound, get(t, r, "/x").Status())
	})

	t.Run("exact_match_wins_over_earlier_instance_match", func(t *testing.T) {
		t.Parallel()

		errBase := errors.New("base")
		wrapped := fmt.Errorf("ctx: %w", errBase)

		r := failingRoute(wrapped)
		// Registered first, but only an instance match for the wrapped value.
		r.ExceptionHandlerIs(errBase, func(err error) *response.HTTPError {
			e := response.NewHTTPError(http.StatusConflict, "instance")
			return &e
		})
		// Registered second, but identity-equal to the returned error.
		r.ExceptionHandlerIs(wrapped, func(err error) *response.HTTPError {
			e := response.NewHTTPError(http.StatusGone, "exact")
			return &e
		})

		assert.Equal(t, http.StatusGone, get(t, r, "/x").Status())
	})

	t.Run("typed_handler_converts_custom_error_type", func(t *testing.T) {
		t.Parallel()

		r := failingRoute(fmt.Errorf("wrap: %w", &validationError{Field: "email"}))
		router.ExceptionHandlerAs(r, func(e *validationError) *response.HTTPError {
			he := response.ErrUnprocessableEntity.WithMessage("invalid " + e.Field)
			return &he
		})

		resp := get(t, r, "/x")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Status())
		assert.Equal(t, "Error 422: invalid email", string(resp.Body()))
	})

	t.Run("nil_fn_removes_registration", func(t *testing.T) {
		t.Parallel()

		errNoRows := errors.New("no rows")
		r := failingRoute(errNoRows)
		r.ExceptionHandlerIs(errNoRows, func(err error) *response.HTTPError {
			e := response.ErrNotFound
			return &e
		})
		r.ExceptionHandlerIs(errNoRows, nil)

		assert.Equal(t, http.StatusInternalServerError, get(t, r, "/x").Status())
	})

	t.Run("default_mappings_can_be_removed", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		router.ExceptionHandlerAs[response.HTTPError](r, nil)
		r.Get(matcher.Catchall(), func(ctx *handler.Context) (*response.Response, error) {
			return nil, response.ErrConflict
		})

		// Without the passthrough, an HTTPError is just an opaque error.
		assert.Equal(t, http.StatusInternalServerError, get(t, r, "/x").Status())
	})

	t.Run("declining_converter_continues_the_search", func(t *testing.T) {
		t.Parallel()

		errX := errors.New("x")
		r := failingRoute(errX)
		r.ExceptionHandlerIs(errX, func(err error) *response.HTTPError {
			return nil
		})
		r.ExceptionHandlerIs(errX, func(err error) *response.HTTPError {
			e := response.NewHTTPError(http.StatusBadGateway, "second")
			return &e
		})

		assert.Equal(t, http.StatusBadGateway, get(t, r, "/x").Status())
	})
}

type validationError struct {
	Field string
}

func (e *validationError) Error() string {
	return "validation failed: " + e.Field
}

func TestErrorResponseBuilders(t *testing.T) {
	t.Parallel()

	jsonBuilder := func(ctx *handler.Context) (*response.Response, error) {
		exc := ctx.Exception()
		return response.JSONWithStatus(map[string]string{"error": exc.Error()}, exc.StatusCode()), nil
	}

	t.Run("exact_pattern_beats_wildcards", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.AddErrorResponseBuilder("4xx", func(ctx *handler.Context) (*response.Response, error) {
			return response.StringWithStatus("wide", ctx.Exception().StatusCode()), nil
		})
		r.AddErrorResponseBuilder("40x", func(ctx *handler.Context) (*response.Response, error) {
			return response.StringWithStatus("tens", ctx.Exception().StatusCode()), nil
		})
		r.AddErrorResponseBuilder("404", func(ctx *handler.Context) (*response.Response, error) {
			return response.StringWithStatus("exact", ctx.Exception().StatusCode()), nil
		})

		resp := get(t, r, "/missing")
		assert.Equal(t, http.StatusNotFound, resp.Status())
		assert.Equal(t, "exact", string(resp.Body()))
	})

	t.Run("specificity_outranks_priority", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.AddErrorResponseBuilder("4xx", func(ctx *handler.Context) (*response.Response, error) {
			return response.StringWithStatus("wide", ctx.Exception().StatusCode()), nil
		}, router.WithPriority(router.PriorityHigh))
		r.AddErrorResponseBuilder("404", func(ctx *handler.Context) (*response.Response, error) {
			return response.StringWithStatus("exact", ctx.Exception().StatusCode()), nil
		}, router.WithPriority(router.PriorityLow))

		assert.Equal(t, "exact", string(get(t, r, "/missing").Body()))
	})

	t.Run("cascade_falls_back_through_wildcards_to_default", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.AddErrorResponseBuilder("default", jsonBuilder)

		resp := get(t, r, "/missing")
		assert.Equal(t, http.StatusNotFound, resp.Status())
		assert.JSONEq(t, `{"error":"Not Found"}`, string(resp.Body()))
	})

	t.Run("builder_exposes_exception_details", func(t *testing.T) {
		t.Parallel()

		r := failingRoute(response.ErrForbidden.WithMessage("members only"))
		r.AddErrorResponseBuilder("403", func(ctx *handler.Context) (*response.Response, error) {
			exc := ctx.Exception()
			require.NotNil(t, exc)
			return response.StringWithStatus(exc.Code+": "+exc.Error(), exc.StatusCode()), nil
		})

		resp := get(t, r, "/x")
		assert.Equal(t, "forbidden: members only", string(resp.Body()))
	})

	t.Run("scoped_builder_applies_to_matching_routes_only", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.AddErrorResponseBuilder("404", jsonBuilder, router.Scoped(matcher.Prefix("api/")))

		resp := get(t, r, "/api/missing")
		assert.JSONEq(t, `{"error":"Not Found"}`, string(resp.Body()))

		resp = get(t, r, "/web/missing")
		assert.Equal(t, "Error 404: Not Found", string(resp.Body()))
	})

	t.Run("nil_builder_response_defers_to_next_pattern", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.AddErrorResponseBuilder("404", func(ctx *handler.Context) (*response.Response, error) {
			return nil, nil
		})
		r.AddErrorResponseBuilder("4xx", func(ctx *handler.Context) (*response.Response, error) {
			return response.StringWithStatus("wide", ctx.Exception().StatusCode()), nil
		})

		assert.Equal(t, "wide", string(get(t, r, "/missing").Body()))
	})

	t.Run("failing_builder_is_skipped", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.AddErrorResponseBuilder("404", func(ctx *handler.Context) (*response.Response, error) {
			return nil, errors.New("template render failed")
		})
		r.AddErrorResponseBuilder("4xx", func(ctx *handler.Context) (*response.Response, error) {
			return response.StringWithStatus("wide", ctx.Exception().StatusCode()), nil
		})

		resp := get(t, r, "/missing")
		assert.Equal(t, http.StatusNotFound, resp.Status())
		assert.Equal(t, "wide", string(resp.Body()))
	})

	t.Run("panicking_builder_is_skipped", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.AddErrorResponseBuilder("404", func(ctx *handler.Context) (*response.Response, error) {
			panic("template blew up")
		})

		resp := get(t, r, "/missing")
		assert.Equal(t, http.StatusNotFound, resp.Status())
		assert.Equal(t, "Error 404: Not Found", string(resp.Body()))
	})

	t.Run("all_builders_declining_uses_plaintext_fallback", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.AddErrorResponseBuilder("default", func(ctx *handler.Context) (*response.Response, error) {
			return nil, nil
		})

		resp := get(t, r, "/missing")
		assert.Equal(t, http.StatusNotFound, resp.Status())
		assert.Equal(t, "Error 404: Not Found", string(resp.Body()))
		assert.True(t, resp.IsNeverCache())
	})
}
