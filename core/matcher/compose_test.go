package matcher_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/matcher"
)

func TestWith(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)

	t.Run("base_matcher_is_never_mutated", func(t *testing.T) {
		t.Parallel()

		base := matcher.Prefix("api/")
		a := base.With(matcher.Exact("users"))
		b := base.With(matcher.Exact("posts"))

		// Both compositions work independently.
		require.NotNil(t, a.Match("api/users", req))
		assert.Nil(t, a.Match("api/posts", req))
		require.NotNil(t, b.Match("api/posts", req))
		assert.Nil(t, b.Match("api/users", req))

		// The base still matches without any child constraint.
		require.NotNil(t, base.Match("api/anything", req))
	})

	t.Run("with_threads_through_composable_chain", func(t *testing.T) {
		t.Parallel()

		// Attaching to a matcher whose child is composable descends to the
		// deepest composable point instead of replacing the child.
		chain := matcher.Prefix("api/").With(matcher.Prefix("v1/"))
		full := chain.With(matcher.Pattern("users/:id"))

		got := full.Match("api/v1/users/9", req)
		require.NotNil(t, got)
		assert.Equal(t, "9", got.Params["id"])
		assert.Equal(t, "v1/users/9", got.Params["prefix_remainder"])

		// The intermediate chain is reusable as well.
		other := chain.With(matcher.Exact("health"))
		require.NotNil(t, other.Match("api/v1/health", req))
		assert.Nil(t, other.Match("api/v1/users/9", req))
	})

	t.Run("non_composable_child_is_replaced", func(t *testing.T) {
		t.Parallel()

		m := matcher.Prefix("api/").With(matcher.Exact("old"))
		m = m.With(matcher.Exact("new"))

		require.NotNil(t, m.Match("api/new", req))
		assert.Nil(t, m.Match("api/old", req))
	})

	t.Run("mixed_composition_merges_all_params", func(t *testing.T) {
		t.Parallel()

		m := matcher.Prefix("files/").
			With(matcher.Suffix(".json").With(matcher.Pattern(":name")))

		got := m.Match("files/report.json", req)
		require.NotNil(t, got)
		assert.Equal(t, "report", got.Params["name"])
		assert.Equal(t, "report", got.Params["suffix_base"])
		assert.Equal(t, "report.json", got.Params["prefix_remainder"])
	})
}
