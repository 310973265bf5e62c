package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/binder"
)

func TestRegistryConvert(t *testing.T) {
	t.Parallel()

	t.Run("int_accepts_canonical_forms_only", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()

		v, err := reg.Convert("123", "int")
		require.NoError(t, err)
		assert.Equal(t, 123, v)

		v, err = reg.Convert("-5", "int")
		require.NoError(t, err)
		assert.Equal(t, -5, v)

		for _, raw := range []string{"123abc", "01", "+1", "1.0", "", " 1", "-0"} {
			_, err := reg.Convert(raw, "int")
			assert.ErrorIs(t, err, binder.ErrFailedToBindParam, "raw=%q", raw)
		}
	})

	t.Run("float_accepts_numeric_strings", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()

		v, err := reg.Convert("1.5", "float")
		require.NoError(t, err)
		assert.Equal(t, 1.5, v)

		v, err = reg.Convert("2", "float")
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)

		_, err = reg.Convert("abc", "float")
		assert.ErrorIs(t, err, binder.ErrFailedToBindParam)
	})

	t.Run("bool_accepts_common_forms", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()

		for _, raw := range []string{"1", "true", "YES", "On"} {
			v, err := reg.Convert(raw, "bool")
			require.NoError(t, err, "raw=%q", raw)
			assert.Equal(t, true, v, "raw=%q", raw)
		}
		for _, raw := range []string{"0", "false", "NO", "Off"} {
			v, err := reg.Convert(raw, "bool")
			require.NoError(t, err, "raw=%q", raw)
			assert.Equal(t, false, v, "raw=%q", raw)
		}

		_, err := reg.Convert("maybe", "bool")
		assert.ErrorIs(t, err, binder.ErrFailedToBindParam)
	})

	t.Run("empty_type_list_passes_raw_string", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		v, err := reg.Convert("anything at all")
		require.NoError(t, err)
		assert.Equal(t, "anything at all", v)
	})

	t.Run("first_successful_type_wins", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()

		v, err := reg.Convert("42", "int", "string")
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		v, err = reg.Convert("42x", "int", "string")
		require.NoError(t, err)
		assert.Equal(t, "42x", v)
	})

	t.Run("unknown_types_are_skipped", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()

		v, err := reg.Convert("7", "uuid", "int")
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		_, err = reg.Convert("7", "uuid")
		assert.ErrorIs(t, err, binder.ErrFailedToBindParam)
	})

	t.Run("custom_handler_registration", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		reg.Register("csv", func(raw string) (any, bool) {
			return []string{raw}, true
		})

		v, err := reg.Convert("a", "csv")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, v)
	})

	t.Run("builtins_can_be_removed", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		reg.Register("int", nil)

		_, err := reg.Convert("123", "int")
		assert.ErrorIs(t, err, binder.ErrFailedToBindParam)
	})

	t.Run("builtins_can_be_overridden", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		reg.Register("int", func(raw string) (any, bool) {
			return 0, true
		})

		v, err := reg.Convert("999", "int")
		require.NoError(t, err)
		assert.Equal(t, 0, v)
	})
}
