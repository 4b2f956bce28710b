//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errs.New("sentinel")

func TestMark(t *testing.T) {
	t.Run("marked error matches both the cause and the mark", func(t *testing.T) {
		cause := errors.New("low level")
		marked := errs.Mark(cause, errSentinel)

		assert.True(t, errs.Is(marked, errSentinel))
		assert.True(t, errs.Is(marked, cause))
		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("marks are invisible to the standard library", func(t *testing.T) {
		marked := errs.Mark(errors.New("low level"), errSentinel)
		assert.False(t, errors.Is(marked, errSentinel))
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))
	assert.Nil(t, errs.Wrapf(nil, "ignored %d", 1))

	wrapped := errs.Wrapf(errSentinel, "loading sku %s", "SKU-1")
	assert.ErrorIs(t, wrapped, errSentinel)
	assert.Contains(t, wrapped.Error(), "loading sku SKU-1")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
