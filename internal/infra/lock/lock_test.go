//go:build unit

package lock_test

import (
	"context"
	"testing"

	"storefront/internal/infra/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLock(t *testing.T) {
	ctx := context.Background()
	l := lock.NewLocalLock()

	release, ok, err := l.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	release()
	release()

	again, ok, err := l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	again()
}
