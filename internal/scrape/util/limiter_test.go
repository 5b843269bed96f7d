package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter_DisabledIsNil(t *testing.T) {
	hl := NewHostLimiter(0, 5)
	assert.Nil(t, hl)
	require.NoError(t, hl.WaitURL(context.Background(), "https://foo.com"))
}

func TestHostLimiter_PerHostBuckets(t *testing.T) {
	hl := NewHostLimiter(1, 1)
	ctx := context.Background()

	require.NoError(t, hl.WaitURL(ctx, "https://a.com/x"))
	// Different host has its own burst, so it must not wait.
	start := time.Now()
	require.NoError(t, hl.WaitURL(ctx, "https://b.com/y"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestHostLimiter_HonorsContext(t *testing.T) {
	hl := NewHostLimiter(0.01, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, hl.WaitURL(ctx, "https://a.com"))
	assert.Error(t, hl.WaitURL(ctx, "https://a.com"))
}
