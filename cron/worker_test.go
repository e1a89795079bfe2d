package cron

import (
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldClearMirrorSkipsLiveHold(t *testing.T) {
	clear, err := shouldClearMirror(nil)
	require.NoError(t, err)
	assert.False(t, clear, "a live hold key means the TTL has not lapsed yet")
}

func TestShouldClearMirrorClearsExpiredHold(t *testing.T) {
	clear, err := shouldClearMirror(redis.Nil)
	require.NoError(t, err)
	assert.True(t, clear)
}

func TestShouldClearMirrorPropagatesRedisFailure(t *testing.T) {
	outage := errors.New("dial tcp: connection refused")
	clear, err := shouldClearMirror(outage)
	assert.False(t, clear)
	assert.ErrorIs(t, err, outage, "a transient outage must fail the task so it is retried")
}
