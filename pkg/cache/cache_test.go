package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/cache"
)

func TestSetGet(t *testing.T) {
	require.NoError(t, cache.Set("test.setget", "key", "value", 1*time.Minute))

	assert.Equal(t, "value", cache.Get("test.setget", "key"))
	assert.Nil(t, cache.Get("test.setget", "other"))
	assert.Nil(t, cache.Get("test.other", "key"))
}

func TestExpire(t *testing.T) {
	require.NoError(t, cache.Set("test.expire", "key", "value", 1*time.Millisecond))

	time.Sleep(5 * time.Millisecond)

	assert.Nil(t, cache.Get("test.expire", "key"))
}

func TestClear(t *testing.T) {
	require.NoError(t, cache.Set("test.clear", "key", "value", 1*time.Minute))
	require.NoError(t, cache.Clear("test.clear", "key"))

	assert.Nil(t, cache.Get("test.clear", "key"))
}

func TestStructKey(t *testing.T) {
	type key struct {
		Name   string
		Region string
	}

	require.NoError(t, cache.Set("test.struct", key{"a", "us-west-2"}, 42, 1*time.Minute))

	assert.Equal(t, 42, cache.Get("test.struct", key{"a", "us-west-2"}))
	assert.Nil(t, cache.Get("test.struct", key{"b", "us-west-2"}))
}
