package antispam

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(window time.Duration) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	service := NewService(NewMemoryStore(10), log)
	service.FloodWindow = window
	return service
}

func TestCheckMessageFlagsLinks(t *testing.T) {
	service := newTestService(0)

	result, err := service.CheckMessage(context.Background(), "100", "visit t.me/spam")
	require.NoError(t, err)
	assert.True(t, result.IsSpam)
	assert.Equal(t, RuleLinks, result.Rule)
}

func TestCheckMessageFlagsFlood(t *testing.T) {
	service := newTestService(2 * time.Second)
	ctx := context.Background()

	first, err := service.CheckMessage(ctx, "100", "hello")
	require.NoError(t, err)
	assert.False(t, first.IsSpam)

	second, err := service.CheckMessage(ctx, "100", "hello again")
	require.NoError(t, err)
	assert.True(t, second.IsSpam)
	assert.Equal(t, RuleFlood, second.Rule)
}

func TestCheckMessageFloodIsPerSender(t *testing.T) {
	service := newTestService(2 * time.Second)
	ctx := context.Background()

	_, err := service.CheckMessage(ctx, "100", "hello")
	require.NoError(t, err)

	other, err := service.CheckMessage(ctx, "200", "hello")
	require.NoError(t, err)
	assert.False(t, other.IsSpam)
}

func TestCheckMessageFlagsRepeatedText(t *testing.T) {
	service := newTestService(0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := service.CheckMessage(ctx, "100", "same thing")
		require.NoError(t, err)
		assert.False(t, result.IsSpam)
	}

	result, err := service.CheckMessage(ctx, "100", "same thing")
	require.NoError(t, err)
	assert.True(t, result.IsSpam)
	assert.Equal(t, RuleRepeated, result.Rule)
}

func TestCheckMessageEmptyTextIsClean(t *testing.T) {
	service := newTestService(2 * time.Second)

	result, err := service.CheckMessage(context.Background(), "100", "")
	require.NoError(t, err)
	assert.False(t, result.IsSpam)
}

func TestMemoryStoreBoundsHistory(t *testing.T) {
	store := NewMemoryStore(3)
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, store.Remember(ctx, "100", text))
	}

	history, err := store.History(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d", "e"}, history)
}

func TestMemoryStoreTouch(t *testing.T) {
	store := NewMemoryStore(10)
	ctx := context.Background()
	now := time.Now()

	_, seen, err := store.Touch(ctx, "100", now)
	require.NoError(t, err)
	assert.False(t, seen)

	last, seen, err := store.Touch(ctx, "100", now.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, seen)
	assert.Equal(t, now, last)
}

func TestMemoryStoreIsolatesSenders(t *testing.T) {
	store := NewMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, store.Remember(ctx, "100", "hello"))

	history, err := store.History(ctx, "200")
	require.NoError(t, err)
	assert.Empty(t, history)
}
