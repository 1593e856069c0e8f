package antispam

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContainsLinks(t *testing.T) {
	assert.True(t, ContainsLinks("check https://example.com"))
	assert.True(t, ContainsLinks("check http://example.com"))
	assert.True(t, ContainsLinks("join t.me/spamchannel"))
	assert.True(t, ContainsLinks("ping @some_bot"))
	assert.False(t, ContainsLinks("just a normal message"))
	assert.False(t, ContainsLinks(""))
}

func TestIsFlood(t *testing.T) {
	now := time.Now()

	assert.True(t, IsFlood(now.Add(-time.Second), now, 2*time.Second))
	assert.False(t, IsFlood(now.Add(-3*time.Second), now, 2*time.Second))
	assert.False(t, IsFlood(time.Time{}, now, 2*time.Second))
}

func TestIsRepeatedText(t *testing.T) {
	history := []string{"hi", "hi", "hi", "something else"}

	assert.True(t, IsRepeatedText("hi", history))
	assert.True(t, IsRepeatedText("  HI  ", history))
	assert.False(t, IsRepeatedText("hi", []string{"hi", "hi"}))
	assert.False(t, IsRepeatedText("something else", history))
	assert.False(t, IsRepeatedText("", history))
	assert.False(t, IsRepeatedText("hi", nil))
}
