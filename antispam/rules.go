package antispam

import (
	"regexp"
	"strings"
	"time"
)

var linkPattern = regexp.MustCompile(`(https?://|t\.me/|@[\w_]+)`)

// ContainsLinks reports whether the text carries a URL, a t.me invite or
// an @mention.
func ContainsLinks(text string) bool {
	if text == "" {
		return false
	}
	return linkPattern.MatchString(text)
}

// IsFlood reports whether two messages from one sender landed closer than
// the flood window allows.
func IsFlood(last time.Time, now time.Time, window time.Duration) bool {
	if last.IsZero() {
		return false
	}
	return now.Sub(last) < window
}

// IsRepeatedText reports whether the text already appears more than twice
// in the sender's recent history.
func IsRepeatedText(text string, history []string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" || len(history) < 1 {
		return false
	}

	duplicates := 0
	for _, previous := range history {
		if strings.ToLower(previous) == text {
			duplicates++
		}
	}
	return duplicates > 2
}
