package antispam

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	RuleLinks    = "links"
	RuleFlood    = "flood"
	RuleRepeated = "repeated"

	defaultFloodWindow = 2 * time.Second
)

type CheckResult struct {
	IsSpam bool
	Rule   string
}

// Service runs the spam heuristics over an injected Store. It has no
// interaction with the identity core.
type Service struct {
	store Store
	// FloodWindow is the minimum spacing between two messages from one
	// sender before the flood rule fires.
	FloodWindow time.Duration
	*logrus.Logger
}

func NewService(store Store, logger *logrus.Logger) *Service {
	return &Service{store: store, FloodWindow: defaultFloodWindow, Logger: logger}
}

// CheckMessage applies the rules in order: links, flood, repeated text.
// Clean messages are remembered for the repeated-text rule.
func (s *Service) CheckMessage(ctx context.Context, senderID string, text string) (CheckResult, error) {
	if text == "" {
		return CheckResult{}, nil
	}

	if ContainsLinks(text) {
		return s.flag(senderID, RuleLinks), nil
	}

	now := time.Now()
	last, seen, err := s.store.Touch(ctx, senderID, now)
	if err != nil {
		return CheckResult{}, err
	}
	if seen && IsFlood(last, now, s.FloodWindow) {
		return s.flag(senderID, RuleFlood), nil
	}

	history, err := s.store.History(ctx, senderID)
	if err != nil {
		return CheckResult{}, err
	}
	if IsRepeatedText(text, history) {
		return s.flag(senderID, RuleRepeated), nil
	}

	if err := s.store.Remember(ctx, senderID, text); err != nil {
		return CheckResult{}, err
	}
	return CheckResult{}, nil
}

func (s *Service) flag(senderID string, rule string) CheckResult {
	s.Logger.Infof("spam detected from sender %s: rule=%s", senderID, rule)
	return CheckResult{IsSpam: true, Rule: rule}
}
