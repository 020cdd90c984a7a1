package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Canned concierge replies, matching the storefront's simulated assistant.
var defaultReplies = []string{
	"Thanks for reaching out! A stylist will be with you shortly.",
	"Great choice! That style has been very popular this season.",
	"We restock most sizes every Friday, keep an eye out!",
	"You can track any order from the Orders page once you are signed in.",
	"Happy to help! Could you tell me a bit more about what you are looking for?",
}

const (
	defaultChatMinDelay = 600 * time.Millisecond
	defaultChatMaxDelay = 1600 * time.Millisecond
)

// ChatService simulates the storefront's chat assistant: a randomly picked
// canned reply delivered after an artificial delay. Both the picker and the
// delay are injectable so tests stay deterministic and instant.
type ChatService struct {
	replies []string
	pick    func(n int) int
	delay   func() time.Duration
	log     zerolog.Logger
}

func NewChat(log zerolog.Logger) *ChatService {
	return &ChatService{
		replies: defaultReplies,
		pick:    rand.Intn,
		delay: func() time.Duration {
			spread := defaultChatMaxDelay - defaultChatMinDelay
			return defaultChatMinDelay + time.Duration(rand.Int63n(int64(spread)))
		},
		log: log,
	}
}

// WithReplies overrides the canned reply set.
func (c *ChatService) WithReplies(replies []string) *ChatService {
	if len(replies) > 0 {
		c.replies = replies
	}
	return c
}

// WithPicker overrides the random selection, for tests.
func (c *ChatService) WithPicker(pick func(n int) int) *ChatService {
	c.pick = pick
	return c
}

// WithDelay overrides the simulated typing delay, for tests.
func (c *ChatService) WithDelay(delay func() time.Duration) *ChatService {
	c.delay = delay
	return c
}

// Reply waits the simulated delay and returns a canned response. The wait
// is cancellable through ctx.
func (c *ChatService) Reply(ctx context.Context, message string) (string, error) {
	d := c.delay()
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	reply := c.replies[c.pick(len(c.replies))]
	c.log.Debug().Int("message_len", len(message)).Dur("delay", d).Msg("chat reply served")
	return reply, nil
}

// ReplyAsync delivers a reply on its own goroutine. The timer completes
// even if the owning view went away, so alive is checked before deliver:
// stale completions are dropped instead of mutating dead state.
func (c *ChatService) ReplyAsync(ctx context.Context, message string, alive func() bool, deliver func(string)) {
	go func() {
		reply, err := c.Reply(ctx, message)
		if err != nil {
			return
		}
		if alive != nil && !alive() {
			c.log.Debug().Msg("dropping chat reply for a closed view")
			return
		}
		deliver(reply)
	}()
}
