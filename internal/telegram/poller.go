package telegram

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tubebrief/tubebrief/internal/bot"
	"github.com/tubebrief/tubebrief/internal/logger"
)

// retryDelay spaces out getUpdates retries after a transport error so
// a dead network does not spin the loop.
const retryDelay = 3 * time.Second

// Poller runs the long-poll loop and hands each message to the router
// on its own goroutine, bounded by a concurrency limit.
type Poller struct {
	api           API
	router        bot.Bot
	timeout       time.Duration
	maxConcurrent int
	logger        logger.Logger
}

// NewPoller creates a Poller. timeout is the server-side getUpdates
// hold time; maxConcurrent bounds in-flight message handlers.
func NewPoller(api API, router bot.Bot, timeout time.Duration, maxConcurrent int, log logger.Logger) *Poller {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Poller{
		api:           api,
		router:        router,
		timeout:       timeout,
		maxConcurrent: maxConcurrent,
		logger:        log,
	}
}

// Run polls until ctx is canceled, then waits for in-flight handlers
// to finish before returning.
func (p *Poller) Run(ctx context.Context) error {
	semaphore := make(chan struct{}, p.maxConcurrent)
	var wg sync.WaitGroup
	defer wg.Wait()

	var offset int64
	for {
		select {
		case <-ctx.Done():
			p.logger.Info(ctx, "Update polling stopped")
			return nil
		default:
		}

		updates, err := p.api.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				p.logger.Info(ctx, "Update polling stopped")
				return nil
			}
			p.logger.Error(ctx, "getUpdates failed: %v", err)
			select {
			case <-ctx.Done():
			case <-time.After(retryDelay):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}

			msg := update.Message
			if msg == nil || strings.TrimSpace(msg.Text) == "" {
				continue
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(m Message) {
				defer wg.Done()
				defer func() { <-semaphore }()
				p.dispatch(ctx, m)
			}(*msg)
		}
	}
}

// dispatch routes one message: slash commands by name, everything
// else as free text. Private chats only, so the chat id is the user.
func (p *Poller) dispatch(ctx context.Context, m Message) {
	userID := m.Chat.ID
	text := strings.TrimSpace(m.Text)

	if name, args, ok := parseCommand(text); ok {
		p.logger.Debug(ctx, "Command /%s from user %d", name, userID)
		p.router.HandleCommand(ctx, userID, name, args)
		return
	}

	p.logger.Debug(ctx, "Message from user %d (%d chars)", userID, len(text))
	p.router.HandleMessage(ctx, userID, text)
}

// parseCommand splits "/summary@MyBot arg1 arg2" into its name and
// arguments. Returns false for anything that is not a command.
func parseCommand(text string) (string, []string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", nil, false
	}

	fields := strings.Fields(text)
	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return "", nil, false
	}
	return strings.ToLower(name), fields[1:], true
}
