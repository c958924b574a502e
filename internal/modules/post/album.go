package post

import (
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot/models"
)

// AlbumDebounce is how long the aggregator waits after the first album
// item before processing the batch. Telegram delivers album items as
// separate updates within a short window.
const AlbumDebounce = 2 * time.Second

// Aggregator collects media-group messages and hands complete batches
// to a processing callback exactly once per group.
type Aggregator struct {
	mu      sync.Mutex
	groups  map[string]*albumBatch
	delay   time.Duration
	process func(chatID int64, messages []*models.Message)
}

type albumBatch struct {
	chatID    int64
	messages  []*models.Message
	scheduled bool
	processed bool
}

// NewAggregator creates an aggregator that calls process for each
// completed batch after the debounce delay.
func NewAggregator(delay time.Duration, process func(chatID int64, messages []*models.Message)) *Aggregator {
	return &Aggregator{
		groups:  make(map[string]*albumBatch),
		delay:   delay,
		process: process,
	}
}

// Add records one album item. The first item of a group arms a single
// deferred processing job; later items only join the batch.
func (a *Aggregator) Add(msg *models.Message) {
	groupID := msg.MediaGroupID
	if groupID == "" {
		return
	}

	a.mu.Lock()
	b, ok := a.groups[groupID]
	if !ok {
		b = &albumBatch{chatID: msg.Chat.ID}
		a.groups[groupID] = b
	}
	b.messages = append(b.messages, msg)
	arm := !b.scheduled
	b.scheduled = true
	a.mu.Unlock()

	slog.Info("Stored album message", "media_group_id", groupID, "message_id", msg.ID)

	if arm {
		time.AfterFunc(a.delay, func() { a.fire(groupID) })
	}
}

// fire processes a batch at most once, tolerating duplicate timer runs.
func (a *Aggregator) fire(groupID string) {
	a.mu.Lock()
	b, ok := a.groups[groupID]
	if !ok || b.processed {
		a.mu.Unlock()
		return
	}
	b.processed = true
	chatID := b.chatID
	messages := b.messages
	a.mu.Unlock()

	slog.Info("Processing album", "media_group_id", groupID, "items", len(messages))
	a.process(chatID, messages)

	a.mu.Lock()
	delete(a.groups, groupID)
	a.mu.Unlock()
}
