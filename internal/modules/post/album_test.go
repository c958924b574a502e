package post

import (
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
)

func albumMsg(id int, group string) *models.Message {
	return &models.Message{
		ID:           id,
		MediaGroupID: group,
		Chat:         models.Chat{ID: -100},
	}
}

func TestAggregatorBatchesSingleFire(t *testing.T) {
	var mu sync.Mutex
	var calls [][]int

	agg := NewAggregator(50*time.Millisecond, func(chatID int64, msgs []*models.Message) {
		ids := make([]int, len(msgs))
		for i, m := range msgs {
			ids[i] = m.ID
		}
		mu.Lock()
		calls = append(calls, ids)
		mu.Unlock()
	})

	agg.Add(albumMsg(1, "g1"))
	agg.Add(albumMsg(2, "g1"))
	agg.Add(albumMsg(3, "g1"))

	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Fatalf("process ran %d times, want 1", len(calls))
	}
	if len(calls[0]) != 3 {
		t.Errorf("batch had %d items, want 3", len(calls[0]))
	}
}

func TestAggregatorSeparateGroups(t *testing.T) {
	var mu sync.Mutex
	got := map[int64]int{}

	agg := NewAggregator(30*time.Millisecond, func(chatID int64, msgs []*models.Message) {
		mu.Lock()
		got[chatID] += len(msgs)
		mu.Unlock()
	})

	a := albumMsg(1, "g1")
	b := albumMsg(2, "g2")
	b.Chat.ID = -200
	agg.Add(a)
	agg.Add(b)

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if got[-100] != 1 || got[-200] != 1 {
		t.Errorf("batches = %v, want one item per chat", got)
	}
}

func TestAggregatorIgnoresNonAlbum(t *testing.T) {
	fired := make(chan struct{}, 1)
	agg := NewAggregator(10*time.Millisecond, func(int64, []*models.Message) {
		fired <- struct{}{}
	})

	agg.Add(albumMsg(1, ""))

	select {
	case <-fired:
		t.Error("non-album message must not arm a batch")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestAggregatorLateItemsJoinBeforeFire(t *testing.T) {
	var mu sync.Mutex
	var batch []*models.Message

	agg := NewAggregator(80*time.Millisecond, func(_ int64, msgs []*models.Message) {
		mu.Lock()
		batch = msgs
		mu.Unlock()
	})

	agg.Add(albumMsg(1, "g1"))
	time.Sleep(30 * time.Millisecond)
	agg.Add(albumMsg(2, "g1"))

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(batch) != 2 {
		t.Errorf("batch = %d items, want 2 (late item must join the armed batch)", len(batch))
	}
}
