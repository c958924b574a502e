package service

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/repository"
	sharederrors "github.com/teleole/channel-manager-bot/internal/shared/errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo, err := repository.NewFileStorage(filepath.Join(t.TempDir(), "bot_data.json"))
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	return New(repo)
}

func TestRegisterDuplicate(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(42, -1001, "News", "newschan", domain.ChatKindChannel); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Register(42, -1001, "News renamed", "newschan", domain.ChatKindChannel)
	if !errors.Is(err, sharederrors.ErrChannelAlreadySaved) {
		t.Fatalf("Register duplicate = %v, want ErrChannelAlreadySaved", err)
	}

	// The original config must survive the duplicate attempt untouched.
	got, err := svc.Get(42, -1001)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "News" {
		t.Errorf("title = %q, want News", got.Title)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(42, -1001, "News", "", domain.ChatKindChannel); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cfg, err := svc.ToggleButton(42, -1001)
	if err != nil {
		t.Fatalf("ToggleButton: %v", err)
	}
	if !cfg.AutoButton.Active() {
		t.Error("first toggle should activate")
	}

	cfg, err = svc.ToggleButton(42, -1001)
	if err != nil {
		t.Fatalf("ToggleButton: %v", err)
	}
	if cfg.AutoButton.Active() {
		t.Error("second toggle should deactivate")
	}
}

func TestUpdateRefetches(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(42, -1001, "News", "", domain.ChatKindChannel); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Update(42, -1001, func(cfg *domain.ChannelConfig) {
		cfg.AutoWatermark.Size = 80
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	cfg, err := svc.Update(42, -1001, func(cfg *domain.ChannelConfig) {
		cfg.AutoWatermark.Rotation = 90
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if cfg.AutoWatermark.Size != 80 || cfg.AutoWatermark.Rotation != 90 {
		t.Errorf("got size=%d rotation=%d, want 80 and 90", cfg.AutoWatermark.Size, cfg.AutoWatermark.Rotation)
	}
}

func TestReportEmptyAndChunked(t *testing.T) {
	svc := newTestService(t)

	chunks, err := svc.Report()
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if len(chunks) != 1 || chunks[0] != "Registry is empty." {
		t.Errorf("empty report = %q", chunks)
	}

	if _, err := svc.Register(42, -1001, "News", "", domain.ChatKindChannel); err != nil {
		t.Fatalf("Register: %v", err)
	}
	chunks, err = svc.Report()
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.Contains(chunks[0], "User 42:") || !strings.Contains(chunks[0], "News") {
		t.Errorf("report missing expected content: %q", chunks[0])
	}
}

func TestChunkText(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want int
	}{
		{"fits", "short", 100, 1},
		{"splits on lines", strings.Repeat("line\n", 10), 12, 5},
		{"oversized single line", strings.Repeat("x", 25), 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := ChunkText(tt.text, tt.size)
			if len(chunks) != tt.want {
				t.Fatalf("got %d chunks, want %d: %q", len(chunks), tt.want, chunks)
			}
			for _, c := range chunks {
				if len(c) > tt.size {
					t.Errorf("chunk exceeds size: %d > %d", len(c), tt.size)
				}
			}
			if strings.Join(chunks, "") != tt.text {
				t.Error("chunks do not reassemble to the input")
			}
		})
	}
}
