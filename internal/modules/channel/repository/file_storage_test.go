package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	sharederrors "github.com/teleole/channel-manager-bot/internal/shared/errors"
)

func newTestStorage(t *testing.T) Repository {
	t.Helper()
	repo, err := NewFileStorage(filepath.Join(t.TempDir(), "bot_data.json"))
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	return repo
}

func TestFileStorageRoundTrip(t *testing.T) {
	repo := newTestStorage(t)

	cfg := domain.NewChannelConfig(-1001, "News", "newschan", domain.ChatKindChannel)
	if err := repo.SaveChannel(42, &cfg); err != nil {
		t.Fatalf("SaveChannel: %v", err)
	}

	got, err := repo.GetChannel(42, -1001)
	if err != nil {
		t.Fatalf("GetChannel: %v", err)
	}
	if got.Title != "News" || got.Kind != domain.ChatKindChannel {
		t.Errorf("got %+v, want title News kind channel", got)
	}
	if got.AutoWatermark.Position != domain.PositionBottomRight {
		t.Errorf("default position = %s, want bottom_right", got.AutoWatermark.Position)
	}
	if got.AutoWatermark.Quality != 75 {
		t.Errorf("default quality = %d, want 75", got.AutoWatermark.Quality)
	}
}

func TestFileStorageSaveReplacesExisting(t *testing.T) {
	repo := newTestStorage(t)

	cfg := domain.NewChannelConfig(-1001, "News", "newschan", domain.ChatKindChannel)
	if err := repo.SaveChannel(42, &cfg); err != nil {
		t.Fatalf("SaveChannel: %v", err)
	}

	cfg.AutoButton.Status = domain.RuleStatusActive
	cfg.AutoButton.Config = "Site - example.com"
	if err := repo.SaveChannel(42, &cfg); err != nil {
		t.Fatalf("SaveChannel update: %v", err)
	}

	list, err := repo.ListChannels(42)
	if err != nil {
		t.Fatalf("ListChannels: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if !list[0].AutoButton.Active() {
		t.Error("updated button rule not persisted")
	}
}

func TestFileStorageFindByChannel(t *testing.T) {
	repo := newTestStorage(t)

	a := domain.NewChannelConfig(-1001, "A", "", domain.ChatKindChannel)
	b := domain.NewChannelConfig(-1002, "B", "", domain.ChatKindGroup)
	if err := repo.SaveChannel(42, &a); err != nil {
		t.Fatalf("SaveChannel: %v", err)
	}
	if err := repo.SaveChannel(99, &b); err != nil {
		t.Fatalf("SaveChannel: %v", err)
	}

	ownerID, cfg, err := repo.FindByChannel(-1002)
	if err != nil {
		t.Fatalf("FindByChannel: %v", err)
	}
	if ownerID != 99 || cfg.Title != "B" {
		t.Errorf("FindByChannel = (%d, %s), want (99, B)", ownerID, cfg.Title)
	}

	if _, _, err := repo.FindByChannel(-9999); !errors.Is(err, sharederrors.ErrChannelNotFound) {
		t.Errorf("FindByChannel missing = %v, want ErrChannelNotFound", err)
	}
}

func TestFileStorageDelete(t *testing.T) {
	repo := newTestStorage(t)

	cfg := domain.NewChannelConfig(-1001, "News", "", domain.ChatKindChannel)
	if err := repo.SaveChannel(42, &cfg); err != nil {
		t.Fatalf("SaveChannel: %v", err)
	}

	if err := repo.DeleteChannel(42, -1001); err != nil {
		t.Fatalf("DeleteChannel: %v", err)
	}
	if _, err := repo.GetChannel(42, -1001); !errors.Is(err, sharederrors.ErrChannelNotFound) {
		t.Errorf("GetChannel after delete = %v, want ErrChannelNotFound", err)
	}
	if err := repo.DeleteChannel(42, -1001); !errors.Is(err, sharederrors.ErrChannelNotFound) {
		t.Errorf("DeleteChannel again = %v, want ErrChannelNotFound", err)
	}
}

func TestFileStoragePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_data.json")

	repo, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	cfg := domain.NewChannelConfig(-1001, "News", "", domain.ChatKindChannel)
	if err := repo.SaveChannel(42, &cfg); err != nil {
		t.Fatalf("SaveChannel: %v", err)
	}

	reopened, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage reopen: %v", err)
	}
	all, err := reopened.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all[42]) != 1 {
		t.Fatalf("all[42] has %d configs, want 1", len(all[42]))
	}
}
