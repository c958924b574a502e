package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/oops"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/repository"
	"github.com/teleole/channel-manager-bot/internal/shared/errors"
)

// ReportChunkSize is the maximum length of a single admin report message.
const ReportChunkSize = 4000

// Service handles registry business logic.
type Service struct {
	repo repository.Repository
}

// New creates a new registry service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a new chat for ownerID with default rules. Registering
// an already saved chat returns ErrChannelAlreadySaved and leaves the
// existing config untouched.
func (s *Service) Register(ownerID, chatID int64, title, handle string, kind domain.ChatKind) (*domain.ChannelConfig, error) {
	if _, err := s.repo.GetChannel(ownerID, chatID); err == nil {
		return nil, errors.ErrChannelAlreadySaved
	}

	cfg := domain.NewChannelConfig(chatID, title, handle, kind)
	if err := s.repo.SaveChannel(ownerID, &cfg); err != nil {
		return nil, oops.With("owner_id", ownerID, "channel_id", chatID, "context", "failed to register channel").Wrap(err)
	}

	return &cfg, nil
}

// Get retrieves one config for an owner.
func (s *Service) Get(ownerID, channelID int64) (*domain.ChannelConfig, error) {
	return s.repo.GetChannel(ownerID, channelID)
}

// List returns all configs registered by an owner.
func (s *Service) List(ownerID int64) ([]*domain.ChannelConfig, error) {
	return s.repo.ListChannels(ownerID)
}

// Lookup finds a config by channel id alone, for incoming posts.
func (s *Service) Lookup(channelID int64) (int64, *domain.ChannelConfig, error) {
	return s.repo.FindByChannel(channelID)
}

// Remove deletes a config from an owner's list.
func (s *Service) Remove(ownerID, channelID int64) error {
	return s.repo.DeleteChannel(ownerID, channelID)
}

// Update applies fn to a freshly fetched config and persists the result.
// Every mutation re-fetches by id so concurrent conversation steps never
// clobber each other through a stale copy.
func (s *Service) Update(ownerID, channelID int64, fn func(cfg *domain.ChannelConfig)) (*domain.ChannelConfig, error) {
	cfg, err := s.repo.GetChannel(ownerID, channelID)
	if err != nil {
		return nil, err
	}

	fn(cfg)
	if err := s.repo.SaveChannel(ownerID, cfg); err != nil {
		return nil, oops.With("owner_id", ownerID, "channel_id", channelID, "context", "failed to update channel").Wrap(err)
	}

	return cfg, nil
}

// ToggleButton flips the auto-button rule and returns the new state.
func (s *Service) ToggleButton(ownerID, channelID int64) (*domain.ChannelConfig, error) {
	return s.Update(ownerID, channelID, func(cfg *domain.ChannelConfig) {
		cfg.AutoButton.Status = toggle(cfg.AutoButton.Status)
	})
}

// ToggleCaption flips the auto-caption rule and returns the new state.
func (s *Service) ToggleCaption(ownerID, channelID int64) (*domain.ChannelConfig, error) {
	return s.Update(ownerID, channelID, func(cfg *domain.ChannelConfig) {
		cfg.AutoCaption.Status = toggle(cfg.AutoCaption.Status)
	})
}

// ToggleReaction flips the auto-reaction rule and returns the new state.
func (s *Service) ToggleReaction(ownerID, channelID int64) (*domain.ChannelConfig, error) {
	return s.Update(ownerID, channelID, func(cfg *domain.ChannelConfig) {
		cfg.AutoReaction.Status = toggle(cfg.AutoReaction.Status)
	})
}

// ToggleWatermark flips the auto-watermark rule and returns the new state.
func (s *Service) ToggleWatermark(ownerID, channelID int64) (*domain.ChannelConfig, error) {
	return s.Update(ownerID, channelID, func(cfg *domain.ChannelConfig) {
		cfg.AutoWatermark.Status = toggle(cfg.AutoWatermark.Status)
	})
}

func toggle(st domain.RuleStatus) domain.RuleStatus {
	if st == domain.RuleStatusActive {
		return domain.RuleStatusInactive
	}
	return domain.RuleStatusActive
}

// All returns every owner's configs, keyed by owner id.
func (s *Service) All() (map[int64][]*domain.ChannelConfig, error) {
	return s.repo.All()
}

// Report renders the whole registry as admin-readable text chunks, each
// at most ReportChunkSize characters.
func (s *Service) Report() ([]string, error) {
	all, err := s.repo.All()
	if err != nil {
		return nil, oops.With("context", "failed to load registry for report").Wrap(err)
	}

	if len(all) == 0 {
		return []string{"Registry is empty."}, nil
	}

	owners := make([]int64, 0, len(all))
	for ownerID := range all {
		owners = append(owners, ownerID)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })

	var b strings.Builder
	for _, ownerID := range owners {
		fmt.Fprintf(&b, "User %d:\n", ownerID)
		for _, cfg := range all[ownerID] {
			fmt.Fprintf(&b, "  %s (%d, %s)\n", cfg.Title, cfg.ID, cfg.Kind)
			fmt.Fprintf(&b, "    buttons: %s | captions: %s | reactions: %s | watermark: %s (%s)\n",
				cfg.AutoButton.Status, cfg.AutoCaption.Status,
				cfg.AutoReaction.Status, cfg.AutoWatermark.Status,
				cfg.AutoWatermark.Kind)
		}
	}

	return ChunkText(b.String(), ReportChunkSize), nil
}

// ChunkText splits text into pieces of at most size characters, breaking
// on line boundaries where possible.
func ChunkText(text string, size int) []string {
	if len(text) <= size {
		return []string{text}
	}

	var chunks []string
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		for len(line) > size {
			if b.Len() > 0 {
				chunks = append(chunks, b.String())
				b.Reset()
			}
			chunks = append(chunks, line[:size])
			line = line[size:]
		}
		if b.Len()+len(line) > size {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}

	return chunks
}
