package repository

import (
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
)

// Repository defines the interface for registry persistence.
// This abstraction allows easy replacement of storage implementations
// (e.g., FileStorage -> PostgreSQL -> MongoDB)
type Repository interface {
	// SaveChannel stores or replaces the config for owner/channel.
	SaveChannel(ownerID int64, cfg *domain.ChannelConfig) error
	// GetChannel returns the config for owner/channel, ErrChannelNotFound otherwise.
	GetChannel(ownerID, channelID int64) (*domain.ChannelConfig, error)
	// ListChannels returns all configs registered by an owner.
	ListChannels(ownerID int64) ([]*domain.ChannelConfig, error)
	// FindByChannel locates a config by channel id alone, across owners.
	FindByChannel(channelID int64) (ownerID int64, cfg *domain.ChannelConfig, err error)
	// DeleteChannel removes a config from an owner's list.
	DeleteChannel(ownerID, channelID int64) error
	// All returns the whole registry keyed by owner id.
	All() (map[int64][]*domain.ChannelConfig, error)
}
