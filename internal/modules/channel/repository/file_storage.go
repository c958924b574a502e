package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/oops"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	"github.com/teleole/channel-manager-bot/internal/shared/errors"
)

// FileStorage implements Repository on a single JSON document.
// The whole registry is rewritten on every mutation, so a crash can lose
// at most the last write, never corrupt the document.
type FileStorage struct {
	path string
	mu   sync.RWMutex
}

// document is the on-disk shape: owner id (as JSON object key) to the
// owner's channel configs.
type document struct {
	Channels map[string][]*domain.ChannelConfig `json:"channels"`
}

// NewFileStorage creates a single-file registry at path.
func NewFileStorage(path string) (Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, oops.With("path", path, "context", "failed to create storage directory").Wrap(err)
		}
	}

	return &FileStorage{path: path}, nil
}

func (s *FileStorage) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &document{Channels: map[string][]*domain.ChannelConfig{}}, nil
		}
		return nil, oops.With("path", s.path, "context", "failed to read registry").Wrap(err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, oops.With("path", s.path, "context", "failed to unmarshal registry").Wrap(err)
	}
	if doc.Channels == nil {
		doc.Channels = map[string][]*domain.ChannelConfig{}
	}

	return &doc, nil
}

func (s *FileStorage) store(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return oops.With("path", s.path, "context", "failed to marshal registry").Wrap(err)
	}

	return os.WriteFile(s.path, data, 0644)
}

func ownerKey(ownerID int64) string {
	return strconv.FormatInt(ownerID, 10)
}

func (s *FileStorage) SaveChannel(ownerID int64, cfg *domain.ChannelConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	key := ownerKey(ownerID)
	list := doc.Channels[key]
	if _, idx, found := lo.FindIndexOf(list, func(c *domain.ChannelConfig) bool {
		return c.ID == cfg.ID
	}); found {
		list[idx] = cfg
	} else {
		list = append(list, cfg)
	}
	doc.Channels[key] = list

	return s.store(doc)
}

func (s *FileStorage) GetChannel(ownerID, channelID int64) (*domain.ChannelConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	cfg, found := lo.Find(doc.Channels[ownerKey(ownerID)], func(c *domain.ChannelConfig) bool {
		return c.ID == channelID
	})
	if !found {
		return nil, errors.ErrChannelNotFound
	}

	return cfg, nil
}

func (s *FileStorage) ListChannels(ownerID int64) ([]*domain.ChannelConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	return doc.Channels[ownerKey(ownerID)], nil
}

func (s *FileStorage) FindByChannel(channelID int64) (int64, *domain.ChannelConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return 0, nil, err
	}

	for key, list := range doc.Channels {
		if cfg, found := lo.Find(list, func(c *domain.ChannelConfig) bool {
			return c.ID == channelID
		}); found {
			ownerID, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return 0, nil, oops.With("owner_key", key, "context", "malformed owner id in registry").Wrap(err)
			}
			return ownerID, cfg, nil
		}
	}

	return 0, nil, errors.ErrChannelNotFound
}

func (s *FileStorage) DeleteChannel(ownerID, channelID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	key := ownerKey(ownerID)
	list := doc.Channels[key]
	filtered := lo.Filter(list, func(c *domain.ChannelConfig, _ int) bool {
		return c.ID != channelID
	})
	if len(filtered) == len(list) {
		return errors.ErrChannelNotFound
	}
	if len(filtered) == 0 {
		delete(doc.Channels, key)
	} else {
		doc.Channels[key] = filtered
	}

	return s.store(doc)
}

func (s *FileStorage) All() (map[int64][]*domain.ChannelConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make(map[int64][]*domain.ChannelConfig, len(doc.Channels))
	for key, list := range doc.Channels {
		ownerID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		out[ownerID] = list
	}

	return out, nil
}
