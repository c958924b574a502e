package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/samber/oops"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	"github.com/teleole/channel-manager-bot/internal/shared/errors"
)

// FileAPI is the slice of the bot API the downloader needs. *bot.Bot
// satisfies it.
type FileAPI interface {
	GetFile(ctx context.Context, params *bot.GetFileParams) (*models.File, error)
	FileDownloadLink(f *models.File) string
}

// Downloader fetches Telegram files into a temp directory and manages
// the per-channel watermark cache.
type Downloader struct {
	api      FileAPI
	client   *http.Client
	tempDir  string
	maxBytes int64
}

// NewDownloader creates a downloader writing into tempDir, refusing
// files larger than maxBytes.
func NewDownloader(api FileAPI, tempDir string, maxBytes int64) (*Downloader, error) {
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, oops.With("temp_dir", tempDir, "context", "failed to create temp directory").Wrap(err)
	}

	return &Downloader{
		api:      api,
		client:   http.DefaultClient,
		tempDir:  tempDir,
		maxBytes: maxBytes,
	}, nil
}

// TempPath returns a unique path in the temp directory, e.g. for the
// watermarked output file.
func (d *Downloader) TempPath(prefix, ext string) string {
	return filepath.Join(d.tempDir, fmt.Sprintf("%s%s.%s", prefix, uuid.New(), ext))
}

// Download fetches a Telegram file to a uniquely named temp path.
// Files over the configured cap are rejected with ErrFileTooLarge
// before any bytes are transferred.
func (d *Downloader) Download(ctx context.Context, fileID, ext string) (string, error) {
	f, err := d.api.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", oops.With("file_id", fileID, "context", "get_file failed").Wrap(err)
	}

	slog.Info("Downloading Telegram file", "file_id", fileID, "size_bytes", f.FileSize)
	if f.FileSize > d.maxBytes {
		return "", errors.ErrFileTooLarge
	}

	path := filepath.Join(d.tempDir, fmt.Sprintf("%s.%s", uuid.New(), ext))
	if err := d.fetch(ctx, d.api.FileDownloadLink(f), path); err != nil {
		return "", err
	}

	return path, nil
}

// WatermarkCachePath is where a channel's watermark file is kept
// between posts.
func (d *Downloader) WatermarkCachePath(channelID int64, kind domain.WatermarkKind) string {
	ext := "png"
	if kind == domain.WatermarkKindAnimation {
		ext = "gif"
	}
	return filepath.Join(d.tempDir, fmt.Sprintf("watermark_%d.%s", channelID, ext))
}

// SaveWatermark downloads a freshly configured watermark file into the
// channel's cache slot and returns its path.
func (d *Downloader) SaveWatermark(ctx context.Context, fileID string, channelID int64, kind domain.WatermarkKind) (string, error) {
	f, err := d.api.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", oops.With("file_id", fileID, "channel_id", channelID, "context", "get_file failed").Wrap(err)
	}

	path := d.WatermarkCachePath(channelID, kind)
	if err := d.fetch(ctx, d.api.FileDownloadLink(f), path); err != nil {
		return "", err
	}

	return path, nil
}

// EnsureWatermark returns a readable path for the rule's watermark
// file, re-downloading from the stored file id when the cached copy is
// gone (temp directories do not survive restarts).
func (d *Downloader) EnsureWatermark(ctx context.Context, rule domain.WatermarkRule, channelID int64) (string, error) {
	if rule.FilePath != "" {
		if _, err := os.Stat(rule.FilePath); err == nil {
			return rule.FilePath, nil
		}
	}

	if rule.FileID == "" {
		return "", errors.ErrWatermarkNotConfigured
	}

	slog.Info("Watermark file missing, re-downloading", "channel_id", channelID)
	f, err := d.api.GetFile(ctx, &bot.GetFileParams{FileID: rule.FileID})
	if err != nil {
		return "", oops.With("channel_id", channelID, "context", "watermark re-download failed").Wrap(err)
	}

	path := filepath.Join(d.tempDir, fmt.Sprintf("watermark_%d_temp.png", channelID))
	if err := d.fetch(ctx, d.api.FileDownloadLink(f), path); err != nil {
		return "", err
	}

	return path, nil
}

func (d *Downloader) fetch(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return oops.With("path", path, "context", "building download request").Wrap(err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return oops.With("path", path, "context", "download request failed").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return oops.With("path", path, "status", resp.StatusCode).Errorf("download returned status %d", resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return oops.With("path", path, "context", "creating download target").Wrap(err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(path)
		return oops.With("path", path, "context", "writing download").Wrap(err)
	}

	return nil
}

// Cleanup removes temp files, tolerating already-removed paths. Called
// on every exit path of the transform pipeline.
func Cleanup(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			slog.Error("Failed to remove temp file", "path", p, "error", err)
		}
	}
}
