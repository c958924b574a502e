package post

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/oops"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	channelservice "github.com/teleole/channel-manager-bot/internal/modules/channel/service"
	"github.com/teleole/channel-manager-bot/internal/modules/media"
	"github.com/teleole/channel-manager-bot/internal/modules/watermark"
	"github.com/teleole/channel-manager-bot/internal/shared/errors"
)

// reactionEmojis is the pool of auto-reaction emojis. The first one is
// applied to each post.
var reactionEmojis = []string{"👍", "❤️", "🔥"}

// mediaReactionDelay gives Telegram time to settle a media replacement
// before the reaction call.
const mediaReactionDelay = 500 * time.Millisecond

// failureDetailLimit caps the error detail in a failure notice, in bytes.
const failureDetailLimit = 200

// BotAPI is the slice of the bot API the orchestrator needs. *bot.Bot
// satisfies it.
type BotAPI interface {
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	EditMessageCaption(ctx context.Context, params *bot.EditMessageCaptionParams) (*models.Message, error)
	EditMessageMedia(ctx context.Context, params *bot.EditMessageMediaParams) (*models.Message, error)
	DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	SendVideo(ctx context.Context, params *bot.SendVideoParams) (*models.Message, error)
	SendAnimation(ctx context.Context, params *bot.SendAnimationParams) (*models.Message, error)
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SetMessageReaction(ctx context.Context, params *bot.SetMessageReactionParams) (bool, error)
}

type mediaKind int

const (
	mediaNone mediaKind = iota
	mediaPhoto
	mediaVideo
	mediaAnimation
)

// Orchestrator applies a channel's automation rules to incoming posts.
type Orchestrator struct {
	api           BotAPI
	registry      *channelservice.Service
	downloader    *media.Downloader
	executor      *watermark.Executor
	fontFile      string
	albums        *Aggregator
	reactionDelay time.Duration
}

// NewOrchestrator wires the post pipeline.
func NewOrchestrator(api BotAPI, registry *channelservice.Service, downloader *media.Downloader, executor *watermark.Executor) *Orchestrator {
	o := &Orchestrator{
		api:           api,
		registry:      registry,
		downloader:    downloader,
		executor:      executor,
		fontFile:      watermark.FindFontFile(),
		reactionDelay: mediaReactionDelay,
	}
	o.albums = NewAggregator(AlbumDebounce, o.processAlbum)
	return o
}

// ProcessPost handles one channel or group post. Posts from chats
// without a registered config pass through untouched. Album items are
// parked in the aggregator and processed as a batch.
func (o *Orchestrator) ProcessPost(ctx context.Context, msg *models.Message) error {
	_, cfg, err := o.registry.Lookup(msg.Chat.ID)
	if err != nil {
		if err == errors.ErrChannelNotFound {
			return nil
		}
		return err
	}

	if msg.MediaGroupID != "" {
		o.albums.Add(msg)
		return nil
	}

	isText := msg.Text != ""
	originalText := msg.Text
	originalEntities := FromModelEntities(msg.Entities)
	if !isText {
		originalText = msg.Caption
		originalEntities = FromModelEntities(msg.CaptionEntities)
	}

	finalText := originalText
	finalEntities := append([]domain.CaptionEntity(nil), originalEntities...)

	// Start from the post's own keyboard so edits never strip buttons
	// the author attached themselves.
	finalMarkup := msg.ReplyMarkup
	if cfg.AutoButton.Active() && cfg.AutoButton.Configured() {
		if built := BuildKeyboard(cfg.AutoButton.Config); built != nil {
			finalMarkup = built
		}
	}
	if cfg.AutoCaption.Active() && cfg.AutoCaption.Configured() {
		finalText, finalEntities = AppendCaption(finalText, finalEntities, cfg.AutoCaption)
	}

	watermarkActive := cfg.AutoWatermark.Active() && cfg.AutoWatermark.Configured()

	kind, fileID, ext := mediaOf(msg)
	if watermarkActive && kind != mediaNone {
		if err := o.replaceMedia(ctx, cfg, msg, kind, fileID, ext, finalText, finalEntities, finalMarkup); err != nil {
			slog.Error("Watermarking failed", "channel_id", msg.Chat.ID, "message_id", msg.ID, "error", err)
			o.notifyFailure(ctx, cfg, msg, err)
			return nil
		}
		return nil
	}

	if watermarkActive && isText && cfg.AutoWatermark.Kind == domain.WatermarkKindText {
		finalText = AppendTextWatermark(finalText, cfg.AutoWatermark.Config)
	}

	o.editInPlace(ctx, msg, isText, originalText, originalEntities, finalText, finalEntities, finalMarkup)

	if cfg.AutoReaction.Active() {
		o.react(ctx, msg.Chat.ID, msg.ID)
	}

	return nil
}

// editInPlace edits the post's text or caption, skipping the call
// entirely when nothing would change.
func (o *Orchestrator) editInPlace(ctx context.Context, msg *models.Message, isText bool, originalText string, originalEntities []domain.CaptionEntity, finalText string, finalEntities []domain.CaptionEntity, markup *models.InlineKeyboardMarkup) {
	contentChanged := finalText != originalText || !EntitiesEqual(finalEntities, originalEntities)
	markupChanged := !keyboardEqual(msg.ReplyMarkup, markup)
	if !contentChanged && !markupChanged {
		return
	}

	var err error
	if isText {
		params := &bot.EditMessageTextParams{
			ChatID:    msg.Chat.ID,
			MessageID: msg.ID,
			Text:      finalText,
			Entities:  ToModelEntities(finalEntities),
		}
		if markup != nil {
			params.ReplyMarkup = markup
		}
		_, err = o.api.EditMessageText(ctx, params)
	} else {
		params := &bot.EditMessageCaptionParams{
			ChatID:          msg.Chat.ID,
			MessageID:       msg.ID,
			Caption:         finalText,
			CaptionEntities: ToModelEntities(finalEntities),
		}
		if markup != nil {
			params.ReplyMarkup = markup
		}
		_, err = o.api.EditMessageCaption(ctx, params)
	}
	if err != nil && !isNotModified(err) {
		slog.Error("Error editing channel post", "channel_id", msg.Chat.ID, "message_id", msg.ID, "error", err)
	}
}

// replaceMedia downloads the post's media, runs the watermark pass, and
// swaps the media in place, falling back to delete+resend when the edit
// is rejected. Temp files are removed on every path.
func (o *Orchestrator) replaceMedia(ctx context.Context, cfg *domain.ChannelConfig, msg *models.Message, kind mediaKind, fileID, ext string, finalText string, finalEntities []domain.CaptionEntity, markup *models.InlineKeyboardMarkup) error {
	downloaded, err := o.downloader.Download(ctx, fileID, ext)
	if err != nil {
		return err
	}
	output := o.downloader.TempPath("watermarked_", ext)
	defer media.Cleanup(downloaded, output)

	isVideo := kind != mediaPhoto
	if err := o.applyWatermark(ctx, cfg.AutoWatermark, msg.Chat.ID, downloaded, output, isVideo); err != nil {
		return err
	}

	entities := ToModelEntities(finalEntities)
	replaced, err := o.editMedia(ctx, msg, kind, output, ext, finalText, entities, markup)
	if err != nil {
		slog.Error("Error replacing media, falling back to delete+send", "message_id", msg.ID, "error", err)
		replaced, err = o.deleteAndResend(ctx, msg, kind, output, ext, finalText, entities, markup)
		if err != nil {
			return err
		}
	}

	if cfg.AutoReaction.Active() {
		time.Sleep(o.reactionDelay)
		o.react(ctx, msg.Chat.ID, replaced.ID)
	}

	return nil
}

// applyWatermark runs the compiled graph matching the rule's kind.
func (o *Orchestrator) applyWatermark(ctx context.Context, rule domain.WatermarkRule, chatID int64, input, output string, isVideo bool) error {
	switch rule.Kind {
	case domain.WatermarkKindImage, domain.WatermarkKindAnimation:
		wmPath, err := o.downloader.EnsureWatermark(ctx, rule, chatID)
		if err != nil {
			return err
		}
		g := watermark.CompileOverlay(rule, isVideo)
		return o.executor.ApplyOverlay(ctx, input, wmPath, output, g, rule.Quality, isVideo)
	default:
		g := watermark.CompileText(rule, isVideo, o.fontFile)
		return o.executor.ApplyText(ctx, input, output, g, rule.Quality, isVideo)
	}
}

func (o *Orchestrator) editMedia(ctx context.Context, msg *models.Message, kind mediaKind, path, ext, caption string, entities []models.MessageEntity, markup *models.InlineKeyboardMarkup) (*models.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oops.With("path", path, "context", "opening watermarked file").Wrap(err)
	}
	defer f.Close()

	attach := "attach://watermarked." + ext
	var im models.InputMedia
	switch kind {
	case mediaPhoto:
		im = &models.InputMediaPhoto{Media: attach, MediaAttachment: f, Caption: caption, CaptionEntities: entities}
	case mediaVideo:
		im = &models.InputMediaVideo{Media: attach, MediaAttachment: f, Caption: caption, CaptionEntities: entities}
	default:
		im = &models.InputMediaAnimation{Media: attach, MediaAttachment: f, Caption: caption, CaptionEntities: entities}
	}

	params := &bot.EditMessageMediaParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Media:     im,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	return o.api.EditMessageMedia(ctx, params)
}

func (o *Orchestrator) deleteAndResend(ctx context.Context, msg *models.Message, kind mediaKind, path, ext, caption string, entities []models.MessageEntity, markup *models.InlineKeyboardMarkup) (*models.Message, error) {
	if _, err := o.api.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: msg.Chat.ID, MessageID: msg.ID}); err != nil {
		slog.Error("Error deleting original post", "message_id", msg.ID, "error", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, oops.With("path", path, "context", "opening watermarked file").Wrap(err)
	}
	defer f.Close()

	upload := &models.InputFileUpload{Filename: "watermarked." + ext, Data: f}
	switch kind {
	case mediaPhoto:
		params := &bot.SendPhotoParams{ChatID: msg.Chat.ID, Photo: upload, Caption: caption, CaptionEntities: entities}
		if markup != nil {
			params.ReplyMarkup = markup
		}
		return o.api.SendPhoto(ctx, params)
	case mediaVideo:
		params := &bot.SendVideoParams{ChatID: msg.Chat.ID, Video: upload, Caption: caption, CaptionEntities: entities}
		if markup != nil {
			params.ReplyMarkup = markup
		}
		return o.api.SendVideo(ctx, params)
	default:
		params := &bot.SendAnimationParams{ChatID: msg.Chat.ID, Animation: upload, Caption: caption, CaptionEntities: entities}
		if markup != nil {
			params.ReplyMarkup = markup
		}
		return o.api.SendAnimation(ctx, params)
	}
}

// processAlbum watermarks each item of a completed batch in place.
// Buttons, captions and reactions stay single-post concerns; albums
// keep their original captions.
func (o *Orchestrator) processAlbum(chatID int64, messages []*models.Message) {
	ctx := context.Background()

	_, cfg, err := o.registry.Lookup(chatID)
	if err != nil {
		return
	}
	if !cfg.AutoWatermark.Active() || !cfg.AutoWatermark.Configured() {
		return
	}

	processed := 0
	for _, msg := range messages {
		kind, fileID, ext := mediaOf(msg)
		if kind == mediaNone || kind == mediaAnimation {
			continue
		}

		if err := o.watermarkAlbumItem(ctx, cfg, msg, kind, fileID, ext); err != nil {
			slog.Error("Error watermarking album item", "message_id", msg.ID, "error", err)
			continue
		}
		processed++
	}
	slog.Info("Album processing complete", "chat_id", chatID, "processed", processed, "total", len(messages))
}

func (o *Orchestrator) watermarkAlbumItem(ctx context.Context, cfg *domain.ChannelConfig, msg *models.Message, kind mediaKind, fileID, ext string) error {
	downloaded, err := o.downloader.Download(ctx, fileID, ext)
	if err != nil {
		return err
	}
	output := o.downloader.TempPath("watermarked_", ext)
	defer media.Cleanup(downloaded, output)

	isVideo := kind != mediaPhoto
	if err := o.applyWatermark(ctx, cfg.AutoWatermark, msg.Chat.ID, downloaded, output, isVideo); err != nil {
		return err
	}

	_, err = o.editMedia(ctx, msg, kind, output, ext, msg.Caption, msg.CaptionEntities, msg.ReplyMarkup)
	return err
}

// notifyFailure posts a descriptive failure notice to the channel so
// the operator sees why a post was left untouched.
func (o *Orchestrator) notifyFailure(ctx context.Context, cfg *domain.ChannelConfig, msg *models.Message, cause error) {
	var b strings.Builder
	if cause == errors.ErrFileTooLarge {
		b.WriteString("⚠️ Watermarking Failed: File Too Large\n\n")
		b.WriteString("The file is too large to process. Telegram bot API limit is 20MB for downloads.\n\n")
	} else {
		b.WriteString("⚠️ Watermarking Failed\n\n")
		detail := cause.Error()
		for len(detail) > failureDetailLimit {
			_, size := utf8.DecodeLastRuneInString(detail)
			detail = detail[:len(detail)-size]
		}
		fmt.Fprintf(&b, "Details: %s\n\n", detail)
	}
	b.WriteString("📍 Message Details:\n")
	fmt.Fprintf(&b, "• Chat ID: %d\n", msg.Chat.ID)
	fmt.Fprintf(&b, "• Message ID: %d\n", msg.ID)
	if cfg.Handle != "" {
		fmt.Fprintf(&b, "• Link: https://t.me/%s/%d\n", cfg.Handle, msg.ID)
	}

	if _, err := o.api.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: b.String()}); err != nil {
		slog.Error("Could not send failure notice", "chat_id", msg.Chat.ID, "error", err)
	}
}

func (o *Orchestrator) react(ctx context.Context, chatID int64, messageID int) {
	_, err := o.api.SetMessageReaction(ctx, &bot.SetMessageReactionParams{
		ChatID:    chatID,
		MessageID: messageID,
		Reaction: []models.ReactionType{{
			Type:              models.ReactionTypeTypeEmoji,
			ReactionTypeEmoji: &models.ReactionTypeEmoji{Type: "emoji", Emoji: reactionEmojis[0]},
		}},
	})
	if err != nil {
		// Some chats do not allow reactions, that is fine.
		slog.Warn("Could not set reaction", "chat_id", chatID, "message_id", messageID, "error", err)
	}
}

func mediaOf(msg *models.Message) (mediaKind, string, string) {
	switch {
	case len(msg.Photo) > 0:
		return mediaPhoto, msg.Photo[len(msg.Photo)-1].FileID, "jpg"
	case msg.Video != nil:
		return mediaVideo, msg.Video.FileID, "mp4"
	case msg.Animation != nil:
		return mediaAnimation, msg.Animation.FileID, "mp4"
	default:
		return mediaNone, "", ""
	}
}

func isNotModified(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "message is not modified")
}

func keyboardEqual(a, b *models.InlineKeyboardMarkup) bool {
	if a == nil || b == nil {
		return rowCount(a) == 0 && rowCount(b) == 0
	}
	if len(a.InlineKeyboard) != len(b.InlineKeyboard) {
		return false
	}
	for i := range a.InlineKeyboard {
		if len(a.InlineKeyboard[i]) != len(b.InlineKeyboard[i]) {
			return false
		}
		for j := range a.InlineKeyboard[i] {
			x, y := a.InlineKeyboard[i][j], b.InlineKeyboard[i][j]
			if x.Text != y.Text || x.URL != y.URL || x.CallbackData != y.CallbackData {
				return false
			}
		}
	}
	return true
}

func rowCount(m *models.InlineKeyboardMarkup) int {
	if m == nil {
		return 0
	}
	return len(m.InlineKeyboard)
}
