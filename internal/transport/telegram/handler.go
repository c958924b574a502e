package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	channelService "github.com/teleole/channel-manager-bot/internal/modules/channel/service"
	"github.com/teleole/channel-manager-bot/internal/modules/conversation"
	"github.com/teleole/channel-manager-bot/internal/modules/media"
	"github.com/teleole/channel-manager-bot/internal/modules/post"
	"github.com/teleole/channel-manager-bot/internal/shared/config"
	"github.com/teleole/channel-manager-bot/internal/shared/errors"
)

// Handler handles Telegram bot interactions
type Handler struct {
	cfg           *config.Config
	registry      *channelService.Service
	orchestrator  *post.Orchestrator
	conversations *conversation.Manager
	downloader    *media.Downloader

	meOnce sync.Once
	me     string
}

// New creates a new Telegram handler
func New(cfg *config.Config, registry *channelService.Service, orchestrator *post.Orchestrator, conversations *conversation.Manager, downloader *media.Downloader) *Handler {
	return &Handler{
		cfg:           cfg,
		registry:      registry,
		orchestrator:  orchestrator,
		conversations: conversations,
		downloader:    downloader,
	}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.handleHelp)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/dumpdata", bot.MatchTypeExact, h.handleDumpData)
}

// HandleUpdate processes every update the command handlers did not
// claim: callback queries, private conversation messages, and channel
// or group posts.
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered from panic while handling update", "panic", r)
			if update.Message != nil && update.Message.Chat.Type == "private" {
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: update.Message.Chat.ID,
					Text:   "⚠️ An error occurred. The bot is still running.\nPlease try again or contact support.",
				})
			}
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		h.routeCallback(ctx, b, update.CallbackQuery)
	case update.ChannelPost != nil:
		h.processPost(ctx, update.ChannelPost)
	case update.Message != nil:
		switch update.Message.Chat.Type {
		case "channel", "group", "supergroup":
			h.processPost(ctx, update.Message)
		case "private":
			h.handlePrivateMessage(ctx, b, update.Message)
		}
	}
}

func (h *Handler) processPost(ctx context.Context, msg *models.Message) {
	if err := h.orchestrator.ProcessPost(ctx, msg); err != nil {
		slog.Error("Error processing post", "chat_id", msg.Chat.ID, "message_id", msg.ID, "error", err)
	}
}

// botUsername resolves the bot's own username once, for the deep links
// on the add-channel screen.
func (h *Handler) botUsername(ctx context.Context, b *bot.Bot) string {
	h.meOnce.Do(func() {
		me, err := b.GetMe(ctx)
		if err != nil {
			slog.Error("Could not resolve bot username", "error", err)
			return
		}
		h.me = me.Username
	})
	return h.me
}

// --- Commands ---

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	s := mainScreen(update.Message.From.FirstName)
	h.sendScreen(ctx, b, update.Message.Chat.ID, s)
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   helpText(),
	})
}

func (h *Handler) handleDumpData(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message.From.ID != h.cfg.MainAdminID {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "⛔ You are not authorized to use this command.",
		})
		return
	}

	chunks, err := h.registry.Report()
	if err != nil {
		slog.Error("Error building registry report", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "❌ Failed to build the report.",
		})
		return
	}

	for _, chunk := range chunks {
		if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   chunk,
		}); err != nil {
			slog.Error("Error sending report chunk", "error", err)
			return
		}
	}
}

// --- Callback routing ---

func (h *Handler) routeCallback(ctx context.Context, b *bot.Bot, q *models.CallbackQuery) {
	data := q.Data
	userID := q.From.ID
	msg := q.Message.Message

	// Display-only buttons created from "label - popup: text" segments.
	if strings.HasPrefix(data, post.PopupPrefix) {
		h.answer(ctx, b, q, strings.TrimPrefix(data, post.PopupPrefix), true)
		return
	}

	switch {
	case data == "add_channel":
		h.answer(ctx, b, q, "", false)
		h.editScreen(ctx, b, msg, addChannelScreen(h.botUsername(ctx, b)))

	case data == "show_channels":
		h.answer(ctx, b, q, "", false)
		h.showChannelList(ctx, b, msg, userID, "")

	case data == "back_to_main":
		h.answer(ctx, b, q, "", false)
		h.editScreen(ctx, b, msg, mainScreen(q.From.FirstName))

	case strings.HasPrefix(data, "select_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "select_"), func(cfg *domain.ChannelConfig) screen {
			return channelSettingsScreen(cfg)
		})

	case strings.HasPrefix(data, "remove_channel_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "remove_channel_"), func(cfg *domain.ChannelConfig) screen {
			return removeConfirmScreen(cfg)
		})

	case strings.HasPrefix(data, "remove_yes_"):
		id, ok := parseID(strings.TrimPrefix(data, "remove_yes_"))
		if !ok {
			return
		}
		h.answer(ctx, b, q, "", false)
		if err := h.registry.Remove(userID, id); err != nil {
			slog.Error("Error removing channel", "user_id", userID, "channel_id", id, "error", err)
		}
		h.showChannelList(ctx, b, msg, userID, "Channel removed. Here is your updated list:")

	case strings.HasPrefix(data, "channel_settings_auto_button_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "channel_settings_auto_button_"), buttonSettingsScreen)

	case strings.HasPrefix(data, "toggle_auto_button_status_"):
		id, ok := parseID(strings.TrimPrefix(data, "toggle_auto_button_status_"))
		if !ok {
			return
		}
		h.answer(ctx, b, q, "", false)
		cfg, err := h.registry.ToggleButton(userID, id)
		if err != nil {
			h.showChannelList(ctx, b, msg, userID, "Channel not found.")
			return
		}
		h.editScreen(ctx, b, msg, buttonSettingsScreen(cfg))

	case strings.HasPrefix(data, "change_auto_button_config_"):
		h.armStep(ctx, b, q, msg, userID, strings.TrimPrefix(data, "change_auto_button_config_"),
			conversation.StepKindButtonConfig, buttonPromptScreen)

	case strings.HasPrefix(data, "channel_settings_auto_captions_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "channel_settings_auto_captions_"), captionSettingsScreen)

	case strings.HasPrefix(data, "toggle_auto_caption_status_"):
		id, ok := parseID(strings.TrimPrefix(data, "toggle_auto_caption_status_"))
		if !ok {
			return
		}
		h.answer(ctx, b, q, "", false)
		cfg, err := h.registry.ToggleCaption(userID, id)
		if err != nil {
			h.showChannelList(ctx, b, msg, userID, "Channel not found.")
			return
		}
		h.editScreen(ctx, b, msg, captionSettingsScreen(cfg))

	case strings.HasPrefix(data, "change_auto_caption_config_"):
		h.armStep(ctx, b, q, msg, userID, strings.TrimPrefix(data, "change_auto_caption_config_"),
			conversation.StepKindCaptionConfig, captionPromptScreen)

	case strings.HasPrefix(data, "channel_settings_reactions_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "channel_settings_reactions_"), reactionSettingsScreen)

	case strings.HasPrefix(data, "toggle_auto_reactions_"):
		h.toggleReactions(ctx, b, q, msg, userID, strings.TrimPrefix(data, "toggle_auto_reactions_"))

	case strings.HasPrefix(data, "channel_settings_auto_watermark_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "channel_settings_auto_watermark_"), watermarkSettingsScreen)

	case strings.HasPrefix(data, "toggle_auto_watermark_status_"):
		id, ok := parseID(strings.TrimPrefix(data, "toggle_auto_watermark_status_"))
		if !ok {
			return
		}
		h.answer(ctx, b, q, "", false)
		cfg, err := h.registry.ToggleWatermark(userID, id)
		if err != nil {
			h.showChannelList(ctx, b, msg, userID, "Channel not found.")
			return
		}
		h.editScreen(ctx, b, msg, watermarkSettingsScreen(cfg))

	case strings.HasPrefix(data, "change_auto_watermark_config_"):
		h.armStep(ctx, b, q, msg, userID, strings.TrimPrefix(data, "change_auto_watermark_config_"),
			conversation.StepKindWatermarkContent, watermarkPromptScreen)

	case strings.HasPrefix(data, "set_watermark_position_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_watermark_position_"), positionScreen)

	case strings.HasPrefix(data, "set_wm_pos_"):
		h.setPosition(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_wm_pos_"))

	case strings.HasPrefix(data, "set_watermark_size_"):
		h.armNumericStep(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_watermark_size_"),
			conversation.StepKindWatermarkSize, sizeScreen)

	case strings.HasPrefix(data, "set_watermark_transparency_"):
		h.armNumericStep(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_watermark_transparency_"),
			conversation.StepKindWatermarkTransparency, transparencyScreen)

	case strings.HasPrefix(data, "set_watermark_quality_"):
		h.armNumericStep(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_watermark_quality_"),
			conversation.StepKindWatermarkQuality, qualityScreen)

	case strings.HasPrefix(data, "set_watermark_rotation_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_watermark_rotation_"), rotationScreen)

	case strings.HasPrefix(data, "set_rot_custom_"):
		h.armStep(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_rot_custom_"),
			conversation.StepKindWatermarkRotation, rotationPromptScreen)

	case strings.HasPrefix(data, "set_rot_"):
		h.setRotation(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_rot_"))

	case strings.HasPrefix(data, "set_watermark_color_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_watermark_color_"), colorScreen)

	case strings.HasPrefix(data, "set_color_"):
		h.setColor(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_color_"))

	case strings.HasPrefix(data, "set_watermark_effect_"):
		h.withChannel(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_watermark_effect_"), effectScreen)

	case strings.HasPrefix(data, "set_effect_speed_"):
		h.armStep(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_effect_speed_"),
			conversation.StepKindEffectSpeed, speedPromptScreen)

	case strings.HasPrefix(data, "set_effect_"):
		h.setEffect(ctx, b, q, msg, userID, strings.TrimPrefix(data, "set_effect_"))

	default:
		h.answer(ctx, b, q, "", false)
		h.editScreen(ctx, b, msg, screen{text: "Unknown action."})
	}
}

// withChannel resolves the channel id suffix, loads the config, and
// renders the screen, falling back to the channel list when the id is
// stale.
func (h *Handler) withChannel(ctx context.Context, b *bot.Bot, q *models.CallbackQuery, msg *models.Message, userID int64, idStr string, render func(cfg *domain.ChannelConfig) screen) {
	id, ok := parseID(idStr)
	if !ok {
		return
	}
	h.answer(ctx, b, q, "", false)

	cfg, err := h.registry.Get(userID, id)
	if err != nil {
		h.showChannelList(ctx, b, msg, userID, "Channel not found.")
		return
	}
	h.editScreen(ctx, b, msg, render(cfg))
}

// armStep shows a prompt screen and arms the pending conversation step
// for the user's next private message.
func (h *Handler) armStep(ctx context.Context, b *bot.Bot, q *models.CallbackQuery, msg *models.Message, userID int64, idStr string, kind conversation.StepKind, render func(channelID int64) screen) {
	id, ok := parseID(idStr)
	if !ok {
		return
	}
	h.answer(ctx, b, q, "", false)
	h.editScreen(ctx, b, msg, render(id))
	h.conversations.Expect(userID, conversation.PendingStep{Kind: kind, ChannelID: id})
}

// armNumericStep is armStep for screens that render from the current
// config value.
func (h *Handler) armNumericStep(ctx context.Context, b *bot.Bot, q *models.CallbackQuery, msg *models.Message, userID int64, idStr string, kind conversation.StepKind, render func(cfg *domain.ChannelConfig) screen) {
	id, ok := parseID(idStr)
	if !ok {
		return
	}
	h.answer(ctx, b, q, "", false)

	cfg, err := h.registry.Get(userID, id)
	if err != nil {
		h.showChannelList(ctx, b, msg, userID, "Channel not found.")
		return
	}
	h.editScreen(ctx, b, msg, render(cfg))
	h.conversations.Expect(userID, conversation.PendingStep{Kind: kind, ChannelID: id})
}

func (h *Handler) toggleReactions(ctx context.Context, b *bot.Bot, q *models.CallbackQuery, msg *models.Message, userID int64, rest string) {
	// rest is "active_<id>" or "inactive_<id>".
	statusStr, id, ok := splitKeyID(rest)
	if !ok {
		return
	}
	want, err := domain.ParseRuleStatus(statusStr)
	if err != nil {
		return
	}

	cfg, err := h.registry.Get(userID, id)
	if err != nil {
		h.answer(ctx, b, q, "", false)
		h.showChannelList(ctx, b, msg, userID, "Channel not found.")
		return
	}
	if cfg.AutoReaction.Status == want {
		h.answer(ctx, b, q, fmt.Sprintf("Auto reactions are already %s.", want), false)
		return
	}

	cfg, err = h.registry.Update(userID, id, func(cfg *domain.ChannelConfig) {
		cfg.AutoReaction.Status = want
	})
	if err != nil {
		h.answer(ctx, b, q, "", false)
		h.showChannelList(ctx, b, msg, userID, "Channel not found.")
		return
	}
	h.answer(ctx, b, q, "", false)
	h.editScreen(ctx, b, msg, reactionSettingsScreen(cfg))
}

func (h *Handler) setPosition(ctx context.Context, b *bot.Bot, q *models.CallbackQuery, msg *models.Message, userID int64, rest string) {
	posStr, id, ok := splitKeyID(rest)
	if !ok {
		return
	}
	position, err := domain.ParsePosition(posStr)
	if err != nil {
		return
	}

	cfg, err := h.registry.Get(userID, id)
	if err != nil {
		h.answer(ctx, b, q, "", false)
		h.showChannelList(ctx, b, msg, userID, "Channel not found.")
		return
	}
	if cfg.AutoWatermark.Position == position {
		h.answer(ctx, b, q, fmt.Sprintf("Position is already set to %s.", strings.ReplaceAll(posStr, "_", " ")), false)
		return
	}

	cfg, err = h.registry.Update(userID, id, func(cfg *domain.ChannelConfig) {
		cfg.AutoWatermark.Position = position
	})
	if err != nil {
		return
	}
	h.answer(ctx, b, q, "", false)
	h.editScreen(ctx, b, msg, watermarkSettingsScreen(cfg))
}

func (h *Handler) setRotation(ctx context.Context, b *bot.Bot, q *models.CallbackQuery, msg *models.Message, userID int64, rest string) {
	degStr, id, ok := splitKeyID(rest)
	if !ok {
		return
	}
	deg, err := strconv.Atoi(degStr)
	if err != nil || deg < 0 || deg > 360 {
		return
	}

	cfg, err := h.registry.Update(userID, id, func(cfg *domain.ChannelConfig) {
		cfg.AutoWatermark.Rotation = deg
	})
	if err != nil {
		h.answer(ctx, b, q, "", false)
		h.showChannelList(ctx, b, msg, userID, "Channel not found.")
		return
	}
	h.answer(ctx, b, q, fmt.Sprintf("✅ Rotation set to %d°", deg), false)
	h.editScreen(ctx, b, msg, watermarkSettingsScreen(cfg))
}

func (h *Handler) setColor(ctx context.Context, b *bot.Bot, q *models.CallbackQuery, msg *models.Message, userID int64, rest string) {
	colorStr, id, ok := splitKeyID(rest)
	if !ok {
		return
	}
	color, err := domain.ParseColor(colorStr)
	if err != nil {
		return
	}

	cfg, err := h.registry.Update(userID, id, func(cfg *domain.ChannelConfig) {
		cfg.AutoWatermark.Color = color
	})
	if err != nil {
		h.answer(ctx, b, q, "", false)
		h.showChannelList(ctx, b, msg, userID, "Channel not found.")
		return
	}
	h.answer(ctx, b, q, fmt.Sprintf("✅ Color set to %s", color), false)
	h.editScreen(ctx, b, msg, watermarkSettingsScreen(cfg))
}

func (h *Handler) setEffect(ctx context.Context, b *bot.Bot, q *models.CallbackQuery, msg *models.Message, userID int64, rest string) {
	effectStr, id, ok := splitKeyID(rest)
	if !ok {
		return
	}
	effect, err := domain.ParseEffect(effectStr)
	if err != nil {
		return
	}

	cfg, err := h.registry.Update(userID, id, func(cfg *domain.ChannelConfig) {
		cfg.AutoWatermark.Effect = effect
	})
	if err != nil {
		h.answer(ctx, b, q, "", false)
		h.showChannelList(ctx, b, msg, userID, "Channel not found.")
		return
	}
	h.answer(ctx, b, q, fmt.Sprintf("✅ Effect set to %s", effect), false)
	h.editScreen(ctx, b, msg, watermarkSettingsScreen(cfg))
}

func (h *Handler) showChannelList(ctx context.Context, b *bot.Bot, msg *models.Message, userID int64, prefix string) {
	channels, err := h.registry.List(userID)
	if err != nil {
		slog.Error("Error listing channels", "user_id", userID, "error", err)
		channels = nil
	}
	s := channelListScreen(channels)
	if prefix != "" {
		s.text = prefix
	}
	h.editScreen(ctx, b, msg, s)
}

// --- Private messages ---

func (h *Handler) handlePrivateMessage(ctx context.Context, b *bot.Bot, msg *models.Message) {
	if msg.From == nil || strings.HasPrefix(msg.Text, "/") {
		return
	}
	userID := msg.From.ID

	if msg.ForwardOrigin != nil {
		h.registerForwarded(ctx, b, msg, userID)
		return
	}

	if step, ok := h.conversations.Pending(userID); ok {
		h.handleStep(ctx, b, msg, userID, step)
		return
	}

	if strings.HasPrefix(strings.TrimSpace(msg.Text), "@") {
		h.registerByUsername(ctx, b, msg, userID)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   "Forward a message from your channel or group, or send its @username to register it. Use /start for the menu.",
	})
}

// registerForwarded saves the origin chat of a forwarded message.
func (h *Handler) registerForwarded(ctx context.Context, b *bot.Bot, msg *models.Message, userID int64) {
	origin := msg.ForwardOrigin
	if origin.Type != models.MessageOriginTypeChannel || origin.MessageOriginChannel == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text: "❌ Could not detect forwarded message\n\n" +
				"Please forward a message from the channel or group (not copy/paste).\n\n" +
				"If you can't forward, send the channel's username like @channelusername.",
		})
		return
	}

	chat := origin.MessageOriginChannel.Chat
	h.saveChat(ctx, b, msg.Chat.ID, userID, chat.ID, chat.Title, chat.Username, string(chat.Type))
}

// registerByUsername resolves an @handle through the bot API.
func (h *Handler) registerByUsername(ctx context.Context, b *bot.Bot, msg *models.Message, userID int64) {
	handle := strings.TrimSpace(msg.Text)

	chat, err := b.GetChat(ctx, &bot.GetChatParams{ChatID: handle})
	if err != nil {
		slog.Warn("get_chat failed", "handle", handle, "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text: "❌ Could not find that channel/group\n\n" +
				"I couldn't find that channel or I don't have permission to access it.\n\n" +
				"Please try:\n" +
				"1. Forward a message from the channel/group instead\n" +
				"2. Add me as an admin and try again",
		})
		return
	}

	chatType := string(chat.Type)
	if chatType != "channel" && chatType != "group" && chatType != "supergroup" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   "❌ That username is not a channel or group.",
		})
		return
	}

	h.saveChat(ctx, b, msg.Chat.ID, userID, chat.ID, chat.Title, chat.Username, chatType)
}

func (h *Handler) saveChat(ctx context.Context, b *bot.Bot, replyTo, userID, chatID int64, title, handle, chatType string) {
	kind, err := domain.ParseChatKind(chatType)
	if err != nil {
		kind = domain.ChatKindChannel
	}

	cfg, err := h.registry.Register(userID, chatID, title, handle, kind)
	if err == errors.ErrChannelAlreadySaved {
		name := title
		if name == "" {
			name = handle
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: replyTo,
			Text:   fmt.Sprintf("%s I already have %s saved.", chatIcon(kind), name),
		})
		return
	}
	if err != nil {
		slog.Error("Error registering chat", "user_id", userID, "chat_id", chatID, "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: replyTo,
			Text:   "❌ Error occurred while saving. Please try again.",
		})
		return
	}

	channels, _ := h.registry.List(userID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: replyTo,
		Text: fmt.Sprintf("✅ %s Saved Successfully!\n\n%s %s\n\nYou can now manage its settings from your list.",
			chatKindName(kind), chatIcon(kind), titleOf(cfg)),
		ReplyMarkup: channelListKeyboard(channels),
	})
}

// --- Conversation steps ---

func (h *Handler) handleStep(ctx context.Context, b *bot.Bot, msg *models.Message, userID int64, step conversation.PendingStep) {
	switch step.Kind {
	case conversation.StepKindButtonConfig:
		h.stepButtonConfig(ctx, b, msg, userID, step.ChannelID)
	case conversation.StepKindCaptionConfig:
		h.stepCaptionConfig(ctx, b, msg, userID, step.ChannelID)
	case conversation.StepKindWatermarkContent:
		h.stepWatermarkContent(ctx, b, msg, userID, step.ChannelID)
	default:
		h.stepNumeric(ctx, b, msg, userID, step)
	}
}

func (h *Handler) stepButtonConfig(ctx context.Context, b *bot.Bot, msg *models.Message, userID, channelID int64) {
	if msg.Text == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "❌ Please send text for button configuration."})
		return
	}

	cfg, err := h.registry.Update(userID, channelID, func(cfg *domain.ChannelConfig) {
		cfg.AutoButton.Config = msg.Text
	})
	h.conversations.Clear(userID)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "Channel not found."})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "✅ Button configuration updated!"})
	h.sendScreen(ctx, b, msg.Chat.ID, buttonSettingsScreen(cfg))
}

func (h *Handler) stepCaptionConfig(ctx context.Context, b *bot.Bot, msg *models.Message, userID, channelID int64) {
	if msg.Text == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "❌ Please send text for the caption."})
		return
	}

	cfg, err := h.registry.Update(userID, channelID, func(cfg *domain.ChannelConfig) {
		cfg.AutoCaption.Config = msg.Text
		cfg.AutoCaption.Entities = post.FromModelEntities(msg.Entities)
	})
	h.conversations.Clear(userID)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "Channel not found."})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "✅ Caption configuration updated!"})
	h.sendScreen(ctx, b, msg.Chat.ID, captionSettingsScreen(cfg))
}

// stepWatermarkContent accepts text, a photo, or a GIF and stores it as
// the channel's watermark. Files are cached on disk right away so the
// first post does not pay the download.
func (h *Handler) stepWatermarkContent(ctx context.Context, b *bot.Bot, msg *models.Message, userID, channelID int64) {
	var mutate func(cfg *domain.ChannelConfig)
	var confirmation string

	switch {
	case msg.Text != "":
		mutate = func(cfg *domain.ChannelConfig) {
			cfg.AutoWatermark.Kind = domain.WatermarkKindText
			cfg.AutoWatermark.Config = msg.Text
			cfg.AutoWatermark.FileID = ""
			cfg.AutoWatermark.FilePath = ""
		}
		confirmation = "✅ Text watermark saved!"

	case len(msg.Photo) > 0:
		fileID := msg.Photo[len(msg.Photo)-1].FileID
		path, err := h.downloader.SaveWatermark(ctx, fileID, channelID, domain.WatermarkKindImage)
		if err != nil {
			slog.Error("Error saving image watermark", "channel_id", channelID, "error", err)
			b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "⚠️ Image received but the download failed. Try sending it again."})
			return
		}
		mutate = func(cfg *domain.ChannelConfig) {
			cfg.AutoWatermark.Kind = domain.WatermarkKindImage
			cfg.AutoWatermark.Config = "Image watermark"
			cfg.AutoWatermark.FileID = fileID
			cfg.AutoWatermark.FilePath = path
		}
		confirmation = "✅ Image watermark saved! Your logo will be overlaid on posts."

	case msg.Animation != nil:
		fileID := msg.Animation.FileID
		path, err := h.downloader.SaveWatermark(ctx, fileID, channelID, domain.WatermarkKindAnimation)
		if err != nil {
			slog.Error("Error saving GIF watermark", "channel_id", channelID, "error", err)
			b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "⚠️ GIF received but the download failed. Try sending it again."})
			return
		}
		mutate = func(cfg *domain.ChannelConfig) {
			cfg.AutoWatermark.Kind = domain.WatermarkKindAnimation
			cfg.AutoWatermark.Config = "GIF watermark"
			cfg.AutoWatermark.FileID = fileID
			cfg.AutoWatermark.FilePath = path
		}
		confirmation = "✅ GIF watermark saved! Your animated logo will be overlaid on posts."

	default:
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "❌ Please send text, image, or GIF as watermark."})
		return
	}

	cfg, err := h.registry.Update(userID, channelID, mutate)
	h.conversations.Clear(userID)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "Channel not found."})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: confirmation})
	h.sendScreen(ctx, b, msg.Chat.ID, watermarkSettingsScreen(cfg))
}

// stepNumeric handles the size, transparency, quality, rotation, and
// effect speed inputs. The step is cleared after one attempt either way.
func (h *Handler) stepNumeric(ctx context.Context, b *bot.Bot, msg *models.Message, userID int64, step conversation.PendingStep) {
	h.conversations.Clear(userID)

	n, ok := step.Kind.ParseNumber(msg.Text)
	if !ok {
		min, max, _ := step.Kind.NumericRange()
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   fmt.Sprintf("❌ Invalid input. Please send a number between %d and %d.", min, max),
		})
		return
	}

	var confirmation string
	cfg, err := h.registry.Update(userID, step.ChannelID, func(cfg *domain.ChannelConfig) {
		switch step.Kind {
		case conversation.StepKindWatermarkSize:
			cfg.AutoWatermark.Size = n
			confirmation = "✅ Watermark size updated!"
		case conversation.StepKindWatermarkTransparency:
			cfg.AutoWatermark.Transparency = n
			confirmation = "✅ Watermark transparency updated!"
		case conversation.StepKindWatermarkQuality:
			cfg.AutoWatermark.Quality = n
			confirmation = "✅ Watermark quality updated!"
		case conversation.StepKindWatermarkRotation:
			cfg.AutoWatermark.Rotation = n
			confirmation = fmt.Sprintf("✅ Rotation set to %d°!", n)
		case conversation.StepKindEffectSpeed:
			cfg.AutoWatermark.EffectSpeed = n
			confirmation = fmt.Sprintf("✅ Effect speed set to %d (%s)!", n, speedDescription(n))
		}
	})
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: "Channel not found."})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: confirmation})
	h.sendScreen(ctx, b, msg.Chat.ID, watermarkSettingsScreen(cfg))
}

func speedDescription(speed int) string {
	switch {
	case speed <= 10:
		return "Very Fast"
	case speed <= 20:
		return "Fast"
	case speed <= 50:
		return "Medium"
	case speed <= 70:
		return "Slow"
	default:
		return "Very Slow"
	}
}

// --- Helpers ---

func (h *Handler) answer(ctx context.Context, b *bot.Bot, q *models.CallbackQuery, text string, alert bool) {
	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: q.ID,
		Text:            text,
		ShowAlert:       alert,
	}); err != nil {
		slog.Warn("Error answering callback query", "error", err)
	}
}

func (h *Handler) editScreen(ctx context.Context, b *bot.Bot, msg *models.Message, s screen) {
	if msg == nil {
		return
	}
	params := &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      s.text,
	}
	if s.markup != nil {
		params.ReplyMarkup = s.markup
	}
	_, err := b.EditMessageText(ctx, params)
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "message is not modified") {
		slog.Error("Error editing menu message", "chat_id", msg.Chat.ID, "message_id", msg.ID, "error", err)
	}
}

func (h *Handler) sendScreen(ctx context.Context, b *bot.Bot, chatID int64, s screen) {
	params := &bot.SendMessageParams{ChatID: chatID, Text: s.text}
	if s.markup != nil {
		params.ReplyMarkup = s.markup
	}
	if _, err := b.SendMessage(ctx, params); err != nil {
		slog.Error("Error sending menu message", "chat_id", chatID, "error", err)
	}
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil
}

// splitKeyID splits "<key>_<id>" at the last underscore. The key itself
// may contain underscores (e.g. "bottom_right", "move_diagonal_dr").
func splitKeyID(s string) (string, int64, bool) {
	idx := strings.LastIndex(s, "_")
	if idx < 0 {
		return "", 0, false
	}
	id, err := strconv.ParseInt(s[idx+1:], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return s[:idx], id, true
}
