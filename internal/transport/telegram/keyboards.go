package telegram

import (
	"fmt"

	"github.com/go-telegram/bot/models"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
)

// adminPermissions is the admin rights the bot requests through the
// add-to-chat deep links.
const adminPermissions = "change_info+post_messages+edit_messages+delete_messages+invite_users+pin_messages+manage_video_chats+post_stories+edit_stories+delete_stories"

func btn(text, data string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, CallbackData: data}
}

func urlBtn(text, url string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, URL: url}
}

func keyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func row(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

func statusEmoji(st domain.RuleStatus) string {
	if st == domain.RuleStatusActive {
		return "🟢"
	}
	return "🔴"
}

func chatIcon(kind domain.ChatKind) string {
	if kind == domain.ChatKindChannel {
		return "📢"
	}
	return "👥"
}

func chatKindName(kind domain.ChatKind) string {
	if kind == domain.ChatKindChannel {
		return "Channel"
	}
	return "Group"
}

func titleOf(cfg *domain.ChannelConfig) string {
	if cfg.Title != "" {
		return cfg.Title
	}
	if cfg.Handle != "" {
		return cfg.Handle
	}
	return fmt.Sprintf("%d", cfg.ID)
}

func mainKeyboard() *models.InlineKeyboardMarkup {
	return keyboard(
		row(btn("➕ Add Channel/Group", "add_channel")),
		row(btn("📋 My Channels & Groups", "show_channels")),
	)
}

func addChannelKeyboard(botUsername string) *models.InlineKeyboardMarkup {
	channelLink := fmt.Sprintf("https://t.me/%s?startchannel&admin=%s", botUsername, adminPermissions)
	groupLink := fmt.Sprintf("https://t.me/%s?startgroup&admin=%s", botUsername, adminPermissions)
	return keyboard(
		row(urlBtn("📢 Add me to a Channel", channelLink)),
		row(urlBtn("👥 Add me to a Group", groupLink)),
		row(btn("⏪ Back", "back_to_main")),
	)
}

func channelListKeyboard(channels []*domain.ChannelConfig) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(channels)+2)
	for _, cfg := range channels {
		label := fmt.Sprintf("%s %s", chatIcon(cfg.Kind), titleOf(cfg))
		rows = append(rows, row(btn(label, fmt.Sprintf("select_%d", cfg.ID))))
	}
	rows = append(rows,
		row(btn("➕ Add Channel/Group", "add_channel")),
		row(btn("⏪ Back", "back_to_main")),
	)
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func channelSettingsKeyboard(channelID int64) *models.InlineKeyboardMarkup {
	return keyboard(
		row(btn("🔘 Auto Buttons", fmt.Sprintf("channel_settings_auto_button_%d", channelID))),
		row(btn("💬 Auto Captions", fmt.Sprintf("channel_settings_auto_captions_%d", channelID))),
		row(btn("❤️ Auto Reactions", fmt.Sprintf("channel_settings_reactions_%d", channelID))),
		row(btn("🖼️ Auto Watermark", fmt.Sprintf("channel_settings_auto_watermark_%d", channelID))),
		row(btn("🗑️ Remove", fmt.Sprintf("remove_channel_%d", channelID))),
		row(btn("⏪ Back to List", "show_channels")),
	)
}

func positionKeyboard(channelID int64) *models.InlineKeyboardMarkup {
	pos := func(label string, p domain.Position) models.InlineKeyboardButton {
		return btn(label, fmt.Sprintf("set_wm_pos_%s_%d", p, channelID))
	}
	return keyboard(
		row(
			pos("↖️ Top-Left", domain.PositionTopLeft),
			pos("⬆️ Top-Center", domain.PositionTopCenter),
			pos("↗️ Top-Right", domain.PositionTopRight),
		),
		row(
			pos("⬅️ Mid-Left", domain.PositionMidLeft),
			pos("⏺️ Center", domain.PositionCenter),
			pos("➡️ Mid-Right", domain.PositionMidRight),
		),
		row(
			pos("↙️ Bottom-Left", domain.PositionBottomLeft),
			pos("⬇️ Bottom-Center", domain.PositionBottomCenter),
			pos("↘️ Bottom-Right", domain.PositionBottomRight),
		),
		backToWatermarkRow(channelID),
	)
}

func rotationKeyboard(channelID int64) *models.InlineKeyboardMarkup {
	rot := func(deg int) models.InlineKeyboardButton {
		return btn(fmt.Sprintf("%d°", deg), fmt.Sprintf("set_rot_%d_%d", deg, channelID))
	}
	return keyboard(
		row(rot(0), rot(45), rot(90)),
		row(rot(135), rot(180), rot(270)),
		row(btn("✏️ Custom Angle", fmt.Sprintf("set_rot_custom_%d", channelID))),
		backToWatermarkRow(channelID),
	)
}

func colorKeyboard(channelID int64) *models.InlineKeyboardMarkup {
	col := func(label string, c domain.Color) models.InlineKeyboardButton {
		return btn(label, fmt.Sprintf("set_color_%s_%d", c, channelID))
	}
	return keyboard(
		row(col("⚪ White", domain.ColorWhite), col("⚫ Black", domain.ColorBlack)),
		row(col("🔴 Red", domain.ColorRed), col("🔵 Blue", domain.ColorBlue)),
		row(col("🟢 Green", domain.ColorGreen), col("🟡 Yellow", domain.ColorYellow)),
		row(col("🟣 Purple", domain.ColorPurple), col("🟠 Orange", domain.ColorOrange)),
		row(col("🔵 Cyan", domain.ColorCyan), col("🟣 Magenta", domain.ColorMagenta)),
		backToWatermarkRow(channelID),
	)
}

// effectKeyboard lists the selectable effects. Drawtext effects only
// make sense for text watermarks, the diagonal moves work for every
// watermark kind.
func effectKeyboard(channelID int64, kind domain.WatermarkKind) *models.InlineKeyboardMarkup {
	eff := func(label string, e domain.Effect) []models.InlineKeyboardButton {
		return row(btn(label, fmt.Sprintf("set_effect_%s_%d", e, channelID)))
	}

	rows := [][]models.InlineKeyboardButton{
		eff("◽ None (Static)", domain.EffectNone),
	}
	if kind == domain.WatermarkKindText {
		rows = append(rows,
			eff("⬅️ Scroll Left", domain.EffectScrollLeft),
			eff("➡️ Scroll Right", domain.EffectScrollRight),
			eff("⬆️ Scroll Up", domain.EffectScrollUp),
			eff("⬇️ Scroll Down", domain.EffectScrollDown),
			eff("🌫️ Fade In/Out", domain.EffectFade),
			eff("💫 Pulse/Glow", domain.EffectPulse),
			eff("🌊 Smooth Wave", domain.EffectWave),
		)
	}
	rows = append(rows,
		eff("↘️ Move: Top-Left → Down-Right", domain.EffectMoveDiagonalDr),
		eff("↙️ Move: Top-Right → Down-Left", domain.EffectMoveDiagonalDl),
		eff("↗️ Move: Bottom-Left → Up-Right", domain.EffectMoveDiagonalUr),
		eff("↖️ Move: Bottom-Right → Up-Left", domain.EffectMoveDiagonalUl),
		row(btn("⚡ Set Speed", fmt.Sprintf("set_effect_speed_%d", channelID))),
		backToWatermarkRow(channelID),
	)
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func backToWatermarkRow(channelID int64) []models.InlineKeyboardButton {
	return row(btn("⏪ Back to Watermark Settings", fmt.Sprintf("channel_settings_auto_watermark_%d", channelID)))
}

func backToSelectRow(channelID int64) []models.InlineKeyboardButton {
	return row(btn("⏪ Back", fmt.Sprintf("select_%d", channelID)))
}
