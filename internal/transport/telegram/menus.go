package telegram

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
)

const settingsDivider = "▲ ═══════════════════════ ▲"

// screen is one rendered menu page: the message text and its inline
// keyboard.
type screen struct {
	text   string
	markup *models.InlineKeyboardMarkup
}

func mainScreen(firstName string) screen {
	if firstName == "" {
		firstName = "there"
	}
	return screen{
		text:   fmt.Sprintf("Hi %s! I can help you register a channel with me.\n\nWhat would you like to do next?", firstName),
		markup: mainKeyboard(),
	}
}

func addChannelScreen(botUsername string) screen {
	text := "➕ ADD A CHANNEL OR GROUP\n\n" +
		"1. Use a button below to add me as an administrator.\n" +
		"2. Forward any message from the chat to me, or send its @username.\n\n" +
		"I need admin rights to edit posts, so keep the suggested permissions."
	return screen{text: text, markup: addChannelKeyboard(botUsername)}
}

func channelListScreen(channels []*domain.ChannelConfig) screen {
	chCount, grCount := 0, 0
	for _, cfg := range channels {
		if cfg.Kind == domain.ChatKindChannel {
			chCount++
		} else {
			grCount++
		}
	}

	var text string
	if len(channels) == 0 {
		text = "You have no channels or groups yet. Add one to get started."
	} else {
		text = fmt.Sprintf("📋 Your chats (📢 %d channels, 👥 %d groups).\n\nSelect one to configure:", chCount, grCount)
	}
	return screen{text: text, markup: channelListKeyboard(channels)}
}

func channelSettingsScreen(cfg *domain.ChannelConfig) screen {
	text := fmt.Sprintf("%s %s Settings\n\nName: %s\nID: %d\n\nSelect a feature to configure:",
		chatIcon(cfg.Kind), chatKindName(cfg.Kind), titleOf(cfg), cfg.ID)
	return screen{text: text, markup: channelSettingsKeyboard(cfg.ID)}
}

func removeConfirmScreen(cfg *domain.ChannelConfig) screen {
	return screen{
		text: fmt.Sprintf("Do you want to remove %s?", titleOf(cfg)),
		markup: keyboard(row(
			btn("✅ Yes, remove it", fmt.Sprintf("remove_yes_%d", cfg.ID)),
			btn("⏪ Back", fmt.Sprintf("select_%d", cfg.ID)),
		)),
	}
}

func ruleHeader(cfg *domain.ChannelConfig, statusLine string) string {
	return fmt.Sprintf("⚙️ CHANNEL: %s\n\n%s\n\n%s\n\n%s\n\n",
		titleOf(cfg), settingsDivider, statusLine, settingsDivider)
}

func toggleLabel(st domain.RuleStatus, feature string) string {
	if st == domain.RuleStatusActive {
		return "🔴 Deactivate " + feature
	}
	return "🟢 Activate " + feature
}

func buttonSettingsScreen(cfg *domain.ChannelConfig) screen {
	st := cfg.AutoButton.Status
	var b strings.Builder
	b.WriteString(ruleHeader(cfg, fmt.Sprintf("Status: %s Auto Button %s", statusEmoji(st), strings.ToUpper(st.String()))))
	fmt.Fprintf(&b, "🎯 CURRENT BUTTON CONFIGURATION\n%s\n\nWhat would you like to do? 👇", cfg.AutoButton.Config)

	return screen{
		text: b.String(),
		markup: keyboard(
			row(btn(toggleLabel(st, "Auto Button"), fmt.Sprintf("toggle_auto_button_status_%d", cfg.ID))),
			row(btn("🔧 CHANGE BUTTON", fmt.Sprintf("change_auto_button_config_%d", cfg.ID))),
			backToSelectRow(cfg.ID),
		),
	}
}

func buttonPromptScreen(channelID int64) screen {
	text := "🎯 BUTTON CONFIGURATION\n\n" +
		"📝 Add buttons that will automatically appear below your channel posts.\n\n" +
		"✨ Example:\n" +
		"• Insert a single button:\n" +
		"Button text - t.me/LinkExample\n\n" +
		"• Insert multiple buttons in a single line:\n" +
		"Button text - t.me/Link1 && Button text - t.me/Link2\n\n" +
		"• Insert a button that displays a popup:\n" +
		"Button text - popup: Text of the popup\n\n" +
		"Please send me the new button configuration."
	return screen{
		text:   text,
		markup: keyboard(row(btn("⏪ Back", fmt.Sprintf("channel_settings_auto_button_%d", channelID)))),
	}
}

func captionSettingsScreen(cfg *domain.ChannelConfig) screen {
	st := cfg.AutoCaption.Status
	var b strings.Builder
	b.WriteString(ruleHeader(cfg, fmt.Sprintf("Status: %s Auto Captions %s", statusEmoji(st), strings.ToUpper(st.String()))))
	fmt.Fprintf(&b, "🎯 CURRENT CAPTION\n%s\n\nWhat would you like to do? 👇", cfg.AutoCaption.Config)

	return screen{
		text: b.String(),
		markup: keyboard(
			row(btn(toggleLabel(st, "Auto Captions"), fmt.Sprintf("toggle_auto_caption_status_%d", cfg.ID))),
			row(btn("✏️ CHANGE CAPTION", fmt.Sprintf("change_auto_caption_config_%d", cfg.ID))),
			backToSelectRow(cfg.ID),
		),
	}
}

func captionPromptScreen(channelID int64) screen {
	text := "🎯 CAPTION CONFIGURATION\n\n" +
		"📝 Add a caption that will automatically be appended to your channel posts.\n\n" +
		"Text formatting (bold, links, ...) is preserved exactly as you send it.\n\n" +
		"Please send me the new caption."
	return screen{
		text:   text,
		markup: keyboard(row(btn("⏪ Back", fmt.Sprintf("channel_settings_auto_captions_%d", channelID)))),
	}
}

func reactionSettingsScreen(cfg *domain.ChannelConfig) screen {
	st := cfg.AutoReaction.Status
	var b strings.Builder
	b.WriteString(ruleHeader(cfg, fmt.Sprintf("Status: %s Auto Reactions %s", statusEmoji(st), strings.ToUpper(st.String()))))
	b.WriteString("• How it works: I automatically add an emoji reaction to new posts.\n\nWhat would you like to do? 👇")

	return screen{
		text: b.String(),
		markup: keyboard(
			row(
				btn("Enable ✅", fmt.Sprintf("toggle_auto_reactions_active_%d", cfg.ID)),
				btn("Disable ❌", fmt.Sprintf("toggle_auto_reactions_inactive_%d", cfg.ID)),
			),
			backToSelectRow(cfg.ID),
		),
	}
}

func watermarkSettingsScreen(cfg *domain.ChannelConfig) screen {
	wm := cfg.AutoWatermark
	typeEmoji := "📝"
	switch wm.Kind {
	case domain.WatermarkKindImage:
		typeEmoji = "🖼️"
	case domain.WatermarkKindAnimation:
		typeEmoji = "✨"
	}

	var b strings.Builder
	b.WriteString(ruleHeader(cfg, fmt.Sprintf("Status: %s Auto Watermark %s", statusEmoji(wm.Status), strings.ToUpper(wm.Status.String()))))
	fmt.Fprintf(&b, "🎯 CURRENT WATERMARK CONFIGURATION\n")
	fmt.Fprintf(&b, "Type: %s %s\n", typeEmoji, strings.ToUpper(wm.Kind.String()))
	fmt.Fprintf(&b, "Text: %s\n", wm.Config)
	fmt.Fprintf(&b, "Position: %s\n", wm.Position)
	fmt.Fprintf(&b, "Size: %d%%\n", wm.Size)
	fmt.Fprintf(&b, "Transparency: %d%%\n", wm.Transparency)
	fmt.Fprintf(&b, "Quality: %d%%", wm.Quality)
	if wm.Kind == domain.WatermarkKindText {
		fmt.Fprintf(&b, "\nRotation: %d°\nColor: %s\nEffect: %s (Speed: %d)", wm.Rotation, wm.Color, wm.Effect, wm.EffectSpeed)
	}
	b.WriteString("\n\nWhat would you like to do? 👇")

	id := cfg.ID
	return screen{
		text: b.String(),
		markup: keyboard(
			row(btn(toggleLabel(wm.Status, "Auto Watermark"), fmt.Sprintf("toggle_auto_watermark_status_%d", id))),
			row(btn("🔧 CHANGE WATERMARK", fmt.Sprintf("change_auto_watermark_config_%d", id))),
			row(
				btn("📍 Position", fmt.Sprintf("set_watermark_position_%d", id)),
				btn("📐 Size", fmt.Sprintf("set_watermark_size_%d", id)),
			),
			row(
				btn("🔍 Transparency", fmt.Sprintf("set_watermark_transparency_%d", id)),
				btn("⚙️ Quality", fmt.Sprintf("set_watermark_quality_%d", id)),
			),
			row(
				btn("📐 Rotation", fmt.Sprintf("set_watermark_rotation_%d", id)),
				btn("🎨 Text Color", fmt.Sprintf("set_watermark_color_%d", id)),
			),
			row(btn("✨ Effects & Speed", fmt.Sprintf("set_watermark_effect_%d", id))),
			backToSelectRow(id),
		),
	}
}

func watermarkPromptScreen(channelID int64) screen {
	text := "🎯 WATERMARK CONFIGURATION\n\n" +
		"Send me one of the following:\n\n" +
		"📝 Text, to stamp posts with a text watermark\n" +
		"🖼️ A photo, to overlay your logo\n" +
		"✨ A GIF, to overlay an animated logo"
	return screen{
		text:   text,
		markup: keyboard(backToWatermarkRow(channelID)),
	}
}

func positionScreen(cfg *domain.ChannelConfig) screen {
	text := fmt.Sprintf("Current Watermark Position: %s\n\nChoose the location of the watermark:", cfg.AutoWatermark.Position)
	return screen{text: text, markup: positionKeyboard(cfg.ID)}
}

func sizeScreen(cfg *domain.ChannelConfig) screen {
	text := fmt.Sprintf("Current Watermark Size: %d%%\n\n"+
		"Please send me the new watermark size (a number between 1 and 100).\n"+
		"This represents the percentage of the original media's size.", cfg.AutoWatermark.Size)
	return screen{text: text, markup: keyboard(backToWatermarkRow(cfg.ID))}
}

func transparencyScreen(cfg *domain.ChannelConfig) screen {
	text := fmt.Sprintf("Current Watermark Transparency: %d%%\n\n"+
		"Please send me the new watermark transparency (a number between 0 and 95).\n"+
		"Where 0%% is not transparent, and 95%% is barely noticeable.", cfg.AutoWatermark.Transparency)
	return screen{text: text, markup: keyboard(backToWatermarkRow(cfg.ID))}
}

func qualityScreen(cfg *domain.ChannelConfig) screen {
	text := fmt.Sprintf("Current Watermark Quality: %d%%\n\n"+
		"Please send me the new watermark quality (a number between 1 and 100).\n\n"+
		"Below 30 the output degrades but files get smaller, above 60 the file may grow larger than the original. "+
		"The default works well in most cases.", cfg.AutoWatermark.Quality)
	return screen{text: text, markup: keyboard(backToWatermarkRow(cfg.ID))}
}

func rotationScreen(cfg *domain.ChannelConfig) screen {
	text := fmt.Sprintf("Current Rotation: %d°\n\n"+
		"Select a rotation angle or send a custom value (0-360 degrees):\n\n"+
		"• 0° - Horizontal (default)\n"+
		"• 45° - Diagonal\n"+
		"• 90° - Vertical\n"+
		"• 180° - Upside down\n"+
		"• 270° - Vertical (opposite)", cfg.AutoWatermark.Rotation)
	return screen{text: text, markup: rotationKeyboard(cfg.ID)}
}

func rotationPromptScreen(channelID int64) screen {
	return screen{
		text:   "Please send the rotation angle (0-360 degrees):",
		markup: keyboard(backToWatermarkRow(channelID)),
	}
}

func colorScreen(cfg *domain.ChannelConfig) screen {
	text := fmt.Sprintf("Current Color: %s\n\nChoose watermark text color:", cfg.AutoWatermark.Color)
	return screen{text: text, markup: colorKeyboard(cfg.ID)}
}

func effectScreen(cfg *domain.ChannelConfig) screen {
	wm := cfg.AutoWatermark
	text := fmt.Sprintf("Current Effect: %s\nEffect Speed: %d\nWatermark Type: %s\n\n"+
		"Choose a watermark effect for videos:\n\n"+
		"⚠️ Note: effects only work on videos!\n\n"+
		"Speed: higher value = slower movement\n"+
		"• 5-20: Fast\n"+
		"• 35-50: Medium\n"+
		"• 70-100: Slow", wm.Effect, wm.EffectSpeed, wm.Kind)
	return screen{text: text, markup: effectKeyboard(cfg.ID, wm.Kind)}
}

func speedPromptScreen(channelID int64) screen {
	text := "Please send the effect speed value:\n\n" +
		"Speed Guide:\n" +
		"• 5-10: Very Fast\n" +
		"• 15-20: Fast\n" +
		"• 35-50: Medium (default)\n" +
		"• 70: Slow\n" +
		"• 100: Very Slow\n\n" +
		"Higher value = slower movement."
	return screen{
		text:   text,
		markup: keyboard(row(btn("⏪ Cancel", fmt.Sprintf("set_watermark_effect_%d", channelID)))),
	}
}

func helpText() string {
	return "📚 HELP & INSTRUCTIONS\n\n" +
		"🚀 Getting Started:\n" +
		"Use /start to see the main menu\n\n" +
		"➕ Adding a Channel/Group:\n" +
		"1. Click 'Add Channel/Group'\n" +
		"2. Choose channel or group\n" +
		"3. Add me as admin\n" +
		"4. Forward a message from it to me\n\n" +
		"⚙️ Features:\n" +
		"• Auto Buttons - Add clickable buttons\n" +
		"• Auto Captions - Append text to posts\n" +
		"• Auto Reactions - Add emoji reactions\n" +
		"• Auto Watermark - Brand your media\n\n" +
		"❓ Need Help?\n" +
		"Contact support or report issues"
}
