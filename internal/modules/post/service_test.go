package post

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/repository"
	channelservice "github.com/teleole/channel-manager-bot/internal/modules/channel/service"
)

type fakeBotAPI struct {
	editTexts    []*bot.EditMessageTextParams
	editCaptions []*bot.EditMessageCaptionParams
	reactions    []*bot.SetMessageReactionParams
	sent         []*bot.SendMessageParams
}

func (f *fakeBotAPI) EditMessageText(_ context.Context, p *bot.EditMessageTextParams) (*models.Message, error) {
	f.editTexts = append(f.editTexts, p)
	return &models.Message{ID: p.MessageID}, nil
}

func (f *fakeBotAPI) EditMessageCaption(_ context.Context, p *bot.EditMessageCaptionParams) (*models.Message, error) {
	f.editCaptions = append(f.editCaptions, p)
	return &models.Message{ID: p.MessageID}, nil
}

func (f *fakeBotAPI) EditMessageMedia(_ context.Context, p *bot.EditMessageMediaParams) (*models.Message, error) {
	return &models.Message{ID: p.MessageID}, nil
}

func (f *fakeBotAPI) DeleteMessage(_ context.Context, _ *bot.DeleteMessageParams) (bool, error) {
	return true, nil
}

func (f *fakeBotAPI) SendPhoto(_ context.Context, _ *bot.SendPhotoParams) (*models.Message, error) {
	return &models.Message{}, nil
}

func (f *fakeBotAPI) SendVideo(_ context.Context, _ *bot.SendVideoParams) (*models.Message, error) {
	return &models.Message{}, nil
}

func (f *fakeBotAPI) SendAnimation(_ context.Context, _ *bot.SendAnimationParams) (*models.Message, error) {
	return &models.Message{}, nil
}

func (f *fakeBotAPI) SendMessage(_ context.Context, p *bot.SendMessageParams) (*models.Message, error) {
	f.sent = append(f.sent, p)
	return &models.Message{}, nil
}

func (f *fakeBotAPI) SetMessageReaction(_ context.Context, p *bot.SetMessageReactionParams) (bool, error) {
	f.reactions = append(f.reactions, p)
	return true, nil
}

func newTestOrchestrator(t *testing.T, mutate func(cfg *domain.ChannelConfig)) (*Orchestrator, *fakeBotAPI) {
	t.Helper()

	repo, err := repository.NewFileStorage(filepath.Join(t.TempDir(), "bot_data.json"))
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	svc := channelservice.New(repo)
	if _, err := svc.Register(42, -100, "News", "newschan", domain.ChatKindChannel); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if mutate != nil {
		if _, err := svc.Update(42, -100, mutate); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	api := &fakeBotAPI{}
	o := NewOrchestrator(api, svc, nil, nil)
	o.reactionDelay = 0
	return o, api
}

func textPost(text string) *models.Message {
	return &models.Message{
		ID:   7,
		Chat: models.Chat{ID: -100},
		Text: text,
	}
}

func TestProcessPostUnregisteredChatIgnored(t *testing.T) {
	o, api := newTestOrchestrator(t, nil)

	msg := textPost("hello")
	msg.Chat.ID = -999
	if err := o.ProcessPost(context.Background(), msg); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}
	if len(api.editTexts) != 0 || len(api.reactions) != 0 {
		t.Error("unregistered chat must pass through untouched")
	}
}

func TestProcessPostNoActiveRulesNoEdit(t *testing.T) {
	o, api := newTestOrchestrator(t, nil)

	if err := o.ProcessPost(context.Background(), textPost("hello")); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}
	if len(api.editTexts) != 0 {
		t.Error("no rules active, no edit expected")
	}
}

func TestProcessPostAppendsCaption(t *testing.T) {
	o, api := newTestOrchestrator(t, func(cfg *domain.ChannelConfig) {
		cfg.AutoCaption.Status = domain.RuleStatusActive
		cfg.AutoCaption.Config = "Follow us"
		cfg.AutoCaption.Entities = []domain.CaptionEntity{{Type: "bold", Offset: 0, Length: 6}}
	})

	if err := o.ProcessPost(context.Background(), textPost("big news")); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}

	if len(api.editTexts) != 1 {
		t.Fatalf("edit calls = %d, want 1", len(api.editTexts))
	}
	p := api.editTexts[0]
	if p.Text != "big news\n\nFollow us" {
		t.Errorf("text = %q", p.Text)
	}
	if len(p.Entities) != 1 || p.Entities[0].Offset != 10 {
		t.Errorf("entities = %+v, want offset 10", p.Entities)
	}
}

func TestProcessPostAttachesButtons(t *testing.T) {
	o, api := newTestOrchestrator(t, func(cfg *domain.ChannelConfig) {
		cfg.AutoButton.Status = domain.RuleStatusActive
		cfg.AutoButton.Config = "Site - example.com"
	})

	if err := o.ProcessPost(context.Background(), textPost("hello")); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}
	if len(api.editTexts) != 1 {
		t.Fatalf("edit calls = %d, want 1", len(api.editTexts))
	}
	markup, ok := api.editTexts[0].ReplyMarkup.(*models.InlineKeyboardMarkup)
	if !ok || len(markup.InlineKeyboard) != 1 {
		t.Errorf("reply markup = %+v", api.editTexts[0].ReplyMarkup)
	}
}

func TestProcessPostSuppressesIdenticalEdit(t *testing.T) {
	o, api := newTestOrchestrator(t, func(cfg *domain.ChannelConfig) {
		cfg.AutoButton.Status = domain.RuleStatusActive
		cfg.AutoButton.Config = "Site - example.com"
	})

	// The post already carries exactly the keyboard the rule builds.
	msg := textPost("hello")
	msg.ReplyMarkup = &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{{Text: "Site", URL: "http://example.com"}},
	}}

	if err := o.ProcessPost(context.Background(), msg); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}
	if len(api.editTexts) != 0 {
		t.Error("identical content must suppress the edit call")
	}
}

func TestProcessPostKeepsExistingKeyboardOnEdit(t *testing.T) {
	o, api := newTestOrchestrator(t, func(cfg *domain.ChannelConfig) {
		cfg.AutoCaption.Status = domain.RuleStatusActive
		cfg.AutoCaption.Config = "tail"
	})

	// Only the caption rule fires; the post's own buttons must survive.
	own := &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{{Text: "Vote", CallbackData: "vote_1"}},
	}}
	msg := textPost("hello")
	msg.ReplyMarkup = own

	if err := o.ProcessPost(context.Background(), msg); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}
	if len(api.editTexts) != 1 {
		t.Fatalf("edit calls = %d, want 1", len(api.editTexts))
	}
	markup, ok := api.editTexts[0].ReplyMarkup.(*models.InlineKeyboardMarkup)
	if !ok || markup == nil {
		t.Fatalf("edit dropped the post's own keyboard: ReplyMarkup = %v", api.editTexts[0].ReplyMarkup)
	}
	if len(markup.InlineKeyboard) != 1 || markup.InlineKeyboard[0][0].CallbackData != "vote_1" {
		t.Errorf("keyboard = %+v, want the original vote_1 button", markup.InlineKeyboard)
	}
}

func TestProcessPostButtonRuleReplacesExistingKeyboard(t *testing.T) {
	o, api := newTestOrchestrator(t, func(cfg *domain.ChannelConfig) {
		cfg.AutoButton.Status = domain.RuleStatusActive
		cfg.AutoButton.Config = "Site - example.com"
	})

	msg := textPost("hello")
	msg.ReplyMarkup = &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{{Text: "Old", URL: "http://old.example.com"}},
	}}

	if err := o.ProcessPost(context.Background(), msg); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}
	if len(api.editTexts) != 1 {
		t.Fatalf("edit calls = %d, want 1", len(api.editTexts))
	}
	markup, ok := api.editTexts[0].ReplyMarkup.(*models.InlineKeyboardMarkup)
	if !ok || len(markup.InlineKeyboard) != 1 {
		t.Fatalf("reply markup = %+v", api.editTexts[0].ReplyMarkup)
	}
	if markup.InlineKeyboard[0][0].Text != "Site" {
		t.Errorf("button = %+v, want the configured Site button", markup.InlineKeyboard[0][0])
	}
}

func TestProcessPostTextWatermarkMarker(t *testing.T) {
	o, api := newTestOrchestrator(t, func(cfg *domain.ChannelConfig) {
		cfg.AutoWatermark.Status = domain.RuleStatusActive
		cfg.AutoWatermark.Kind = domain.WatermarkKindText
		cfg.AutoWatermark.Config = "brand"
	})

	if err := o.ProcessPost(context.Background(), textPost("hello")); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}
	if len(api.editTexts) != 1 {
		t.Fatalf("edit calls = %d, want 1", len(api.editTexts))
	}
	if api.editTexts[0].Text != "hello\n\n🔖 brand" {
		t.Errorf("text = %q", api.editTexts[0].Text)
	}
}

func TestProcessPostReaction(t *testing.T) {
	o, api := newTestOrchestrator(t, func(cfg *domain.ChannelConfig) {
		cfg.AutoReaction.Status = domain.RuleStatusActive
	})

	if err := o.ProcessPost(context.Background(), textPost("hello")); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}
	if len(api.reactions) != 1 {
		t.Fatalf("reaction calls = %d, want 1", len(api.reactions))
	}
	r := api.reactions[0].Reaction
	if len(r) != 1 || r[0].ReactionTypeEmoji == nil || r[0].ReactionTypeEmoji.Emoji != "👍" {
		t.Errorf("reaction = %+v, want 👍", r)
	}
}

func TestNotifyFailureTruncatesOnRuneBoundary(t *testing.T) {
	o, api := newTestOrchestrator(t, nil)

	cfg := domain.NewChannelConfig(-100, "News", "newschan", domain.ChatKindChannel)
	cause := stderrors.New(strings.Repeat("界", 100))
	o.notifyFailure(context.Background(), &cfg, textPost("hello"), cause)

	if len(api.sent) != 1 {
		t.Fatalf("notices sent = %d, want 1", len(api.sent))
	}
	text := api.sent[0].Text
	if !utf8.ValidString(text) {
		t.Errorf("failure notice is not valid UTF-8: %q", text)
	}
	if !strings.Contains(text, "Details: 界") {
		t.Errorf("detail section missing: %q", text)
	}
}

func TestProcessPostCaptionMessageUsesCaptionEdit(t *testing.T) {
	o, api := newTestOrchestrator(t, func(cfg *domain.ChannelConfig) {
		cfg.AutoCaption.Status = domain.RuleStatusActive
		cfg.AutoCaption.Config = "tail"
	})

	msg := &models.Message{
		ID:      9,
		Chat:    models.Chat{ID: -100},
		Caption: "photo caption",
		Photo:   []models.PhotoSize{{FileID: "p1"}},
	}
	if err := o.ProcessPost(context.Background(), msg); err != nil {
		t.Fatalf("ProcessPost: %v", err)
	}

	if len(api.editTexts) != 0 {
		t.Error("media post must not use the text edit")
	}
	if len(api.editCaptions) != 1 {
		t.Fatalf("caption edits = %d, want 1", len(api.editCaptions))
	}
	if api.editCaptions[0].Caption != "photo caption\n\ntail" {
		t.Errorf("caption = %q", api.editCaptions[0].Caption)
	}
}
