package post

import (
	"unicode/utf16"

	"github.com/go-telegram/bot/models"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
)

// captionSeparator sits between the original text and the appended
// caption block.
const captionSeparator = "\n\n"

// UTF16Len returns the length of s in UTF-16 code units, the unit the
// Bot API uses for entity offsets.
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// AppendCaption appends the configured caption block to text and
// returns the combined text plus the combined entity list. Appended
// entities are shifted by the UTF-16 length of the original text plus
// the separator; the rule's stored entities are never mutated. An empty
// text means the post had no caption, so the block stands alone with
// its entities at their stored offsets.
func AppendCaption(text string, entities []domain.CaptionEntity, rule domain.CaptionRule) (string, []domain.CaptionEntity) {
	if text == "" {
		return rule.Config, append([]domain.CaptionEntity(nil), rule.Entities...)
	}

	shift := UTF16Len(text) + UTF16Len(captionSeparator)
	combined := append([]domain.CaptionEntity(nil), entities...)
	for _, e := range rule.Entities {
		combined = append(combined, e.ShiftedBy(shift))
	}

	return text + captionSeparator + rule.Config, combined
}

// AppendTextWatermark appends the bookmark-marked watermark text used
// for plain text posts.
func AppendTextWatermark(text, watermark string) string {
	if text == "" {
		return "🔖 " + watermark
	}
	return text + "\n\n🔖 " + watermark
}

// EntitiesEqual reports whether two entity lists are identical, for
// edit suppression.
func EntitiesEqual(a, b []domain.CaptionEntity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ToModelEntities converts stored entities to Bot API entities.
func ToModelEntities(entities []domain.CaptionEntity) []models.MessageEntity {
	if len(entities) == 0 {
		return nil
	}
	out := make([]models.MessageEntity, len(entities))
	for i, e := range entities {
		out[i] = models.MessageEntity{
			Type:          models.MessageEntityType(e.Type),
			Offset:        e.Offset,
			Length:        e.Length,
			URL:           e.URL,
			Language:      e.Language,
			CustomEmojiID: e.CustomEmojiID,
		}
	}
	return out
}

// FromModelEntities converts Bot API entities to the stored value form.
func FromModelEntities(entities []models.MessageEntity) []domain.CaptionEntity {
	if len(entities) == 0 {
		return nil
	}
	out := make([]domain.CaptionEntity, len(entities))
	for i, e := range entities {
		out[i] = domain.CaptionEntity{
			Type:          string(e.Type),
			Offset:        e.Offset,
			Length:        e.Length,
			URL:           e.URL,
			Language:      e.Language,
			CustomEmojiID: e.CustomEmojiID,
		}
	}
	return out
}
