package domain

// NotSet marks a rule whose content has not been configured yet.
const NotSet = "Not set"

// ChannelConfig holds a managed chat and its automation rules.
type ChannelConfig struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Handle string   `json:"username"`
	Kind   ChatKind `json:"type"`

	AutoButton    ButtonRule    `json:"auto_button"`
	AutoCaption   CaptionRule   `json:"auto_captions"`
	AutoReaction  ReactionRule  `json:"auto_reactions"`
	AutoWatermark WatermarkRule `json:"auto_watermark"`
}

// ButtonRule attaches an inline keyboard to new posts.
type ButtonRule struct {
	Status RuleStatus `json:"status"`
	Config string     `json:"config"`
}

// CaptionRule appends a text block (with entities) to new posts.
type CaptionRule struct {
	Status   RuleStatus      `json:"status"`
	Config   string          `json:"config"`
	Entities []CaptionEntity `json:"entities,omitempty"`
}

// ReactionRule marks new posts with an emoji reaction.
type ReactionRule struct {
	Status RuleStatus `json:"status"`
}

// WatermarkRule stamps media in new posts with a text or image overlay.
type WatermarkRule struct {
	Status       RuleStatus    `json:"status"`
	Kind         WatermarkKind `json:"type"`
	Config       string        `json:"config"`
	Position     Position      `json:"position"`
	Size         int           `json:"size"`
	Transparency int           `json:"transparency"`
	Quality      int           `json:"quality"`
	Rotation     int           `json:"rotation"`
	Color        Color         `json:"color"`
	Effect       Effect        `json:"effect"`
	EffectSpeed  int           `json:"effect_speed"`
	FileID       string        `json:"file_id,omitempty"`
	FilePath     string        `json:"file_path,omitempty"`
}

// CaptionEntity is a value-typed Telegram message entity stored with a
// caption rule. Offsets are in UTF-16 code units.
type CaptionEntity struct {
	Type          string `json:"type"`
	Offset        int    `json:"offset"`
	Length        int    `json:"length"`
	URL           string `json:"url,omitempty"`
	Language      string `json:"language,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// ShiftedBy returns a copy of the entity with its offset moved by n
// UTF-16 code units. The receiver is not modified.
func (e CaptionEntity) ShiftedBy(n int) CaptionEntity {
	e.Offset += n
	return e
}

// NewChannelConfig builds a registry entry for a freshly registered chat
// with every rule inactive and watermark parameters at their defaults.
func NewChannelConfig(id int64, title, handle string, kind ChatKind) ChannelConfig {
	return ChannelConfig{
		ID:     id,
		Title:  title,
		Handle: handle,
		Kind:   kind,
		AutoButton: ButtonRule{
			Status: RuleStatusInactive,
			Config: NotSet,
		},
		AutoCaption: CaptionRule{
			Status: RuleStatusInactive,
			Config: NotSet,
		},
		AutoReaction: ReactionRule{
			Status: RuleStatusInactive,
		},
		AutoWatermark: WatermarkRule{
			Status:       RuleStatusInactive,
			Kind:         WatermarkKindText,
			Config:       NotSet,
			Position:     PositionBottomRight,
			Size:         50,
			Transparency: 50,
			Quality:      75,
			Rotation:     0,
			Color:        ColorWhite,
			Effect:       EffectNone,
			EffectSpeed:  50,
		},
	}
}

// Configured reports whether the rule has real content to apply.
func (r ButtonRule) Configured() bool {
	return r.Config != "" && r.Config != NotSet
}

// Configured reports whether the rule has real content to apply.
func (r CaptionRule) Configured() bool {
	return r.Config != "" && r.Config != NotSet
}

// Configured reports whether the watermark has content: text for a text
// watermark, a stored file for image/animation.
func (r WatermarkRule) Configured() bool {
	switch r.Kind {
	case WatermarkKindText:
		return r.Config != "" && r.Config != NotSet
	case WatermarkKindImage, WatermarkKindAnimation:
		return r.FileID != ""
	default:
		return false
	}
}

// Active reports whether the rule is switched on.
func (r ButtonRule) Active() bool    { return r.Status == RuleStatusActive }
func (r CaptionRule) Active() bool   { return r.Status == RuleStatusActive }
func (r ReactionRule) Active() bool  { return r.Status == RuleStatusActive }
func (r WatermarkRule) Active() bool { return r.Status == RuleStatusActive }
