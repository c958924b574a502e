//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package conversation

import (
	"strconv"
	"strings"
	"sync"
)

// StepKind identifies what kind of input the bot is waiting for
// from a user.
// ENUM(button_config,caption_config,watermark_content,watermark_size,watermark_transparency,watermark_quality,watermark_rotation,effect_speed)
type StepKind string

// PendingStep is the typed state of a configuration conversation: what
// input is expected and which channel it configures.
type PendingStep struct {
	Kind      StepKind
	ChannelID int64
}

// Manager tracks at most one pending step per user. Setting a new step
// replaces the previous one, so a user can never be stuck mid-flow.
type Manager struct {
	mu    sync.RWMutex
	steps map[int64]PendingStep
}

func NewManager() *Manager {
	return &Manager{steps: make(map[int64]PendingStep)}
}

// Expect arms a pending step for the user.
func (m *Manager) Expect(userID int64, step PendingStep) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps[userID] = step
}

// Pending returns the user's armed step, if any.
func (m *Manager) Pending(userID int64) (PendingStep, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	step, ok := m.steps[userID]
	return step, ok
}

// Clear disarms the user's step. Numeric steps are cleared after a
// single attempt whether or not the input validated.
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.steps, userID)
}

// NumericRange returns the inclusive bounds for numeric steps. ok is
// false for free-form steps.
func (x StepKind) NumericRange() (min, max int, ok bool) {
	switch x {
	case StepKindWatermarkSize:
		return 1, 100, true
	case StepKindWatermarkTransparency:
		return 0, 95, true
	case StepKindWatermarkQuality:
		return 1, 100, true
	case StepKindWatermarkRotation:
		return 0, 360, true
	case StepKindEffectSpeed:
		return 1, 100, true
	default:
		return 0, 0, false
	}
}

// ParseNumber parses and range-checks user input for a numeric step.
func (x StepKind) ParseNumber(text string) (int, bool) {
	min, max, ok := x.NumericRange()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}
