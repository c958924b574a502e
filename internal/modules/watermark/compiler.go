package watermark

import (
	"os"
	"strconv"
	"strings"

	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
)

// Base font size for 100% at 1080p.
const baseFontSize = 48

// waveAmplitude is the vertical travel of the wave effect in pixels.
const waveAmplitude = 20

var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"C:/Windows/Fonts/arial.ttf",
}

// FindFontFile returns the first available bold font, or "" to let
// FFmpeg fall back to its default font.
func FindFontFile() string {
	for _, p := range fontCandidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// drawtextPositions maps the placement grid to x/y expressions in
// drawtext geometry variables.
var drawtextPositions = map[domain.Position][2]string{
	domain.PositionTopLeft:      {"10", "10"},
	domain.PositionTopCenter:    {"(w-text_w)/2", "10"},
	domain.PositionTopRight:     {"w-text_w-10", "10"},
	domain.PositionMidLeft:      {"10", "(h-text_h)/2"},
	domain.PositionCenter:       {"(w-text_w)/2", "(h-text_h)/2"},
	domain.PositionMidRight:     {"w-text_w-10", "(h-text_h)/2"},
	domain.PositionBottomLeft:   {"10", "h-text_h-10"},
	domain.PositionBottomCenter: {"(w-text_w)/2", "h-text_h-10"},
	domain.PositionBottomRight:  {"w-text_w-10", "h-text_h-10"},
}

// overlayPositions maps the placement grid to x/y expressions in
// overlay geometry variables.
var overlayPositions = map[domain.Position][2]string{
	domain.PositionTopLeft:      {"10", "10"},
	domain.PositionTopCenter:    {"(main_w-overlay_w)/2", "10"},
	domain.PositionTopRight:     {"main_w-overlay_w-10", "10"},
	domain.PositionMidLeft:      {"10", "(main_h-overlay_h)/2"},
	domain.PositionCenter:       {"(main_w-overlay_w)/2", "(main_h-overlay_h)/2"},
	domain.PositionMidRight:     {"main_w-overlay_w-10", "(main_h-overlay_h)/2"},
	domain.PositionBottomLeft:   {"10", "main_h-overlay_h-10"},
	domain.PositionBottomCenter: {"(main_w-overlay_w)/2", "main_h-overlay_h-10"},
	domain.PositionBottomRight:  {"main_w-overlay_w-10", "main_h-overlay_h-10"},
}

func drawtextPos(p domain.Position) (string, string) {
	if xy, ok := drawtextPositions[p]; ok {
		return xy[0], xy[1]
	}
	xy := drawtextPositions[domain.PositionBottomRight]
	return xy[0], xy[1]
}

func overlayPos(p domain.Position) (string, string) {
	if xy, ok := overlayPositions[p]; ok {
		return xy[0], xy[1]
	}
	xy := overlayPositions[domain.PositionBottomRight]
	return xy[0], xy[1]
}

// FontSize converts a 1-100 size percentage to pixels, never below 12.
func FontSize(size int) int {
	px := baseFontSize * size / 100
	if px < 12 {
		return 12
	}
	return px
}

// Alpha converts a 0-95 transparency percentage to an FFmpeg opacity.
func Alpha(transparency int) float64 {
	return float64(100-transparency) / 100
}

// clampSpeed keeps effect speed in the 1-100 range. Stored documents can
// carry out-of-range values and a zero would divide the sweep period.
func clampSpeed(v int) int {
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}

// escapeText escapes drawtext metacharacters in user-supplied text.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, ":", `\:`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}

func escapeFontPath(s string) string {
	s = strings.ReplaceAll(s, `\`, "/")
	s = strings.ReplaceAll(s, ":", `\:`)
	return s
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// CompileText builds the drawtext graph for a text watermark. Effects
// apply only to video; images always get the static placement. The
// result is deterministic for equal inputs.
func CompileText(r domain.WatermarkRule, isVideo bool, fontFile string) *Graph {
	text := escapeText(r.Config)
	alpha := Alpha(r.Transparency)
	size := FontSize(r.Size)
	color := string(r.Color)
	if color == "" {
		color = string(domain.ColorWhite)
	}

	base := []Param{}
	if fontFile != "" {
		base = append(base, Param{"fontfile", "'" + escapeFontPath(fontFile) + "'"})
	}
	base = append(base, Param{"text", "'" + text + "'"})

	colored := append(append([]Param{}, base...),
		Param{"fontcolor", color + "@" + fnum(alpha)},
		Param{"fontsize", strconv.Itoa(size)},
	)

	posX, posY := drawtextPos(r.Position)

	var params []Param
	if isVideo && r.Effect != domain.EffectNone {
		// Higher effect speed means a slower sweep.
		speed := fnum(100 / float64(clampSpeed(r.EffectSpeed)))

		switch r.Effect {
		case domain.EffectScrollLeft:
			params = append(colored,
				Param{"x", `w-mod(t*` + speed + `*w\,w+text_w)`},
				Param{"y", "(h-text_h)/2"},
			)
		case domain.EffectScrollRight:
			params = append(colored,
				Param{"x", `-text_w+mod(t*` + speed + `*w\,w+text_w)`},
				Param{"y", "(h-text_h)/2"},
			)
		case domain.EffectScrollUp:
			params = append(colored,
				Param{"x", "(w-text_w)/2"},
				Param{"y", `h-mod(t*` + speed + `*h\,h+text_h)`},
			)
		case domain.EffectScrollDown:
			params = append(colored,
				Param{"x", "(w-text_w)/2"},
				Param{"y", `-text_h+mod(t*` + speed + `*h\,h+text_h)`},
			)
		case domain.EffectFade:
			// abs(sin(t)) oscillates between 0 and 1.
			expr := "'abs(sin(t*" + speed + "))*" + fnum(alpha) + "'"
			params = append(append([]Param{}, base...),
				Param{"fontcolor", color},
				Param{"alpha", expr},
				Param{"fontsize", strconv.Itoa(size)},
				Param{"x", posX},
				Param{"y", posY},
			)
		case domain.EffectPulse:
			// Pulse between 50% and 100% of the configured alpha.
			a := fnum(alpha)
			expr := "'(" + a + "*0.5)+(" + a + "*0.5*abs(sin(t*" + speed + ")))'"
			params = append(append([]Param{}, base...),
				Param{"fontcolor", color},
				Param{"alpha", expr},
				Param{"fontsize", strconv.Itoa(size)},
				Param{"x", posX},
				Param{"y", posY},
			)
		case domain.EffectWave:
			params = append(colored,
				Param{"x", posX},
				Param{"y", "((h-text_h)/2)+" + strconv.Itoa(waveAmplitude) + "*sin(t*" + speed + ")"},
			)
		default:
			params = append(colored, Param{"x", posX}, Param{"y", posY})
		}
	} else {
		params = append(colored, Param{"x", posX}, Param{"y", posY})
	}

	return &Graph{Chains: []Chain{{
		Filters: []Filter{{Name: "drawtext", Params: params}},
	}}}
}

// CompileOverlay builds the two-chain graph for an image or animation
// watermark: scale/rotate/alpha the overlay input, then composite it
// over the main stream.
func CompileOverlay(r domain.WatermarkRule, isVideo bool) *Graph {
	alpha := Alpha(r.Transparency)

	prep := []Filter{
		{Name: "scale", Params: []Param{
			{Value: "iw*" + fnum(float64(r.Size)/100)},
			{Value: "-1"},
		}},
		{Name: "format", Params: []Param{{Value: "rgba"}}},
	}
	if r.Rotation != 0 {
		radians := float64(r.Rotation) * 3.14159 / 180
		prep = append(prep, Filter{Name: "rotate", Params: []Param{
			{Value: fnum(radians)},
			{Key: "c", Value: "none"},
			{Key: "ow", Value: "'hypot(iw,ih)'"},
			{Key: "oh", Value: "ow"},
		}})
	}
	prep = append(prep, Filter{Name: "colorchannelmixer", Params: []Param{
		{Key: "aa", Value: fnum(alpha)},
	}})

	var x, y string
	moving := false
	if isVideo {
		// 1-100 maps to 0.02-2.0 screens per second, times 10.
		coeff := fnum(float64(clampSpeed(r.EffectSpeed)) / 50 * 100)
		switch r.Effect {
		case domain.EffectMoveDiagonalDr:
			x, y = "t*"+coeff+"*W/10", "t*"+coeff+"*H/10"
			moving = true
		case domain.EffectMoveDiagonalDl:
			x, y = "W-overlay_w-t*"+coeff+"*W/10", "t*"+coeff+"*H/10"
			moving = true
		case domain.EffectMoveDiagonalUr:
			x, y = "t*"+coeff+"*W/10", "H-overlay_h-t*"+coeff+"*H/10"
			moving = true
		case domain.EffectMoveDiagonalUl:
			x, y = "W-overlay_w-t*"+coeff+"*W/10", "H-overlay_h-t*"+coeff+"*H/10"
			moving = true
		}
	}
	if !moving {
		x, y = overlayPos(r.Position)
	}

	overlayParams := []Param{{Value: x}, {Value: y}}
	if isVideo {
		overlayParams = append(overlayParams, Param{Key: "shortest", Value: "1"})
	}

	return &Graph{Chains: []Chain{
		{Inputs: []string{"[1:v]"}, Filters: prep, Output: "[wm]"},
		{
			Inputs:  []string{"[0:v]", "[wm]"},
			Filters: []Filter{{Name: "overlay", Params: overlayParams}},
		},
	}}
}

// VideoCRF converts a 1-100 quality percentage to an x264 CRF for the
// drawtext path.
func VideoCRF(quality int) int {
	return int(51 - float64(quality)*0.51)
}

// OverlayVideoCRF converts quality to CRF for the overlay path, clamped
// to the valid 0-51 range.
func OverlayVideoCRF(quality int) int {
	crf := 51 - quality*51/100
	if crf < 0 {
		return 0
	}
	if crf > 51 {
		return 51
	}
	return crf
}

// ImageQScale converts quality to the MJPEG -q:v scale (lower is
// better) for the drawtext path.
func ImageQScale(quality int) int {
	return int(float64(100-quality) * 0.31)
}

// OverlayImageQScale converts quality to -q:v for the overlay path,
// clamped to the encoder's 1-31 range.
func OverlayImageQScale(quality int) int {
	q := (100 - quality) * 31 / 100
	if q < 1 {
		return 1
	}
	if q > 31 {
		return 31
	}
	return q
}
