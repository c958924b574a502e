package post

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildKeyboardRowsAndSegments(t *testing.T) {
	kb := BuildKeyboard("Site - example.com && Docs - https://docs.example.com\nChat - t.me/somechat")
	if kb == nil {
		t.Fatal("expected a keyboard")
	}
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, want 2", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[0]) != 2 || len(kb.InlineKeyboard[1]) != 1 {
		t.Fatalf("row sizes = %d,%d, want 2,1", len(kb.InlineKeyboard[0]), len(kb.InlineKeyboard[1]))
	}

	first := kb.InlineKeyboard[0][0]
	if first.Text != "Site" || first.URL != "http://example.com" {
		t.Errorf("bare host not prefixed: %+v", first)
	}
	second := kb.InlineKeyboard[0][1]
	if second.URL != "https://docs.example.com" {
		t.Errorf("existing scheme must be kept: %+v", second)
	}
	third := kb.InlineKeyboard[1][0]
	if third.URL != "t.me/somechat" {
		t.Errorf("t.me targets must be kept as-is: %+v", third)
	}
}

func TestBuildKeyboardPopup(t *testing.T) {
	kb := BuildKeyboard("Info - popup: Delivery takes 3 days")
	if kb == nil || len(kb.InlineKeyboard) != 1 || len(kb.InlineKeyboard[0]) != 1 {
		t.Fatalf("unexpected keyboard shape: %+v", kb)
	}

	btn := kb.InlineKeyboard[0][0]
	if btn.Text != "Info" {
		t.Errorf("label = %q", btn.Text)
	}
	if btn.URL != "" {
		t.Errorf("popup button must not carry a URL: %q", btn.URL)
	}
	if btn.CallbackData != PopupPrefix+"Delivery takes 3 days" {
		t.Errorf("callback data = %q", btn.CallbackData)
	}
}

func TestBuildKeyboardPopupTruncated(t *testing.T) {
	long := strings.Repeat("é", 100)
	kb := BuildKeyboard("Info - popup: " + long)
	data := kb.InlineKeyboard[0][0].CallbackData
	if len(data) > 64 {
		t.Errorf("callback data %d bytes, exceeds 64", len(data))
	}
	if !strings.HasPrefix(data, PopupPrefix) {
		t.Errorf("callback data missing prefix: %q", data)
	}
	// Truncation must not split a multi-byte rune.
	if !utf8.ValidString(data) {
		t.Errorf("callback data has a broken rune: %q", data)
	}
}

func TestBuildKeyboardDropsMalformedSegments(t *testing.T) {
	kb := BuildKeyboard("no separator here\nOk - example.com && also malformed")
	if kb == nil {
		t.Fatal("expected a keyboard")
	}
	if len(kb.InlineKeyboard) != 1 || len(kb.InlineKeyboard[0]) != 1 {
		t.Fatalf("malformed segments must be dropped: %+v", kb.InlineKeyboard)
	}
}

func TestBuildKeyboardAllMalformed(t *testing.T) {
	if kb := BuildKeyboard("nothing useful\nat all"); kb != nil {
		t.Errorf("want nil keyboard, got %+v", kb)
	}
}
