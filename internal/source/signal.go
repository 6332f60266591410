package source

import (
	"strings"
	"unicode/utf8"
)

// tapbackPrefixes are the verbs iMessage uses when a reaction is rendered
// as a text row.
var tapbackPrefixes = []string{
	"Loved",
	"Liked",
	"Disliked",
	"Laughed at",
	"Emphasized",
	"Questioned",
}

// IsTapback reports whether text is a rendered reaction row rather than a
// typed message. Both straight and curly opening quotes appear in the wild.
func IsTapback(text string) bool {
	for _, p := range tapbackPrefixes {
		rest, ok := strings.CutPrefix(text, p+" ")
		if !ok {
			continue
		}
		if strings.HasPrefix(rest, `"`) || strings.HasPrefix(rest, "“") {
			return true
		}
	}
	return false
}

// HasEmoji reports whether text contains at least one emoji rune.
func HasEmoji(text string) bool {
	for _, r := range text {
		if isEmojiRune(r) {
			return true
		}
	}
	return false
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols and pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // extended pictographs
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	}
	return false
}

// Signals reduces message text to the coarse fields carried on an event.
// Tapback rows carry no typed content and count zero.
func Signals(text string) (charLen int, hasEmoji bool) {
	text = strings.TrimSpace(text)
	if text == "" || IsTapback(text) {
		return 0, false
	}
	return utf8.RuneCountInString(text), HasEmoji(text)
}
