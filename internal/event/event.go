// internal/event/event.go
package event

import (
	"fmt"
	"strings"
)

// Kind tags an input event.
type Kind uint8

const (
	None Kind = iota
	KeyPress
	KeyRelease
	EncoderCWPress
	EncoderCWRelease
	EncoderCCWPress
	EncoderCCWRelease
)

var kindNames = map[Kind]string{
	None:              "none",
	KeyPress:          "key_press",
	KeyRelease:        "key_release",
	EncoderCWPress:    "enc_cw_press",
	EncoderCWRelease:  "enc_cw_release",
	EncoderCCWPress:   "enc_ccw_press",
	EncoderCCWRelease: "enc_ccw_release",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsKey reports whether k is a keypad event.
func (k Kind) IsKey() bool { return k == KeyPress || k == KeyRelease }

// IsEncoder reports whether k is a rotary encoder event.
func (k Kind) IsEncoder() bool { return k >= EncoderCWPress && k <= EncoderCCWRelease }

// IsRelease reports whether k is the release half of a key or encoder event.
func (k Kind) IsRelease() bool {
	return k == KeyRelease || k == EncoderCWRelease || k == EncoderCCWRelease
}

// IsCCW reports whether k is a counterclockwise encoder event.
func (k Kind) IsCCW() bool { return k == EncoderCCWPress || k == EncoderCCWRelease }

// ParseKind resolves a script event kind name.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == key && k != None {
			return k, nil
		}
	}
	return None, fmt.Errorf("event: unknown kind %q", s)
}

// Input is one keypad or encoder event.
// Keypad and Key are used by key kinds, Encoder by encoder kinds.
type Input struct {
	Kind    Kind
	Keypad  uint8
	Key     uint8
	Encoder uint8
}

// Key builds a keypad event.
func Key(press bool, keypad, key uint8) Input {
	k := KeyRelease
	if press {
		k = KeyPress
	}
	return Input{Kind: k, Keypad: keypad, Key: key}
}

// Encoder builds an encoder event.
func Encoder(cw, press bool, encoder uint8) Input {
	var k Kind
	switch {
	case cw && press:
		k = EncoderCWPress
	case cw:
		k = EncoderCWRelease
	case press:
		k = EncoderCCWPress
	default:
		k = EncoderCCWRelease
	}
	return Input{Kind: k, Encoder: encoder}
}
