// internal/layout/field.go
package layout

import (
	"fmt"
	"strings"
)

// Field identifies one logical display field of a mode layout.
type Field uint8

const (
	ScratchpadStr1 Field = iota
	ScratchpadStr2
	ScratchpadNumber
	OptionCue0
	OptionCue1
	OptionCue2
	OptionCue3
	OptionCue4
	OptionStr0
	OptionStr1
	OptionStr2
	OptionStr3
	OptionStr4
	Comm1
	Comm2

	// FieldCount is the number of fields; it sizes every layout table.
	FieldCount
)

// NumOptions is the number of option cue/string pairs (ids 0..4).
const NumOptions = 5

var fieldNames = [FieldCount]string{
	ScratchpadStr1:   "scratchpad_str1",
	ScratchpadStr2:   "scratchpad_str2",
	ScratchpadNumber: "scratchpad_number",
	OptionCue0:       "option_cue0",
	OptionCue1:       "option_cue1",
	OptionCue2:       "option_cue2",
	OptionCue3:       "option_cue3",
	OptionCue4:       "option_cue4",
	OptionStr0:       "option_str0",
	OptionStr1:       "option_str1",
	OptionStr2:       "option_str2",
	OptionStr3:       "option_str3",
	OptionStr4:       "option_str4",
	Comm1:            "comm1",
	Comm2:            "comm2",
}

func (f Field) String() string {
	if f < FieldCount {
		return fieldNames[f]
	}
	return fmt.Sprintf("field(%d)", uint8(f))
}

// OptionCue returns the cue field of option id (0..4).
// Any other id is a programming error.
func OptionCue(id int) Field {
	if id < 0 || id >= NumOptions {
		panic(fmt.Sprintf("layout: option id %d out of range", id))
	}
	return OptionCue0 + Field(id)
}

// OptionStr returns the string field of option id (0..4).
func OptionStr(id int) Field {
	if id < 0 || id >= NumOptions {
		panic(fmt.Sprintf("layout: option id %d out of range", id))
	}
	return OptionStr0 + Field(id)
}

// ParseField resolves a script field name such as "option_cue3".
func ParseField(s string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for f, name := range fieldNames {
		if name == key {
			return Field(f), nil
		}
	}
	return 0, fmt.Errorf("layout: unknown field %q", s)
}
