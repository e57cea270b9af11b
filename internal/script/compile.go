// internal/script/compile.go
package script

import (
	"errors"
	"fmt"

	"github.com/tamzrod/cockpit-panel/internal/event"
	"github.com/tamzrod/cockpit-panel/internal/indicator"
	"github.com/tamzrod/cockpit-panel/internal/layout"
)

type opKind uint8

const (
	opMode opKind = iota + 1
	opName
	opError
	opScratchpad
	opField
	opIndicator
	opEvent
)

// Op is one resolved, mode-checked step.
type Op struct {
	kind  opKind
	mode  layout.Mode
	text  string
	field layout.Field
	id    indicator.ID
	on    bool
	in    event.Input
	out   event.Output
}

// Compile resolves every step and checks it is legal for the mode active
// at that point, starting from initial. Panel preconditions are enforced
// here so a bad script is an error, never a panic.
func Compile(s *Script, initial layout.Mode) ([]Op, error) {
	ops := make([]Op, 0, len(s.Steps))
	mode := initial

	for i, st := range s.Steps {
		op, err := compileStep(st)
		if err != nil {
			return nil, fmt.Errorf("script: step %d: %w", i+1, err)
		}

		switch op.kind {
		case opMode:
			mode = op.mode
		case opField:
			if !layout.HasFields(mode) {
				return nil, fmt.Errorf("script: step %d: field %s not available in mode %s", i+1, op.field, mode)
			}
		case opEvent:
			if mode != layout.Debug {
				return nil, fmt.Errorf("script: step %d: events need debug mode, active mode is %s", i+1, mode)
			}
		}

		ops = append(ops, op)
	}
	return ops, nil
}

func compileStep(st Step) (Op, error) {
	var (
		op  Op
		set int
	)

	if st.Mode != "" {
		set++
		m, err := layout.ParseMode(st.Mode)
		if err != nil {
			return op, err
		}
		op = Op{kind: opMode, mode: m}
	}
	if st.Name != nil {
		set++
		op = Op{kind: opName, text: *st.Name}
	}
	if st.Error != nil {
		set++
		op = Op{kind: opError, text: *st.Error}
	}
	if st.Scratchpad != nil {
		set++
		op = Op{kind: opScratchpad, text: *st.Scratchpad}
	}
	if st.Field != "" {
		set++
		f, err := layout.ParseField(st.Field)
		if err != nil {
			return op, err
		}
		if st.Text == nil {
			return op, fmt.Errorf("field %s: text required", f)
		}
		op = Op{kind: opField, field: f, text: *st.Text}
	}
	if st.Indicator != "" {
		set++
		id, err := indicator.Parse(st.Indicator)
		if err != nil {
			return op, err
		}
		if st.On == nil {
			return op, fmt.Errorf("indicator %s: on required", id)
		}
		op = Op{kind: opIndicator, id: id, on: *st.On}
	}
	if st.Event != nil {
		set++
		in, out, err := compileEvent(*st.Event, st.Dx)
		if err != nil {
			return op, err
		}
		op = Op{kind: opEvent, in: in, out: out}
	}

	switch {
	case st.Text != nil && st.Field == "":
		return op, errors.New("text without field")
	case st.On != nil && st.Indicator == "":
		return op, errors.New("on without indicator")
	case st.Dx != nil && st.Event == nil:
		return op, errors.New("dx without event")
	}

	switch set {
	case 0:
		return op, errors.New("no operation set")
	case 1:
		return op, nil
	default:
		return op, fmt.Errorf("%d operations set, want exactly one", set)
	}
}

func compileEvent(ev EventStep, dx *DxStep) (event.Input, event.Output, error) {
	kind, err := event.ParseKind(ev.Kind)
	if err != nil {
		return event.Input{}, event.Output{}, err
	}
	in := event.Input{Kind: kind, Keypad: ev.Keypad, Key: ev.Key, Encoder: ev.Encoder}

	var out event.Output
	if dx != nil {
		out.Button = dx.Button
		if dx.Action != "" {
			a, err := event.ParseAction(dx.Action)
			if err != nil {
				return in, out, err
			}
			out.Action = a
		}
	}
	return in, out, nil
}
