// internal/layout/tables.go
package layout

import "fmt"

// SeparatorGlyph is drawn at every separator position.
const SeparatorGlyph = "|"

// Anchor is the display cell where a field starts (zero-based).
type Anchor struct {
	Col int
	Row int
}

// Separator is a decorative glyph position, stored {row, col}.
type Separator struct {
	Row int
	Col int
}

// Table maps every Field to its anchor for one mode.
type Table [FieldCount]Anchor

type entry struct {
	field  Field
	anchor Anchor
}

// ---- F/A-18C ----

var fa18cSeparators = []Separator{
	{0, 12}, {0, 14}, // row 0
	{1, 5}, {1, 14}, // row 1
	{2, 5}, {2, 14}, // row 2
	{3, 2}, {3, 17}, // row 3
}

const (
	fa18cScrpadRow = 0
	fa18cComRow    = 3
)

var (
	fa18cOptionCueCol = [NumOptions]int{19, 19, 19, 0, 0}
	fa18cOptionStrCol = [NumOptions]int{15, 15, 15, 1, 1}
	fa18cOptionRow    = [NumOptions]int{0, 1, 2, 1, 2}
)

func fa18cEntries() []entry {
	out := []entry{
		{ScratchpadStr1, Anchor{0, fa18cScrpadRow}},
		{ScratchpadStr2, Anchor{2, fa18cScrpadRow}},
		{ScratchpadNumber, Anchor{4, fa18cScrpadRow}},
		{Comm1, Anchor{0, fa18cComRow}},
		{Comm2, Anchor{18, fa18cComRow}},
	}
	for id := 0; id < NumOptions; id++ {
		out = append(out,
			entry{OptionCue(id), Anchor{fa18cOptionCueCol[id], fa18cOptionRow[id]}},
			entry{OptionStr(id), Anchor{fa18cOptionStrCol[id], fa18cOptionRow[id]}},
		)
	}
	return out
}

// ---- registry ----

type modeLayout struct {
	table      *Table
	separators []Separator
}

var layouts = map[Mode]modeLayout{
	A10C:  {},
	FA18C: {table: mustTable(FA18C, fa18cEntries()), separators: fa18cSeparators},
	Debug: {},
}

// mustTable builds a complete table or panics at package init.
func mustTable(m Mode, entries []entry) *Table {
	var t Table
	var seen [FieldCount]bool
	for _, e := range entries {
		if e.field >= FieldCount {
			panic(fmt.Sprintf("layout: %s: invalid field %d", m, e.field))
		}
		if seen[e.field] {
			panic(fmt.Sprintf("layout: %s: duplicate anchor for %s", m, e.field))
		}
		seen[e.field] = true
		t[e.field] = e.anchor
	}
	for f, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("layout: %s: missing anchor for %s", m, Field(f)))
		}
	}
	return &t
}

// HasFields reports whether m exposes table-driven fields.
func HasFields(m Mode) bool {
	return layouts[m].table != nil
}

// Lookup returns the anchor of f in mode m.
// Modes without a table and out-of-range fields are programming errors.
func Lookup(m Mode, f Field) Anchor {
	l, ok := layouts[m]
	if !ok || l.table == nil {
		panic(fmt.Sprintf("layout: mode %s has no field table", m))
	}
	if f >= FieldCount {
		panic(fmt.Sprintf("layout: invalid field %d", f))
	}
	return l.table[f]
}

// Separators returns the separator positions of m in drawing order.
// The returned slice must not be modified.
func Separators(m Mode) []Separator {
	return layouts[m].separators
}
