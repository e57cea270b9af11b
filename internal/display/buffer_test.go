package display

import (
	"strings"
	"testing"
)

func newLCD2004() *Buffer {
	return NewBuffer(Config{Geometry: Geometry{Columns: 20, Rows: 4}, Address: 0x27})
}

func TestBuffer_SetCursorAndPrint(t *testing.T) {
	b := newLCD2004()

	b.SetCursor(18, 3)
	b.Print("12")

	if got := b.Row(3); got != strings.Repeat(" ", 18)+"12" {
		t.Fatalf("row 3 mismatch: %q", got)
	}
}

func TestBuffer_OverflowFollowsDDRAMOrder(t *testing.T) {
	b := newLCD2004()

	b.Home()
	b.Print(strings.Repeat("A", 20) + "BC")

	if got := b.Row(0); got != strings.Repeat("A", 20) {
		t.Fatalf("row 0 mismatch: %q", got)
	}
	// 20x4 modules map the cell after row 0 onto row 2.
	if got := b.Row(2); !strings.HasPrefix(got, "BC") {
		t.Fatalf("expected overflow on row 2, got %q", got)
	}
	if got := b.Row(1); got != strings.Repeat(" ", 20) {
		t.Fatalf("row 1 should be blank, got %q", got)
	}
}

func TestBuffer_Line2WrapsToLine1(t *testing.T) {
	b := NewBuffer(Config{Geometry: Geometry{Columns: 16, Rows: 2}})

	b.SetCursor(0, 1)
	b.Print(strings.Repeat("x", 40) + "y")

	if got := b.Row(0); got[0] != 'y' {
		t.Fatalf("expected wrap into line 1, got %q", got)
	}
}

func TestBuffer_ClearAndHome(t *testing.T) {
	b := newLCD2004()
	b.SetCursor(5, 1)
	b.Print("X")

	b.Home()
	if b.Cursor() != 0 {
		t.Fatalf("home should reset cursor, got %d", b.Cursor())
	}
	if b.Row(1)[5] != 'X' {
		t.Fatalf("home must not clear content")
	}

	b.Clear()
	for r, line := range b.Lines() {
		if line != strings.Repeat(" ", 20) {
			t.Fatalf("row %d not blank after clear: %q", r, line)
		}
	}
}

func TestBuffer_RowClamp(t *testing.T) {
	b := newLCD2004()
	b.SetCursor(0, 9)
	b.Print("Z")

	if b.Row(3)[0] != 'Z' {
		t.Fatalf("row past bottom should clamp to last row")
	}
}

func TestRenderLamps(t *testing.T) {
	out := RenderLamps([]Lamp{{Label: "warning", On: true}, {Label: "ready"}})
	if !strings.Contains(out, "warning") || !strings.Contains(out, "ready") {
		t.Fatalf("lamp labels missing: %q", out)
	}
}
