package panel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tamzrod/cockpit-panel/internal/display"
	"github.com/tamzrod/cockpit-panel/internal/event"
	"github.com/tamzrod/cockpit-panel/internal/layout"
)

func TestFormatEvent_Templates(t *testing.T) {
	cases := []struct {
		name string
		line uint
		in   event.Input
		out  event.Output
		want string
	}{
		{
			name: "key press to release",
			in:   event.Key(true, 2, 5),
			out:  event.Output{Action: event.ActionRelease, Button: 9},
			want: "000 Key:P2/05 Dx:R09",
		},
		{
			name: "key release to press",
			line: 42,
			in:   event.Key(false, 1, 12),
			out:  event.Output{Action: event.ActionPress, Button: 31},
			want: "042 Key:R1/12 Dx:P31",
		},
		{
			name: "encoder ccw release",
			line: 1,
			in:   event.Encoder(false, false, 1),
			out:  event.Output{Action: event.ActionPress, Button: 3},
			want: "001 Enc:R1CCW Dx:P03",
		},
		{
			name: "encoder cw pads direction",
			line: 7,
			in:   event.Encoder(true, true, 0),
			out:  event.Output{Action: event.ActionRelease, Button: 4},
			want: "007 Enc:P0CW  Dx:R04",
		},
		{
			name: "no action reads as press",
			line: 3,
			in:   event.Key(true, 0, 0),
			out:  event.Output{Action: event.ActionNone, Button: 0},
			want: "003 Key:P0/00 Dx:P00",
		},
	}

	for _, c := range cases {
		if got := FormatEvent(c.line, c.in, c.out); got != c.want {
			t.Fatalf("%s: got=%q want=%q", c.name, got, c.want)
		}
	}
}

func TestFormatEvent_TemplatesFitTwentyColumns(t *testing.T) {
	kinds := []event.Input{
		event.Key(true, 9, 99),
		event.Encoder(true, false, 9),
		event.Encoder(false, true, 9),
	}
	for _, in := range kinds {
		got := FormatEvent(999, in, event.Output{Button: 99})
		if len(got) != 20 {
			t.Fatalf("%s: expected 20 columns, got %d (%q)", in.Kind, len(got), got)
		}
	}
}

func TestFormatEvent_OrdinalNotWrapped(t *testing.T) {
	got := FormatEvent(1000, event.Key(true, 2, 5), event.Output{Action: event.ActionRelease, Button: 9})
	if got != "1000 Key:P2/05 Dx:R09" {
		t.Fatalf("got=%q", got)
	}

	got = FormatEvent(1234, event.Encoder(false, false, 1), event.Output{Action: event.ActionPress, Button: 3})
	if got != "1234 Enc:R1CCW Dx:P03" {
		t.Fatalf("got=%q", got)
	}
}

func TestRender_RowWrapsPastThousand(t *testing.T) {
	lcd := &fakeSurface{}
	f := NewFormatter(lcd, 4)
	f.line = 1001

	f.Render(event.Key(true, 1, 2), event.Output{Action: event.ActionPress, Button: 3})

	want := []call{
		{Op: "cursor", Col: 0, Row: 1}, {Op: "print", Text: "1001 Key:P1/02 Dx:P03"},
	}
	if diff := cmp.Diff(want, lcd.take()); diff != "" {
		t.Fatalf("render (-want +got):\n%s", diff)
	}
}

func TestFormatEvent_NonePanics(t *testing.T) {
	expectPanic(t, "none", func() {
		FormatEvent(0, event.Input{Kind: event.None}, event.Output{})
	})
}

func TestRender_RowsCycleOrdinalGrows(t *testing.T) {
	lcd := &fakeSurface{}
	f := NewFormatter(lcd, 2)

	for i := 0; i < 3; i++ {
		f.Render(event.Key(true, 1, 2), event.Output{Action: event.ActionPress, Button: 3})
	}

	want := []call{
		{Op: "cursor", Col: 0, Row: 0}, {Op: "print", Text: "000 Key:P1/02 Dx:P03"},
		{Op: "cursor", Col: 0, Row: 1}, {Op: "print", Text: "001 Key:P1/02 Dx:P03"},
		{Op: "cursor", Col: 0, Row: 0}, {Op: "print", Text: "002 Key:P1/02 Dx:P03"},
	}
	if diff := cmp.Diff(want, lcd.take()); diff != "" {
		t.Fatalf("render (-want +got):\n%s", diff)
	}
	if f.Line() != 3 {
		t.Fatalf("expected counter 3, got %d", f.Line())
	}
}

func TestRender_ThreeLinesOnFourRows(t *testing.T) {
	p, lcd, _ := newPanel(20, 4)
	p.StartMode(layout.Debug)
	lcd.take()

	p.ShowEvent(event.Key(true, 2, 5), event.Output{Action: event.ActionRelease, Button: 9})
	p.ShowEvent(event.Encoder(false, false, 1), event.Output{Action: event.ActionPress, Button: 3})
	p.ShowEvent(event.Encoder(true, true, 1), event.Output{Action: event.ActionPress, Button: 3})

	want := []call{
		{Op: "cursor", Col: 0, Row: 0}, {Op: "print", Text: "000 Key:P2/05 Dx:R09"},
		{Op: "cursor", Col: 0, Row: 1}, {Op: "print", Text: "001 Enc:R1CCW Dx:P03"},
		{Op: "cursor", Col: 0, Row: 2}, {Op: "print", Text: "002 Enc:P1CW  Dx:P03"},
	}
	if diff := cmp.Diff(want, lcd.take()); diff != "" {
		t.Fatalf("debug lines (-want +got):\n%s", diff)
	}
}

func TestRender_OnBufferOverwritesRow(t *testing.T) {
	buf := display.NewBuffer(display.Config{Geometry: display.Geometry{Columns: 20, Rows: 1}})
	f := NewFormatter(buf, 1)

	f.Render(event.Key(true, 1, 1), event.Output{Button: 1})
	f.Render(event.Key(false, 1, 1), event.Output{Action: event.ActionRelease, Button: 1})

	if got := buf.Row(0); got != "001 Key:R1/01 Dx:R01" {
		t.Fatalf("unexpected row: %q", got)
	}
}
