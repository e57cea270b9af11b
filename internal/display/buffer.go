// internal/display/buffer.go
package display

// HD44780 display data RAM geometry.
const (
	ddramSize = 0x80

	line1End  = 0x28 // one past the last cell of line 1 in 2-line mode
	line2Base = 0x40
	line2End  = 0x68

	oneLineEnd = 0x50
)

// Buffer is an in-memory HD44780-style character display.
// Writes advance the DDRAM address counter the way the controller does,
// so text running past the end of a row continues where the hardware
// would put it (row 0 flows into row 2 on a 20x4 module).
type Buffer struct {
	cfg     Config
	ddram   [ddramSize]byte
	addr    int
	offsets [4]int
}

// NewBuffer returns a cleared buffer for the given display config.
func NewBuffer(cfg Config) *Buffer {
	cols := cfg.Geometry.Columns
	b := &Buffer{
		cfg:     cfg,
		offsets: [4]int{0x00, line2Base, cols, line2Base + cols},
	}
	b.Clear()
	return b
}

// Config returns the config the buffer was created with.
func (b *Buffer) Config() Config { return b.cfg }

// Geometry returns the grid size.
func (b *Buffer) Geometry() Geometry { return b.cfg.Geometry }

// Clear blanks the display and homes the cursor.
func (b *Buffer) Clear() {
	for i := range b.ddram {
		b.ddram[i] = ' '
	}
	b.addr = 0
}

// Home moves the cursor to (0,0) without touching content.
func (b *Buffer) Home() {
	b.addr = 0
}

// SetCursor moves the cursor. Rows past the last row clamp to the last
// row; columns are not checked.
func (b *Buffer) SetCursor(col, row int) {
	if b.cfg.Geometry.Rows == 1 {
		row = 0
	}
	if row >= b.cfg.Geometry.Rows {
		row = b.cfg.Geometry.Rows - 1
	}
	if row < 0 {
		row = 0
	}
	b.addr = (col + b.offsets[row]) & (ddramSize - 1)
}

// Print writes text byte by byte at the cursor.
func (b *Buffer) Print(text string) {
	for i := 0; i < len(text); i++ {
		b.ddram[b.addr] = text[i]
		b.advance()
	}
}

// Cursor returns the current DDRAM address.
func (b *Buffer) Cursor() int { return b.addr }

// Row returns the visible text of row r.
func (b *Buffer) Row(r int) string {
	cols := b.cfg.Geometry.Columns
	out := make([]byte, cols)
	for c := 0; c < cols; c++ {
		out[c] = b.ddram[(b.offsets[r]+c)&(ddramSize-1)]
	}
	return string(out)
}

// Lines returns every visible row, top to bottom.
func (b *Buffer) Lines() []string {
	out := make([]string, b.cfg.Geometry.Rows)
	for r := range out {
		out[r] = b.Row(r)
	}
	return out
}

func (b *Buffer) advance() {
	b.addr++

	if b.cfg.Geometry.Rows == 1 {
		if b.addr >= oneLineEnd {
			b.addr = 0
		}
		return
	}

	switch b.addr {
	case line1End:
		b.addr = line2Base
	case line2End:
		b.addr = 0
	}
	b.addr &= ddramSize - 1
}
