// internal/display/surface.go
package display

// Surface is the character display the panel draws on.
// Column and row are zero-based; out-of-range positions behave however
// the implementation defines. Surface implementations report no errors.
type Surface interface {
	Clear()
	Home()
	SetCursor(col, row int)
	Print(text string)
}

// Geometry is the fixed size of the character grid.
type Geometry struct {
	Columns int
	Rows    int
}

// Polarity is the backlight control polarity of the display module.
type Polarity uint8

const (
	PolarityPositive Polarity = iota
	PolarityNegative
)

func (p Polarity) String() string {
	if p == PolarityNegative {
		return "negative"
	}
	return "positive"
}

// Pins is the expander pin map of an I2C character LCD backpack.
type Pins struct {
	En        uint8
	Rw        uint8
	Rs        uint8
	D4        uint8
	D5        uint8
	D6        uint8
	D7        uint8
	Backlight uint8
}

// Config carries the display initialization parameters.
// Only Geometry is interpreted by this module; the rest is handed to
// whatever driver sits behind the Surface.
type Config struct {
	Geometry Geometry
	Address  uint8
	Pins     Pins
	Polarity Polarity
}
