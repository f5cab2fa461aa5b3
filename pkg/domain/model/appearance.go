package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/immersivevr/immersive/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Color is a 24-bit RGB value (0xRRGGBB)
type Color uint32

// Palette colors a record may declare
const (
	ColorIndigo Color = 0x6366F1
	ColorViolet Color = 0x8B5CF6
	ColorCyan   Color = 0x06B6D4
	ColorAmber  Color = 0xF59E0B
)

const (
	// DefaultColor is used for the default primitive and for unknown color values
	DefaultColor = ColorIndigo
	// EdgeColor is the color of the outline drawn over solid primitives
	EdgeColor = ColorCyan
)

// RGB splits the color into channels
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#RRGGBB"
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses "#RRGGBB" into a Color
func ParseColor(s string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return 0, goerr.New("invalid color", goerr.V("color", s))
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid color", goerr.V("color", s))
	}
	return Color(n), nil
}

// ColorFor maps a declared color value to a palette color. Values outside the
// palette map to DefaultColor.
func ColorFor(value string) Color {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "#6366F1":
		return ColorIndigo
	case "#8B5CF6":
		return ColorViolet
	case "#06B6D4":
		return ColorCyan
	case "#F59E0B":
		return ColorAmber
	default:
		return DefaultColor
	}
}

// ShapeForTitle picks the stand-in primitive for a record title. Checks run in
// order on case-folded words; anything unmatched is a box.
func ShapeForTitle(title string) types.Shape {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	switch {
	case hasAnyWord(words, "camera"):
		return types.ShapeBox
	case hasAnyWord(words, "spacecraft", "space", "spaceship", "rocket", "shuttle"):
		return types.ShapeSphere
	case hasAnyWord(words, "headset", "vr", "goggles"):
		return types.ShapeCylinder
	default:
		return types.ShapeBox
	}
}

func hasAnyWord(words []string, keywords ...string) bool {
	for _, w := range words {
		for _, k := range keywords {
			if w == k {
				return true
			}
		}
	}
	return false
}

// Appearance describes how a record is drawn on the render surface
type Appearance struct {
	Shape     types.Shape `json:"shape"`
	Color     Color       `json:"color"`
	EdgeColor Color       `json:"edgeColor"`
}

// DefaultAppearance is shown before anything is selected
func DefaultAppearance() Appearance {
	return Appearance{
		Shape:     types.ShapeBox,
		Color:     DefaultColor,
		EdgeColor: EdgeColor,
	}
}

// AppearanceFor maps a record to its primitive and colors. A nil record gets
// the default appearance.
func AppearanceFor(r *ModelRecord) Appearance {
	if r == nil {
		return DefaultAppearance()
	}
	return Appearance{
		Shape:     ShapeForTitle(r.Title),
		Color:     ColorFor(r.Color),
		EdgeColor: EdgeColor,
	}
}
