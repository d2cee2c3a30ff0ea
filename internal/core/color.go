package core

// Color is a foreground colour for a screen cell, drawn from a small
// ANSI palette so every terminal can show it.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Tint is an 8-bit RGB colour carried by entities. The simulation blends
// tints freely; the renderer maps them onto the nearest palette Color.
type Tint struct {
	R, G, B uint8
}

var (
	TintWhite  = Tint{R: 255, G: 255, B: 255}
	TintRed    = Tint{R: 230, G: 41, B: 55}
	TintOrange = Tint{R: 255, G: 161, B: 0}
	TintYellow = Tint{R: 253, G: 249, B: 0}
	TintGray   = Tint{R: 130, G: 130, B: 130}
)

// LerpTint blends a toward b by t in [0,1].
func LerpTint(a, b Tint, t float64) Tint {
	t = ClampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(Lerp(float64(x), float64(y), t) + 0.5)
	}
	return Tint{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

var paletteRGB = []struct {
	c   Color
	rgb Tint
}{
	{ColorRed, Tint{205, 0, 0}},
	{ColorGreen, Tint{0, 205, 0}},
	{ColorYellow, Tint{205, 205, 0}},
	{ColorBlue, Tint{0, 0, 238}},
	{ColorMagenta, Tint{205, 0, 205}},
	{ColorCyan, Tint{0, 205, 205}},
	{ColorWhite, Tint{229, 229, 229}},
	{ColorBrightRed, Tint{255, 0, 0}},
	{ColorBrightGreen, Tint{0, 255, 0}},
	{ColorBrightYellow, Tint{255, 255, 0}},
	{ColorBrightBlue, Tint{92, 92, 255}},
	{ColorBrightMagenta, Tint{255, 0, 255}},
	{ColorBrightCyan, Tint{0, 255, 255}},
	{ColorBrightWhite, Tint{255, 255, 255}},
	{ColorOrange, Tint{255, 135, 0}},
	{ColorGray, Tint{138, 138, 138}},
}

// Color returns the palette entry closest to the tint.
func (t Tint) Color() Color {
	best := ColorDefault
	bestDist := -1
	for _, p := range paletteRGB {
		dr := int(t.R) - int(p.rgb.R)
		dg := int(t.G) - int(p.rgb.G)
		db := int(t.B) - int(p.rgb.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.c, d
		}
	}
	return best
}
