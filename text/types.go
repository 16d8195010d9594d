package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionTTB is top-to-bottom text (traditional Chinese, Japanese)
	DirectionTTB
	// DirectionBTT is bottom-to-top text (rare)
	DirectionBTT
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionTTB:
		return "TTB"
	case DirectionBTT:
		return "BTT"
	default:
		return unknownStr
	}
}

// IsHorizontal returns true if the direction is horizontal (LTR or RTL).
func (d Direction) IsHorizontal() bool {
	return d == DirectionLTR || d == DirectionRTL
}

// IsVertical returns true if the direction is vertical (TTB or BTT).
func (d Direction) IsVertical() bool {
	return d == DirectionTTB || d == DirectionBTT
}

// Hinting specifies the font hinting mode requested from the rasterizer.
//
// The default x/image backend loads unhinted outlines, so hinting only
// influences metrics rounding there; the mode is still part of the
// rasterization contract so alternative backends can honor it.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical hints in the vertical direction only.
	HintingVertical
	// HintingFull hints in both directions.
	HintingFull
)

// String returns the string representation of the hinting mode.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// AntiAlias specifies the anti-aliasing mode for glyph rasterization.
type AntiAlias int

const (
	// AntiAliasGrayscale produces smooth 8-bit coverage values.
	AntiAliasGrayscale AntiAlias = iota
	// AntiAliasNone thresholds coverage to fully-on or fully-off pixels.
	AntiAliasNone
)

// String returns the string representation of the anti-aliasing mode.
func (a AntiAlias) String() string {
	switch a {
	case AntiAliasGrayscale:
		return "Grayscale"
	case AntiAliasNone:
		return "None"
	default:
		return unknownStr
	}
}
