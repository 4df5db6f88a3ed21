package render

// superscripts maps a single-letter footnote tag to its superscript glyph.
// Unicode has no superscript 'q', so 'q' stays a literal "q"; changing that
// would break round-tripping against the published corpus.
var superscripts = map[string]string{
	"a": "ᵃ",
	"b": "ᵇ",
	"c": "ᶜ",
	"d": "ᵈ",
	"e": "ᵉ",
	"f": "ᶠ",
	"g": "ᵍ",
	"h": "ʰ",
	"i": "ⁱ",
	"j": "ʲ",
	"k": "ᵏ",
	"l": "ˡ",
	"m": "ᵐ",
	"n": "ⁿ",
	"o": "ᵒ",
	"p": "ᵖ",
	"q": "q",
	"r": "ʳ",
	"s": "ˢ",
	"t": "ᵗ",
	"u": "ᵘ",
	"v": "ᵛ",
	"w": "ʷ",
	"x": "ˣ",
	"y": "ʸ",
	"z": "ᶻ",
}

// Marker maps a footnote reference tag to its superscript glyph. The second
// return is false for anything that is not a single lowercase ASCII letter,
// and the caller must emit nothing for that marker.
func Marker(tag string) (string, bool) {
	glyph, ok := superscripts[tag]
	return glyph, ok
}
