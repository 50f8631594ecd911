package render

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fontCandidates is the ordered list of font files tried for drawing
// text. The first one resolvable through the system font paths wins.
var fontCandidates = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
	"Verdana.ttf",
	"FreeSans.ttf",
}

// fontSet resolves font.Faces at arbitrary sizes, degrading to a
// built-in bitmap face when no system font could be loaded.
type fontSet struct {
	ttf *truetype.Font // nil when falling back to basicfont
}

// loadFonts walks the candidate list and parses the first font file
// findfont can locate. Failure is not an error: the zero-candidate case
// yields a set backed by the built-in face so text rendering always works.
func loadFonts(candidates []string) *fontSet {
	for _, name := range candidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ttf, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return &fontSet{ttf: ttf}
	}
	return &fontSet{}
}

// face returns a font.Face at the given pixel size. With no parsed
// font the fixed-size builtin face is returned regardless of size.
func (f *fontSet) face(size float64) font.Face {
	if f.ttf == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f.ttf, &truetype.Options{Size: size})
}

// builtin reports whether the set degraded to the built-in bitmap face.
func (f *fontSet) builtin() bool {
	return f.ttf == nil
}
