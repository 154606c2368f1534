package brand

import (
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"vincit.fi/asset-fitter/common/logger"
	"vincit.fi/asset-fitter/common/util"
)

var DefaultTitleFonts = []string{
	"C:\\Windows\\Fonts\\segoeuib.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
}

var DefaultTaglineFonts = []string{
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
}

func TitleFace(candidates []string, points float64) font.Face {
	return loadFace(candidates, points, gobold.TTF)
}

func TaglineFace(candidates []string, points float64) font.Face {
	return loadFace(candidates, points, goregular.TTF)
}

// loadFace uses the first candidate font that exists and can be parsed, and
// the built-in font otherwise.
func loadFace(candidates []string, points float64, builtin []byte) font.Face {
	if path, ok := util.ResolveFirstAvailable(candidates); ok {
		if face, err := gg.LoadFontFace(path, points); err == nil {
			return face
		} else {
			logger.Warn.Printf("Could not load font '%s', using built-in font: %s", path, err)
		}
	}
	parsed, err := truetype.Parse(builtin)
	if err != nil {
		logger.Error.Panic("Built-in font is invalid", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: points})
}
