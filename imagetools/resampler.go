package imagetools

import (
	"fmt"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
	"image"
	"sort"
	"strings"
	"vincit.fi/asset-fitter/api/apitype"
)

const DefaultResampler = "lanczos"

type Resampler interface {
	Resize(img image.Image, size apitype.Size) image.Image
	String() string
}

type imagingResampler struct {
	name   string
	filter imaging.ResampleFilter
}

func (s *imagingResampler) Resize(img image.Image, size apitype.Size) image.Image {
	return imaging.Resize(img, size.Width(), size.Height(), s.filter)
}

func (s *imagingResampler) String() string {
	return s.name
}

type nfntResampler struct {
	name          string
	interpolation resize.InterpolationFunction
}

func (s *nfntResampler) Resize(img image.Image, size apitype.Size) image.Image {
	return resize.Resize(uint(size.Width()), uint(size.Height()), img, s.interpolation)
}

func (s *nfntResampler) String() string {
	return s.name
}

type xdrawResampler struct {
	name         string
	interpolator xdraw.Interpolator
}

func (s *xdrawResampler) Resize(img image.Image, size apitype.Size) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, size.Width(), size.Height()))
	s.interpolator.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func (s *xdrawResampler) String() string {
	return s.name
}

var resamplers = map[string]Resampler{
	"lanczos":          &imagingResampler{name: "lanczos", filter: imaging.Lanczos},
	"box":              &imagingResampler{name: "box", filter: imaging.Box},
	"catmullrom":       &imagingResampler{name: "catmullrom", filter: imaging.CatmullRom},
	"linear":           &imagingResampler{name: "linear", filter: imaging.Linear},
	"mitchell":         &imagingResampler{name: "mitchell", filter: imaging.MitchellNetravali},
	"nfnt-lanczos3":    &nfntResampler{name: "nfnt-lanczos3", interpolation: resize.Lanczos3},
	"nfnt-bicubic":     &nfntResampler{name: "nfnt-bicubic", interpolation: resize.Bicubic},
	"nfnt-mitchell":    &nfntResampler{name: "nfnt-mitchell", interpolation: resize.MitchellNetravali},
	"nfnt-bilinear":    &nfntResampler{name: "nfnt-bilinear", interpolation: resize.Bilinear},
	"xdraw-catmullrom": &xdrawResampler{name: "xdraw-catmullrom", interpolator: xdraw.CatmullRom},
	"xdraw-bilinear":   &xdrawResampler{name: "xdraw-bilinear", interpolator: xdraw.BiLinear},
}

// ResamplerByName resolves a resampling filter. Nearest neighbour filters
// alias badly when shrinking and are rejected.
func ResamplerByName(name string) (Resampler, error) {
	if name == "" {
		name = DefaultResampler
	}
	name = strings.ToLower(name)
	if strings.Contains(name, "nearest") {
		return nil, fmt.Errorf("%w: nearest neighbour resampling is not supported", apitype.ErrInvalidInput)
	}
	if resampler, ok := resamplers[name]; ok {
		return resampler, nil
	}
	return nil, fmt.Errorf("%w: unknown resampler '%s', use one of %s",
		apitype.ErrInvalidInput, name, strings.Join(ResamplerNames(), ", "))
}

func ResamplerNames() []string {
	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
