package apitype

import (
	"fmt"
	"image"
	"math"
)

type Size struct {
	width  int
	height int
}

func (s Size) Height() int {
	return s.height
}

func (s Size) Width() int {
	return s.width
}

func (s Size) IsValid() bool {
	return s.width > 0 && s.height > 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SquareSize(side int) Size {
	return Size{side, side}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

// ScaleToFit returns the largest size with the aspect ratio of source that
// fits inside target. The axis on which source is relatively larger matches
// target exactly and the other one is rounded to the nearest pixel.
func ScaleToFit(source Size, target Size) Size {
	// sw/sh > tw/th without floating point
	if int64(source.width)*int64(target.height) > int64(target.width)*int64(source.height) {
		height := roundRatio(target.width, source.height, source.width)
		return Size{target.width, clamp(height, target.height)}
	} else {
		width := roundRatio(target.height, source.width, source.height)
		return Size{clamp(width, target.width), target.height}
	}
}

// CenterOffset is the top left corner for placing inner centered inside
// outer. Odd remainders go to the bottom and right.
func CenterOffset(inner Size, outer Size) image.Point {
	return image.Pt((outer.width-inner.width)/2, (outer.height-inner.height)/2)
}

func roundRatio(value int, numerator int, denominator int) int {
	return int(math.Round(float64(value) * float64(numerator) / float64(denominator)))
}

func clamp(value int, max int) int {
	if value < 1 {
		return 1
	}
	if value > max {
		return max
	}
	return value
}
