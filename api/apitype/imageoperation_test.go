package apitype

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"image"
	"testing"
)

type stubOperation struct {
	result image.Image
	err    error
	seen   image.Image
}

func (s *stubOperation) Apply(operationGroup *ImageOperationGroup) (image.Image, error) {
	s.seen = operationGroup.ImageData()
	return s.result, s.err
}

func (s *stubOperation) String() string {
	return "stub"
}

func TestImageOperationGroup_Apply(t *testing.T) {
	a := assert.New(t)

	source := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	first := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	op1 := &stubOperation{result: first}
	op2 := &stubOperation{}
	target := NewTargetSpec("t", KindFit, SquareSize(2), BrandOrange, "t.png")
	group := NewImageOperationGroup(target, source, []ImageOperation{op1, op2})

	result, err := group.Apply()

	a.Nil(err)
	a.Same(first, result)
	a.Same(source, op1.seen)
	a.Same(first, op2.seen)
	a.Same(source, group.Source())
	a.True(group.Modified())
	a.Len(group.Operations(), 2)
}

func TestImageOperationGroup_Apply_Error(t *testing.T) {
	expected := errors.New("failed")
	target := NewTargetSpec("t", KindFit, SquareSize(2), BrandOrange, "t.png")
	group := NewImageOperationGroup(target, nil, []ImageOperation{&stubOperation{err: expected}})

	_, err := group.Apply()

	assert.Equal(t, expected, err)
}

func TestImageOperationGroup_Apply_NoImage(t *testing.T) {
	target := NewTargetSpec("t", KindFit, SquareSize(2), BrandOrange, "t.png")
	group := NewImageOperationGroup(target, nil, []ImageOperation{&stubOperation{}})

	_, err := group.Apply()

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, group.Modified())
}
