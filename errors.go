package textual

import "fmt"

// SizeMismatchError reports a raw buffer whose length does not match the
// dimensions and channel count it was declared with.
type SizeMismatchError struct {
	Want int
	Got  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("textual: buffer length is %d, expected %d", e.Got, e.Want)
}

// DimensionMismatchError reports an overlay whose image and mask dimensions
// differ.
type DimensionMismatchError struct {
	ImageWidth  int
	ImageHeight int
	MaskWidth   int
	MaskHeight  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("textual: overlay image is %dx%d but mask is %dx%d",
		e.ImageWidth, e.ImageHeight, e.MaskWidth, e.MaskHeight)
}
