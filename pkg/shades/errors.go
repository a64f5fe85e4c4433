package shades

import "errors"

var(
	// ErrInvalidParameters is returned before any work is done, when the
	// parameters or the region don't make sense for the image.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrDegenerateEstimate means no illuminant could be estimated (no
	// eligible pixels, or an estimate with a zero channel). The pipeline
	// recovers from it by not correcting the image; it is reported back
	// via Result.Warning rather than as an error.
	ErrDegenerateEstimate = errors.New("degenerate illuminant estimate")

	// ErrAllocation means the buffers for an image of the given size can't
	// be had; nothing has been written when it is returned.
	ErrAllocation = errors.New("buffer allocation failed")
)
