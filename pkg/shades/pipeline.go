package shades

import(
	"fmt"
	"image"
	"log"

	"github.com/abworrall/shadesofgrey/pkg/ecolor"
)

// A Pipeline estimates the illuminant of a source image and removes it,
// either over the whole image or over a sub-rectangle (e.g. for a
// preview). The illuminant is always estimated over the entire source,
// whatever region is being corrected.
//
// A Pipeline keeps the decoded source and the latest estimate around, so
// repeated previews don't redo that work. SetSource throws both away; the
// estimate is recomputed whenever Params differ from the ones it was made
// with. A Pipeline is not safe for concurrent use.
type Pipeline struct {
	Config
	Progress      ProgressFunc

	src           PixelBuffer
	full         *LinearImage   // src, decoded; nil until needed
	est          *Estimate      // nil until needed
	estParams     Params        // the params est was computed with
	oneShot       bool          // nothing is reused, so full can be adapted in place
}

// A Result is what one run of the pipeline produces.
type Result struct {
	Output        PixelBuffer        // Corrected pixels, the shape of Region
	Region        image.Rectangle    // Where Output sits in the source image
	Linear       *LinearImage        // Region in linear light, after adaptation

	Estimate      Estimate
	Illuminant    ecolor.Illuminant
	Immax         float32            // Brightest value after dividing out the illuminant

	// If the estimate was degenerate, Output is the unmodified source region,
	// Illuminant is neutral, and Warning wraps ErrDegenerateEstimate.
	Degenerate    bool
	Warning       error
}

func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{Config: cfg}
}

// Correct white balances the whole of src in one go.
func Correct(src PixelBuffer, cfg Config) (Result, error) {
	return CorrectRegion(src, src.Bounds(), cfg)
}

// CorrectRegion white balances just the part of src inside r, using an
// illuminant estimated from all of src.
func CorrectRegion(src PixelBuffer, r image.Rectangle, cfg Config) (Result, error) {
	p := NewPipeline(cfg)
	p.oneShot = true
	if err := p.setSource(src, false); err != nil {
		return Result{}, err
	}
	return p.Preview(r)
}

// SetSource validates src and takes a private copy of it.
func (p *Pipeline)SetSource(src PixelBuffer) error {
	return p.setSource(src, true)
}

func (p *Pipeline)setSource(src PixelBuffer, clone bool) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if _, err := sampleCount(src.Width, src.Height, src.Channels, p.MaxPixels); err != nil {
		return err
	}
	if clone {
		src = src.Clone()
	}
	p.src  = src
	p.full = nil
	p.est  = nil
	return nil
}

// SetParams changes the estimator parameters.
func (p *Pipeline)SetParams(params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	p.Params = params
	return nil
}

// Estimate returns the raw estimate for the current source and params,
// computing it if needed.
func (p *Pipeline)Estimate() (Estimate, error) {
	if p.src.Pix == nil {
		return Estimate{}, fmt.Errorf("%w: no source image", ErrInvalidParameters)
	}
	if err := p.Params.Validate(); err != nil {
		return Estimate{}, err
	}
	if p.est != nil && p.estParams == p.Params {
		return *p.est, nil
	}

	if p.full == nil {
		p.progress(StageDecode, 0.0)
		p.full = DecodeRegion(p.src, p.src.Bounds(), p.Workers)
	}

	p.progress(StageEstimate, 0.0)
	est := Accumulate(p.full, p.Params.NearWhite(), p.Params.Norm, p.Workers)
	p.est = &est
	p.estParams = p.Params

	if p.Verbosity > 0 {
		log.Printf("Estimate (%s): %s\n", p.Params, est)
	}
	return est, nil
}

// Run corrects the whole source image.
func (p *Pipeline)Run() (Result, error) {
	return p.Preview(p.src.Bounds())
}

// Preview corrects the part of the source image inside r. The result
// reflects the illuminant of the whole image.
func (p *Pipeline)Preview(r image.Rectangle) (Result, error) {
	if p.src.Pix == nil {
		return Result{}, fmt.Errorf("%w: no source image", ErrInvalidParameters)
	}
	if r.Empty() || !r.In(p.src.Bounds()) {
		return Result{}, fmt.Errorf("%w: region %s not inside image %s", ErrInvalidParameters, r, p.src.Bounds())
	}

	est, err := p.Estimate()
	if err != nil {
		return Result{}, err
	}

	res := Result{Region: r, Estimate: est}
	res.Illuminant, res.Warning = Normalize(est)
	res.Degenerate = res.Warning != nil

	if p.Verbosity > 0 {
		if res.Degenerate {
			log.Printf("No correction applied: %v\n", res.Warning)
		} else {
			log.Printf("Illuminant estimated to: %s\n", res.Illuminant)
		}
	}

	// The estimate used the whole image; the correction gets its own copy
	// of just the region, unless the whole image is wanted and nobody
	// needs the decoded source again.
	if p.oneShot && r == p.src.Bounds() {
		res.Linear = p.full
		p.full = nil
	} else {
		res.Linear = DecodeRegion(p.src, r, p.Workers)
	}

	p.progress(StageApply, 0.33)
	if res.Degenerate {
		out, err := p.src.Crop(r)
		if err != nil {
			return Result{}, err
		}
		res.Output = out
		p.progress(StageDone, 1.0)
		return res, nil
	}

	res.Immax = Adapt(res.Linear, res.Illuminant, p.Workers)
	if p.Verbosity > 0 && res.Immax > 1.0 {
		log.Printf("Shades of Grey: reducing maxima (immax=%.4f)\n", res.Immax)
	}

	p.progress(StageEncode, 0.66)
	res.Output = res.Linear.Encode(p.Workers)

	p.progress(StageDone, 1.0)
	return res, nil
}
