// Package naturalness defines the evaluator options and the reference
// English letter-frequency table.
package naturalness

// Reference relative frequencies of English letters, indexed 'a'..'z'.
// Classic corpus statistics; the values sum to 1 within rounding.
var englishFreq = [26]float64{
	0.08167, // a
	0.01492, // b
	0.02782, // c
	0.04253, // d
	0.12702, // e
	0.02228, // f
	0.02015, // g
	0.06094, // h
	0.06966, // i
	0.00153, // j
	0.00772, // k
	0.04025, // l
	0.02406, // m
	0.06749, // n
	0.07507, // o
	0.01929, // p
	0.00095, // q
	0.05987, // r
	0.06327, // s
	0.09056, // t
	0.02758, // u
	0.00978, // v
	0.02360, // w
	0.00150, // x
	0.01974, // y
	0.00074, // z
}

// keyLetters are the letters the boolean gate inspects: the seven most
// frequent English letters plus three of the rarest.
var keyLetters = []byte{'e', 't', 'a', 'o', 'i', 'n', 's', 'z', 'q', 'x'}

// Option configures an Evaluator via functional arguments.
type Option func(*Options)

// Options holds the evaluator's tunable constants.
type Options struct {
	// MinSample is the alphabetic-character count below which any text
	// is accepted as natural (insufficient sample to judge).
	MinSample int

	// Tolerance is the allowed relative deviation per key letter in the
	// boolean gate: fail when |observed−expected| > Tolerance·expected.
	Tolerance float64

	// Calibration divides the mean absolute deviation in the continuous
	// score; deviations at or above it score 0.
	Calibration float64
}

// DefaultOptions returns the calibrated defaults: MinSample=20,
// Tolerance=0.5, Calibration=0.05.
func DefaultOptions() Options {
	return Options{
		MinSample:   20,
		Tolerance:   0.5,
		Calibration: 0.05,
	}
}

// WithMinSample overrides the minimum alphabetic sample size (>0).
func WithMinSample(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MinSample = n
		}
	}
}

// WithTolerance overrides the per-key-letter relative tolerance (>0).
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.Tolerance = t
		}
	}
}

// WithCalibration overrides the score calibration constant (>0).
func WithCalibration(c float64) Option {
	return func(o *Options) {
		if c > 0 {
			o.Calibration = c
		}
	}
}

// Evaluator scores text against the reference table. Stateless beyond
// its options; safe to share across callers.
type Evaluator struct {
	opts Options
}

// New returns an Evaluator with the given options applied over defaults.
func New(opts ...Option) *Evaluator {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	return &Evaluator{opts: o}
}
