package iir

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// Option configures a Filter at construction.
type Option func(*config) error

type config struct {
	transition int
	form       biquad.Form
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		form:   biquad.DirectFormII,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTransition smooths every parameter change over samples processed
// samples. Zero disables smoothing. It needs at least one channel.
func WithTransition(samples int) Option {
	return func(cfg *config) error {
		if samples < 0 {
			return fmt.Errorf("%w: transition must be >= 0 samples: %d", ErrInvalidConfig, samples)
		}

		cfg.transition = samples

		return nil
	}
}

// WithForm selects the realization form of the processing registers.
// DirectFormI and TransposedDirectFormII filters scale every section
// numerator to the same peak magnitude; DirectFormII keeps the design's
// arrangement with the gain in the first section.
func WithForm(form biquad.Form) Option {
	return func(cfg *config) error {
		if !form.Valid() {
			return fmt.Errorf("%w: unknown realization %v", ErrInvalidConfig, form)
		}

		cfg.form = form

		return nil
	}
}

// WithLogger routes redesign and rejection events to l at Debug level.
// The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) error {
		if l != nil {
			cfg.logger = l
		}

		return nil
	}
}
