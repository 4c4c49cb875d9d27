package iir

import (
	"errors"

	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

var (
	// ErrInvalidConfig is returned when a parameter or option is rejected.
	// It is the design package sentinel, so errors from Build match too.
	ErrInvalidConfig = design.ErrInvalidConfig

	// ErrUnsupported is returned by streaming calls on an analysis-only
	// Filter.
	ErrUnsupported = errors.New("iir: unsupported operation")

	// ErrDuplicateDesign is returned when a design name is registered twice.
	ErrDuplicateDesign = errors.New("iir: duplicate design")
)
