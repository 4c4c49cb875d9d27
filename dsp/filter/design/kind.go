package design

import "fmt"

// Kind classifies the response shape of a design.
type Kind int

const (
	LowPass   Kind = iota // passes below the cutoff
	HighPass              // passes above the cutoff
	BandPass              // passes a band around the center
	BandStop              // rejects a band around the center
	LowShelf              // applies a gain below the corner
	HighShelf             // applies a gain above the corner
	BandShelf             // applies a gain inside a band
	AllPass               // flat magnitude, shaped phase
	Other                 // explicit poles and zeros
)

var kindNames = [...]string{
	LowPass:   "LowPass",
	HighPass:  "HighPass",
	BandPass:  "BandPass",
	BandStop:  "BandStop",
	LowShelf:  "LowShelf",
	HighShelf: "HighShelf",
	BandShelf: "BandShelf",
	AllPass:   "AllPass",
	Other:     "Other",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}
