// Package spectrum defines the WDM comb description and sentinel errors
// for the spectrum subpackage of github.com/optcomlab/gnmodel.
package spectrum

import "errors"

// Sentinel errors for spectrum operations.
var (
	// ErrChannelMismatch indicates the four channel parameter slices do not
	// share one length.
	ErrChannelMismatch = errors.New("spectrum: channel parameter slices must share one length")
)

// Comb describes a transmitted WDM comb as four parallel per-channel slices
// of equal length N. Channel i occupies CenterFreq[i] with symbol rate
// SymbolRate[i], raised-cosine roll-off RollOff[i] and launch power Power[i].
//
// CenterFreq is expected ascending; that ordering is assumed by consumers
// (see nli), not enforced here. A Comb is an immutable input: no method
// mutates it.
type Comb struct {
	CenterFreq []float64 // channel center frequencies, THz
	SymbolRate []float64 // symbol rates, TBaud
	RollOff    []float64 // raised-cosine roll-off factors, in [0,1)
	Power      []float64 // launch powers, W
}

// Channels returns the channel count N.
func (c Comb) Channels() int { return len(c.CenterFreq) }

// Validate reports ErrChannelMismatch unless all four parameter slices share
// one length. An empty comb (N = 0) is valid and yields an all-zero PSD.
func (c Comb) Validate() error {
	n := len(c.CenterFreq)
	if len(c.SymbolRate) != n || len(c.RollOff) != n || len(c.Power) != n {
		return ErrChannelMismatch
	}

	return nil
}
