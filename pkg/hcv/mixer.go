package hcv

import (
	"github.com/jmylchreest/pigment/pkg/prop"
)

// Mixer accumulates weighted colour contributions, in the manner of mixing
// measured parts of paint, and reports their exact arithmetic mean per
// channel. The per-channel accumulators are 128 bits wide, so the totals
// cannot overflow for any realistic number of additions.
//
// A Mixer is a single-owner accumulator with no internal locking.
type Mixer struct {
	red, green, blue prop.Sum
	parts            uint64
}

// Add mixes in the given number of parts of a colour.
func (m *Mixer) Add(c HCV, parts uint64) {
	channels := propsOf(c)
	m.red = m.red.Add(channels[0].MulUint(parts))
	m.green = m.green.Add(channels[1].MulUint(parts))
	m.blue = m.blue.Add(channels[2].MulUint(parts))
	m.parts += parts
}

// Parts returns the total number of parts mixed so far.
func (m *Mixer) Parts() uint64 { return m.parts }

// Mixture returns the weighted mean of everything added so far, with ok
// false while the mixer is empty.
func (m *Mixer) Mixture() (HCV, bool) {
	if m.parts == 0 {
		return HCV{}, false
	}
	return hcvFromProps([3]prop.Prop{
		m.red.DivUint(m.parts).Prop(),
		m.green.DivUint(m.parts).Prop(),
		m.blue.DivUint(m.parts).Prop(),
	}), true
}

// Reset empties the mixer.
func (m *Mixer) Reset() {
	*m = Mixer{}
}
