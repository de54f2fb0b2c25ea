package hcv

import (
	"math"

	"github.com/jmylchreest/pigment/pkg/prop"
)

// RotationPolicy selects which attribute a hue rotation preserves when the
// destination hue cannot carry both the current chroma and the current sum.
type RotationPolicy int

const (
	// FavourChroma keeps the chroma and shifts the sum into the new
	// hue's valid range.
	FavourChroma RotationPolicy = iota
	// FavourValue keeps the sum and reduces the chroma to the new hue's
	// maximum if needed.
	FavourValue
)

// String returns the policy name.
func (p RotationPolicy) String() string {
	switch p {
	case FavourChroma:
		return "chroma"
	case FavourValue:
		return "value"
	default:
		return "unknown"
	}
}

// Manipulator is a stateful editor over one HCV colour supporting chroma
// adjustment and hue rotation while preserving geometric validity. When an
// edit takes the colour through grey the hue is remembered, so chromatising
// again restores it. Every mutating operation reports whether the colour
// actually changed, letting callers skip redundant redraws.
//
// A Manipulator is a single-owner accumulator with no internal locking.
type Manipulator struct {
	colour   HCV
	saved    Hue
	hasSaved bool
	clamped  bool
	policy   RotationPolicy
}

// ManipulatorBuilder assembles a Manipulator; the zero configuration is an
// unclamped editor over black favouring chroma on rotation.
type ManipulatorBuilder struct {
	m Manipulator
}

// NewManipulatorBuilder returns a builder with the default configuration.
func NewManipulatorBuilder() *ManipulatorBuilder {
	return &ManipulatorBuilder{}
}

// WithColour seeds the initial colour.
func (b *ManipulatorBuilder) WithColour(c HCV) *ManipulatorBuilder {
	b.m.SetColour(c)
	return b
}

// WithClamped sets clamped mode: chroma increments are bounded by the
// current sum instead of adjusting it.
func (b *ManipulatorBuilder) WithClamped(clamped bool) *ManipulatorBuilder {
	b.m.clamped = clamped
	return b
}

// WithPolicy sets the rotation policy.
func (b *ManipulatorBuilder) WithPolicy(policy RotationPolicy) *ManipulatorBuilder {
	b.m.policy = policy
	return b
}

// Build returns the configured manipulator.
func (b *ManipulatorBuilder) Build() *Manipulator {
	m := b.m
	return &m
}

// Colour returns the current colour.
func (m *Manipulator) Colour() HCV { return m.colour }

// Clamped reports whether chroma increments are bounded by the current sum.
func (m *Manipulator) Clamped() bool { return m.clamped }

// SetClamped switches clamped mode.
func (m *Manipulator) SetClamped(clamped bool) { m.clamped = clamped }

// Policy returns the rotation policy.
func (m *Manipulator) Policy() RotationPolicy { return m.policy }

// SetPolicy switches the rotation policy.
func (m *Manipulator) SetPolicy(policy RotationPolicy) { m.policy = policy }

// SetColour replaces the colour outright. A chromatic colour also becomes
// the remembered hue; a grey one leaves the previous memory untouched.
func (m *Manipulator) SetColour(c HCV) {
	m.colour = c
	if hue, ok := c.Hue(); ok {
		m.saved = hue
		m.hasSaved = true
	}
}

// SavedHue returns the remembered hue, if any.
func (m *Manipulator) SavedHue() (Hue, bool) {
	return m.saved, m.hasSaved
}

// DecrChroma reduces the chroma by delta, stopping at zero. Reaching zero
// turns the colour grey but remembers the hue for a later IncrChroma.
// Reports whether the colour changed.
func (m *Manipulator) DecrChroma(delta prop.Prop) bool {
	if m.colour.chroma == 0 {
		return false
	}
	newChroma := m.colour.chroma.Sub(delta)
	if newChroma == m.colour.chroma {
		return false
	}
	if newChroma == 0 {
		m.saved = m.colour.hue
		m.hasSaved = true
		m.colour = HCV{sum: m.colour.sum}
		return true
	}
	m.colour.chroma = newChroma
	return true
}

// IncrChroma raises the chroma by delta. A grey colour first gets its
// remembered hue back (or pure red if none was ever set); black cannot be
// chromatised at all. In clamped mode the chroma stops at the maximum the
// current sum allows; otherwise it stops at one and the sum is shifted
// into the new chroma's valid range. Reports whether the colour changed.
func (m *Manipulator) IncrChroma(delta prop.Prop) bool {
	if m.colour.chroma == prop.One {
		return false
	}
	if m.colour.sum.IsZero() {
		return false
	}

	hue := m.colour.hue
	if !m.colour.hasHue && m.hasSaved {
		hue = m.saved
	}

	bound := prop.One
	if m.clamped {
		bound = hue.MaxChromaForSum(m.colour.sum)
		if bound < m.colour.chroma {
			// Never reduce an already out-of-bound chroma here.
			bound = m.colour.chroma
		}
	}
	newChroma := m.colour.chroma.Add(delta).Prop()
	if newChroma > bound {
		newChroma = bound
	}
	if newChroma == m.colour.chroma {
		return false
	}

	m.colour.hue = hue
	m.colour.hasHue = true
	m.colour.chroma = newChroma
	if !m.clamped {
		lo, hi := hue.SumRangeForChroma(newChroma)
		if m.colour.sum.Cmp(lo) < 0 {
			m.colour.sum = lo
		} else if m.colour.sum.Cmp(hi) > 0 {
			m.colour.sum = hi
		}
	}
	return true
}

// Rotate turns the hue by the given angle in degrees, positive or negative.
// Greys cannot rotate. The configured policy resolves conflicts between the
// current chroma and the new hue's geometry, and the remembered hue follows
// every successful rotation. Reports whether the colour changed.
func (m *Manipulator) Rotate(angle float64) bool {
	if !m.colour.hasHue {
		return false
	}
	angle = math.Mod(angle, 360)
	if angle == 0 {
		return false
	}
	newHue := HueFromAngle(m.colour.hue.Angle() + angle)
	if newHue == m.colour.hue {
		return false
	}

	switch m.policy {
	case FavourChroma:
		lo, hi := newHue.SumRangeForChroma(m.colour.chroma)
		if m.colour.sum.Cmp(lo) < 0 {
			m.colour.sum = lo
		} else if m.colour.sum.Cmp(hi) > 0 {
			m.colour.sum = hi
		}
	case FavourValue:
		if max := newHue.MaxChromaForSum(m.colour.sum); m.colour.chroma > max {
			m.colour.chroma = max
		}
	}

	m.colour.hue = newHue
	m.saved = newHue
	m.hasSaved = true
	return true
}
