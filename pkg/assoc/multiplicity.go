package assoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Many is the unbounded upper limit.
const Many = -1

// Multiplicity describes the number of partners allowed for
// one end of an association.
type Multiplicity struct {
	Lower   int  `json:"lower"`
	Upper   int  `json:"upper"`
	Ordered bool `json:"ordered,omitempty"`
}

var (
	One        = Multiplicity{Lower: 1, Upper: 1}
	ZeroOrOne  = Multiplicity{Lower: 0, Upper: 1}
	OneOrMore  = Multiplicity{Lower: 1, Upper: Many}
	ZeroOrMore = Multiplicity{Lower: 0, Upper: Many}
)

// AsOrdered returns the ordered variant.
func (m Multiplicity) AsOrdered() Multiplicity {
	m.Ordered = true
	return m
}

// IsSingle reports an upper bound of one.
func (m Multiplicity) IsSingle() bool {
	return m.Upper == 1
}

// IsRequired reports a lower bound greater than zero.
func (m Multiplicity) IsRequired() bool {
	return m.Lower > 0
}

// IsUnbounded reports an unlimited upper bound.
func (m Multiplicity) IsUnbounded() bool {
	return m.Upper == Many
}

// Allows checks whether n partners are valid for this multiplicity.
func (m Multiplicity) Allows(n int) bool {
	return n >= m.Lower && (m.IsUnbounded() || n <= m.Upper)
}

func (m Multiplicity) Validate() error {
	if m.Lower < 0 {
		return fmt.Errorf("negative lower bound %d", m.Lower)
	}
	if !m.IsUnbounded() && m.Upper < 1 {
		return fmt.Errorf("invalid upper bound %d", m.Upper)
	}
	if !m.IsUnbounded() && m.Upper < m.Lower {
		return fmt.Errorf("upper bound %d less than lower bound %d", m.Upper, m.Lower)
	}
	return nil
}

func (m Multiplicity) String() string {
	var s string
	switch {
	case m.Lower == m.Upper:
		s = strconv.Itoa(m.Lower)
	case m.IsUnbounded():
		if m.Lower == 0 {
			s = "*"
		} else {
			s = fmt.Sprintf("%d..*", m.Lower)
		}
	default:
		s = fmt.Sprintf("%d..%d", m.Lower, m.Upper)
	}
	if m.Ordered {
		s += " ordered"
	}
	return s
}

// ParseMultiplicity parses the textual form used by String,
// for example "1", "0..1", "*", "1..*" or "2..4 ordered".
func ParseMultiplicity(s string) (Multiplicity, error) {
	var m Multiplicity

	s = strings.TrimSpace(s)
	if r, ok := strings.CutSuffix(s, "ordered"); ok {
		m.Ordered = true
		s = strings.TrimSpace(r)
	}

	lower, upper, rng := strings.Cut(s, "..")
	if !rng {
		upper = lower
		if lower == "*" {
			lower = "0"
		}
	}

	l, err := strconv.Atoi(lower)
	if err != nil {
		return m, fmt.Errorf("invalid lower bound %q", lower)
	}
	m.Lower = l
	if upper == "*" {
		m.Upper = Many
	} else {
		u, err := strconv.Atoi(upper)
		if err != nil {
			return m, fmt.Errorf("invalid upper bound %q", upper)
		}
		m.Upper = u
	}
	return m, m.Validate()
}
