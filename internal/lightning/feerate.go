package lightning

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FeerateStyle is the unit of an explicit feerate.
type FeerateStyle string

const (
	PerKb FeerateStyle = "perkb"
	PerKw FeerateStyle = "perkw"
)

// Named feerates resolved by the node from its estimator.
const (
	FeerateSlow    = "slow"
	FeerateNormal  = "normal"
	FeerateUrgent  = "urgent"
	FeerateMinimum = "minimum"
)

// Feerate is either a named estimate or an explicit rate.
type Feerate struct {
	Named string
	Rate  uint32
	Style FeerateStyle
}

// FeeratePerKb returns an explicit satoshi-per-kilobyte feerate.
func FeeratePerKb(rate uint32) Feerate { return Feerate{Rate: rate, Style: PerKb} }

// ParseFeerate reads a named estimate, "<n>perkb", "<n>perkw" or a bare
// number, which is perkb.
func ParseFeerate(s string) (Feerate, error) {
	switch s {
	case FeerateSlow, FeerateNormal, FeerateUrgent, FeerateMinimum:
		return Feerate{Named: s}, nil
	}
	digits, style := s, PerKb
	switch {
	case strings.HasSuffix(s, string(PerKb)):
		digits = strings.TrimSuffix(s, string(PerKb))
	case strings.HasSuffix(s, string(PerKw)):
		digits, style = strings.TrimSuffix(s, string(PerKw)), PerKw
	}
	if !isDigits(digits) {
		return Feerate{}, fmt.Errorf("invalid feerate %q", s)
	}
	rate, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return Feerate{}, fmt.Errorf("invalid feerate %q: %w", s, err)
	}
	return Feerate{Rate: uint32(rate), Style: style}, nil
}

func (f Feerate) String() string {
	if f.Named != "" {
		return f.Named
	}
	return strconv.FormatUint(uint64(f.Rate), 10) + string(f.Style)
}

func (f Feerate) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }
