package lightning

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit multipliers, in millisatoshi.
const (
	MsatPerSat = 1_000
	MsatPerBTC = 100_000_000_000
)

// Keywords accepted in place of an amount.
const (
	KeywordAll = "all"
	KeywordAny = "any"
)

var errAmountOverflow = errors.New("amount overflows 64-bit millisatoshi")

// Amount is a non-negative quantity of millisatoshi.
type Amount struct {
	Msat uint64
}

// Msat returns an Amount of n millisatoshi.
func Msat(n uint64) Amount { return Amount{Msat: n} }

// Sat returns an Amount of n satoshi. It panics on overflow and is meant for
// constants; use ParseAmount for user input.
func Sat(n uint64) Amount {
	if n > math.MaxUint64/MsatPerSat {
		panic(errAmountOverflow)
	}
	return Amount{Msat: n * MsatPerSat}
}

// ParseAmount reads "<digits>[msat|sat|btc]". A value without a suffix is
// millisatoshi.
func ParseAmount(s string) (Amount, error) {
	digits, mult := s, uint64(1)
	switch {
	case strings.HasSuffix(s, "msat"):
		digits = strings.TrimSuffix(s, "msat")
	case strings.HasSuffix(s, "sat"):
		digits, mult = strings.TrimSuffix(s, "sat"), MsatPerSat
	case strings.HasSuffix(s, "btc"):
		digits, mult = strings.TrimSuffix(s, "btc"), MsatPerBTC
	}
	if !isDigits(digits) {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, errAmountOverflow)
	}
	if n > math.MaxUint64/mult {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, errAmountOverflow)
	}
	return Amount{Msat: n * mult}, nil
}

func (a Amount) String() string {
	return strconv.FormatUint(a.Msat, 10) + "msat"
}

// MarshalJSON writes the explicit msat form; the node reads bare integers as
// satoshi for some parameters.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// AmountOrAll is an Amount or the keyword "all".
type AmountOrAll struct {
	All    bool
	Amount Amount
}

func ParseAmountOrAll(s string) (AmountOrAll, error) {
	if s == KeywordAll {
		return AmountOrAll{All: true}, nil
	}
	a, err := ParseAmount(s)
	if err != nil {
		return AmountOrAll{}, err
	}
	return AmountOrAll{Amount: a}, nil
}

func (a AmountOrAll) String() string {
	if a.All {
		return KeywordAll
	}
	return a.Amount.String()
}

func (a AmountOrAll) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// AmountOrAny is an Amount or the keyword "any".
type AmountOrAny struct {
	Any    bool
	Amount Amount
}

func ParseAmountOrAny(s string) (AmountOrAny, error) {
	if s == KeywordAny {
		return AmountOrAny{Any: true}, nil
	}
	a, err := ParseAmount(s)
	if err != nil {
		return AmountOrAny{}, err
	}
	return AmountOrAny{Amount: a}, nil
}

func (a AmountOrAny) String() string {
	if a.Any {
		return KeywordAny
	}
	return a.Amount.String()
}

func (a AmountOrAny) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
