package models

import "fmt"

// TrumpType is the trump regime a round was played under.
type TrumpType string

const (
	TrumpAlm   TrumpType = "alm"
	TrumpVip   TrumpType = "vip"
	TrumpGode  TrumpType = "gode"
	TrumpHalve TrumpType = "halve"
	TrumpSans  TrumpType = "sans"
)

// TrumpTypes lists every trump type in table order.
var TrumpTypes = []TrumpType{TrumpAlm, TrumpVip, TrumpGode, TrumpHalve, TrumpSans}

var trumpLabels = map[TrumpType]string{
	TrumpAlm:   "Alm.",
	TrumpVip:   "Vip",
	TrumpGode:  "Gode",
	TrumpHalve: "Halve",
	TrumpSans:  "Sans",
}

// Valid reports whether t is one of the known trump types.
func (t TrumpType) Valid() bool {
	_, ok := trumpLabels[t]
	return ok
}

// Label returns the display label for the trump type.
func (t TrumpType) Label() string {
	return trumpLabels[t]
}

// ParseTrumpType converts a wire name into a TrumpType.
func ParseTrumpType(s string) (TrumpType, error) {
	t := TrumpType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown trump type %q", s)
	}
	return t, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t TrumpType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown trump type %q", string(t))
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TrumpType) UnmarshalText(b []byte) error {
	parsed, err := ParseTrumpType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SpecialBid is a named high-stakes bid variant. The zero value means no
// special bid was declared.
type SpecialBid string

const (
	SpecialNone             SpecialBid = ""
	SpecialSoloNolo         SpecialBid = "solo-nolo"
	SpecialPureNolo         SpecialBid = "pure-nolo"
	SpecialOpenNolo         SpecialBid = "open-nolo"
	SpecialSol              SpecialBid = "sol"
	SpecialRenSol           SpecialBid = "ren-sol"
	SpecialBordlaegger      SpecialBid = "bordlaegger"
	SpecialSuperBordlaegger SpecialBid = "super-bordlaegger"
)

// SpecialBids lists every declarable special bid.
var SpecialBids = []SpecialBid{
	SpecialSoloNolo,
	SpecialPureNolo,
	SpecialOpenNolo,
	SpecialSol,
	SpecialRenSol,
	SpecialBordlaegger,
	SpecialSuperBordlaegger,
}

var specialLabels = map[SpecialBid]string{
	SpecialSoloNolo:         "Solo-nolo",
	SpecialPureNolo:         "Ren nolo",
	SpecialOpenNolo:         "Åben nolo",
	SpecialSol:              "Sol",
	SpecialRenSol:           "Ren sol",
	SpecialBordlaegger:      "Bordlægger",
	SpecialSuperBordlaegger: "Super bordlægger",
}

// IsSet reports whether a special bid was declared.
func (s SpecialBid) IsSet() bool {
	return s != SpecialNone
}

// Valid reports whether s is absent or one of the known special bids.
func (s SpecialBid) Valid() bool {
	if s == SpecialNone {
		return true
	}
	_, ok := specialLabels[s]
	return ok
}

// Label returns the display label, or "" for no special bid.
func (s SpecialBid) Label() string {
	return specialLabels[s]
}

// ParseSpecialBid converts a wire name into a SpecialBid. The empty string
// parses to SpecialNone.
func ParseSpecialBid(s string) (SpecialBid, error) {
	b := SpecialBid(s)
	if !b.Valid() {
		return SpecialNone, fmt.Errorf("unknown special bid %q", s)
	}
	return b, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s SpecialBid) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown special bid %q", string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SpecialBid) UnmarshalText(b []byte) error {
	parsed, err := ParseSpecialBid(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
