package domain

import "strings"

// LookupKind discriminates the three ways a label can be addressed.
type LookupKind string

const (
	LookupByIdentifier LookupKind = "identifier"
	LookupByBatch      LookupKind = "batch"
	LookupByKit        LookupKind = "kit"
)

// LookupKey is the resolved lookup key for a label: exactly one of the three
// shapes (identifier code; sponsor+trial+batch; sponsor+trial+kit).
type LookupKey struct {
	Kind LookupKind

	Code string

	Sponsor string
	Trial   string
	Batch   string
	Kit     string
}

// ByIdentifier builds an identifier-code lookup key.
func ByIdentifier(code string) LookupKey {
	return LookupKey{Kind: LookupByIdentifier, Code: strings.TrimSpace(code)}
}

// ByBatch builds a sponsor+trial+batch lookup key.
func ByBatch(sponsor, trial, batch string) LookupKey {
	return LookupKey{
		Kind:    LookupByBatch,
		Sponsor: strings.TrimSpace(sponsor),
		Trial:   strings.TrimSpace(trial),
		Batch:   strings.TrimSpace(batch),
	}
}

// ByKit builds a sponsor+trial+kit lookup key.
func ByKit(sponsor, trial, kit string) LookupKey {
	return LookupKey{
		Kind:    LookupByKit,
		Sponsor: strings.TrimSpace(sponsor),
		Trial:   strings.TrimSpace(trial),
		Kit:     strings.TrimSpace(kit),
	}
}

// KeyFromParams constructs a LookupKey from loose route or form parameters.
// Identifier code wins when present; otherwise the sponsor/trial pair with a
// batch or kit number. Parameters satisfying none of the three shapes yield
// ErrInvalidLookup, which marks a navigation error rather than a data error.
func KeyFromParams(code, sponsor, trial, batch, kit string) (LookupKey, error) {
	code = strings.TrimSpace(code)
	sponsor = strings.TrimSpace(sponsor)
	trial = strings.TrimSpace(trial)
	batch = strings.TrimSpace(batch)
	kit = strings.TrimSpace(kit)

	switch {
	case code != "":
		return ByIdentifier(code), nil
	case sponsor != "" && trial != "" && batch != "":
		return ByBatch(sponsor, trial, batch), nil
	case sponsor != "" && trial != "" && kit != "":
		return ByKit(sponsor, trial, kit), nil
	}
	return LookupKey{}, ErrInvalidLookup
}

// Valid reports whether the key satisfies its declared shape.
func (k LookupKey) Valid() bool {
	switch k.Kind {
	case LookupByIdentifier:
		return k.Code != ""
	case LookupByBatch:
		return k.Sponsor != "" && k.Trial != "" && k.Batch != ""
	case LookupByKit:
		return k.Sponsor != "" && k.Trial != "" && k.Kit != ""
	}
	return false
}
