package offer

// Placeholder is rendered wherever display data is absent. Missing codes
// and dictionary misses are a normal, displayable outcome, not an error.
const Placeholder = "—"

// Tier tells the caller how a code was resolved.
type Tier int

const (
	// TierHit means the dictionary contained the code.
	TierHit Tier = iota
	// TierRawCode means the dictionary missed but the raw code is usable.
	TierRawCode
	// TierPlaceholder means there was nothing to resolve at all.
	TierPlaceholder
)

// Resolution is the outcome of one dictionary lookup.
type Resolution struct {
	Value string
	Tier  Tier
}

// Resolver maps provider short codes to human-readable names through one
// response's dictionaries. A nil dictionary set is valid; every lookup
// then degrades to the raw code or the placeholder.
type Resolver struct {
	dicts *Dictionaries
}

func NewResolver(dicts *Dictionaries) *Resolver {
	return &Resolver{dicts: dicts}
}

// City resolves an airport code to its city code, falling back to the
// airport code itself.
func (r *Resolver) City(iataCode string) Resolution {
	if iataCode == "" {
		return Resolution{Value: Placeholder, Tier: TierPlaceholder}
	}

	if r.dicts != nil {
		if entry, ok := r.dicts.Locations[iataCode]; ok && entry.CityCode != "" {
			return Resolution{Value: entry.CityCode, Tier: TierHit}
		}
	}

	return Resolution{Value: iataCode, Tier: TierRawCode}
}

// Country resolves an airport code to its country code; a miss yields an
// empty value at the placeholder tier, matching how the list view leaves
// the country blank rather than echoing the airport code.
func (r *Resolver) Country(iataCode string) Resolution {
	if r.dicts != nil {
		if entry, ok := r.dicts.Locations[iataCode]; ok && entry.CountryCode != "" {
			return Resolution{Value: entry.CountryCode, Tier: TierHit}
		}
	}

	return Resolution{Value: "", Tier: TierPlaceholder}
}

// Carrier resolves an airline code to its full name, falling back to the
// code.
func (r *Resolver) Carrier(code string) Resolution {
	if code == "" {
		return Resolution{Value: Placeholder, Tier: TierPlaceholder}
	}

	if r.dicts != nil {
		if name, ok := r.dicts.Carriers[code]; ok && name != "" {
			return Resolution{Value: name, Tier: TierHit}
		}
	}

	return Resolution{Value: code, Tier: TierRawCode}
}

// Aircraft resolves an aircraft type code to its full name. An absent code
// resolves to the placeholder glyph.
func (r *Resolver) Aircraft(code string) Resolution {
	if code == "" {
		return Resolution{Value: Placeholder, Tier: TierPlaceholder}
	}

	if r.dicts != nil {
		if name, ok := r.dicts.Aircraft[code]; ok && name != "" {
			return Resolution{Value: name, Tier: TierHit}
		}
	}

	return Resolution{Value: code, Tier: TierRawCode}
}
