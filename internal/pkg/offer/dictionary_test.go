//go:build unit

package offer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver(t *testing.T) {
	dicts := &Dictionaries{
		Locations: map[string]LocationEntry{
			"JFK": {CityCode: "NYC", CountryCode: "US"},
		},
		Carriers: map[string]string{"AB": "Air Bravo"},
		Aircraft: map[string]string{"320": "AIRBUS A320"},
	}

	resolveRequest := func(resolve func(*Resolver) Resolution, want Resolution) func(t *testing.T) {
		return func(t *testing.T) {
			got := resolve(NewResolver(dicts))
			assert.Equal(t, want, got)
		}
	}

	t.Run("city_hit", resolveRequest(
		func(r *Resolver) Resolution { return r.City("JFK") },
		Resolution{Value: "NYC", Tier: TierHit}))
	t.Run("city_miss_keeps_raw_code", resolveRequest(
		func(r *Resolver) Resolution { return r.City("LHR") },
		Resolution{Value: "LHR", Tier: TierRawCode}))
	t.Run("carrier_hit", resolveRequest(
		func(r *Resolver) Resolution { return r.Carrier("AB") },
		Resolution{Value: "Air Bravo", Tier: TierHit}))
	t.Run("carrier_miss_keeps_raw_code", resolveRequest(
		func(r *Resolver) Resolution { return r.Carrier("ZZ") },
		Resolution{Value: "ZZ", Tier: TierRawCode}))
	t.Run("aircraft_hit", resolveRequest(
		func(r *Resolver) Resolution { return r.Aircraft("320") },
		Resolution{Value: "AIRBUS A320", Tier: TierHit}))
	t.Run("aircraft_absent_code_is_placeholder", resolveRequest(
		func(r *Resolver) Resolution { return r.Aircraft("") },
		Resolution{Value: Placeholder, Tier: TierPlaceholder}))
}

func TestResolver_NilDictionaries(t *testing.T) {
	resolver := NewResolver(nil)

	assert.Equal(t, Resolution{Value: "SVO", Tier: TierRawCode}, resolver.City("SVO"))
	assert.Equal(t, Resolution{Value: "SU", Tier: TierRawCode}, resolver.Carrier("SU"))
	assert.Equal(t, Resolution{Value: "77W", Tier: TierRawCode}, resolver.Aircraft("77W"))
	assert.Equal(t, Resolution{Value: "", Tier: TierPlaceholder}, resolver.Country("SVO"))
}
