package domain

import "strings"

// Region is one of the supported country/currency jurisdictions.
type Region string

const (
	RegionPeru      Region = "PERU"
	RegionChile     Region = "CHILE"
	RegionColombia  Region = "COLOMBIA"
	RegionUSA       Region = "USA"
	RegionVenezuela Region = "VENEZUELA"
)

// CurrencyCode is the settlement currency of a region.
type CurrencyCode string

const (
	CurrencyPEN CurrencyCode = "PEN"
	CurrencyCLP CurrencyCode = "CLP"
	CurrencyCOP CurrencyCode = "COP"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyVES CurrencyCode = "VES"
)

type regionInfo struct {
	region      Region
	currency    CurrencyCode
	label       string
	phonePrefix string
}

// regionTable is the single source of truth for region <-> currency lookups.
// Order matters: it is the display order of AllRegions.
var regionTable = []regionInfo{
	{RegionPeru, CurrencyPEN, "Soles (Peruanos)", "+51"},
	{RegionChile, CurrencyCLP, "Pesos Chilenos", "+56"},
	{RegionColombia, CurrencyCOP, "Pesos Colombianos", "+57"},
	{RegionUSA, CurrencyUSD, "Dólares (USA)", "+1"},
	{RegionVenezuela, CurrencyVES, "Bolívares (VES)", "+58"},
}

var (
	byRegion   = make(map[Region]regionInfo, len(regionTable))
	byCurrency = make(map[CurrencyCode]regionInfo, len(regionTable))
)

func init() {
	for _, info := range regionTable {
		byRegion[info.region] = info
		byCurrency[info.currency] = info
	}
}

// AllRegions returns every supported region.
func AllRegions() []Region {
	out := make([]Region, len(regionTable))
	for i, info := range regionTable {
		out[i] = info.region
	}
	return out
}

// SourceRegions returns the regions a customer can send money from.
// Venezuela is receive-only.
func SourceRegions() []Region {
	out := make([]Region, 0, len(regionTable)-1)
	for _, info := range regionTable {
		if info.region != RegionVenezuela {
			out = append(out, info.region)
		}
	}
	return out
}

// ParseRegion accepts either a region name or a currency code, in any case.
func ParseRegion(s string) (Region, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if info, ok := byRegion[Region(key)]; ok {
		return info.region, true
	}
	if info, ok := byCurrency[CurrencyCode(key)]; ok {
		return info.region, true
	}
	return "", false
}

// IsValid reports whether r is a supported region.
func (r Region) IsValid() bool {
	_, ok := byRegion[r]
	return ok
}

// Currency returns the settlement currency of r, or "" for an unknown region.
func (r Region) Currency() CurrencyCode {
	return byRegion[r].currency
}

// Label returns the display label used on receipts.
func (r Region) Label() string {
	return byRegion[r].label
}

// PairToken is how the region is written inside a pair key. Venezuela is
// keyed by its currency code (PERU_VES), every other region by name.
func (r Region) PairToken() string {
	if r == RegionVenezuela {
		return string(CurrencyVES)
	}
	return string(r)
}

// Region returns the region that settles in c, or "" for an unknown code.
func (c CurrencyCode) Region() Region {
	return byCurrency[c].region
}

// IsValid reports whether c is a supported currency code.
func (c CurrencyCode) IsValid() bool {
	_, ok := byCurrency[c]
	return ok
}

// PairKey builds the canonical "<SOURCE>_<TARGET>" key for an ordered pair.
func PairKey(source, target Region) string {
	return source.PairToken() + "_" + target.PairToken()
}

// ParsePairKey reads a pair key written with region names, currency codes or
// any mixture of the two ("PEN_VES", "PERU_VENEZUELA" and "PERU_VES" are the
// same pair).
func ParsePairKey(key string) (Region, Region, bool) {
	parts := strings.Split(strings.TrimSpace(key), "_")
	if len(parts) != 2 {
		return "", "", false
	}
	source, ok := ParseRegion(parts[0])
	if !ok {
		return "", "", false
	}
	target, ok := ParseRegion(parts[1])
	if !ok {
		return "", "", false
	}
	return source, target, true
}

// RegionFromPhone guesses the customer's home region from an E.164 phone number.
func RegionFromPhone(phone string) (Region, bool) {
	phone = strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	for _, info := range regionTable {
		if strings.HasPrefix(phone, info.phonePrefix) {
			return info.region, true
		}
	}
	return "", false
}
