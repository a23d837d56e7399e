package domain

// PairConfig holds the display precision and quoting direction of an ordered pair.
type PairConfig struct {
	Decimals  int32 `json:"decimals"`
	IsInverse bool  `json:"isInverse"`
}

type pair struct {
	source Region
	target Region
}

// DefaultPairConfig applies to any pair missing from the table.
var DefaultPairConfig = PairConfig{Decimals: 2, IsInverse: false}

// pairConfigs is market convention, not something derivable: inverse pairs are
// quoted as "source per unit of target" (e.g. COP per VES).
var pairConfigs = map[pair]PairConfig{
	{RegionPeru, RegionVenezuela}: {Decimals: 2},
	{RegionPeru, RegionChile}:     {Decimals: 0},
	{RegionPeru, RegionColombia}:  {Decimals: 0},
	{RegionPeru, RegionUSA}:       {Decimals: 2, IsInverse: true},

	{RegionChile, RegionVenezuela}: {Decimals: 4},
	{RegionChile, RegionColombia}:  {Decimals: 2},
	{RegionChile, RegionPeru}:      {Decimals: 4},
	{RegionChile, RegionUSA}:       {Decimals: 0, IsInverse: true},

	{RegionColombia, RegionVenezuela}: {Decimals: 2, IsInverse: true},
	{RegionColombia, RegionChile}:     {Decimals: 2},
	{RegionColombia, RegionPeru}:      {Decimals: 5},
	{RegionColombia, RegionUSA}:       {Decimals: 0, IsInverse: true},

	{RegionUSA, RegionVenezuela}: {Decimals: 2},
	{RegionUSA, RegionColombia}:  {Decimals: 0},
	{RegionUSA, RegionPeru}:      {Decimals: 2},
	{RegionUSA, RegionChile}:     {Decimals: 0},
}

// LookupPairConfig returns the configuration of source -> target, falling
// back to DefaultPairConfig.
func LookupPairConfig(source, target Region) PairConfig {
	if pc, ok := pairConfigs[pair{source, target}]; ok {
		return pc
	}
	return DefaultPairConfig
}

// PairConfigs returns a copy of the table keyed by canonical pair key.
func PairConfigs() map[string]PairConfig {
	out := make(map[string]PairConfig, len(pairConfigs))
	for p, pc := range pairConfigs {
		out[PairKey(p.source, p.target)] = pc
	}
	return out
}
