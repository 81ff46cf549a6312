package taxonomy

import "strings"

// Archetype is the primary classification axis.
type Archetype string

const (
	ArchetypeSteward   Archetype = "steward"
	ArchetypeMaker     Archetype = "maker"
	ArchetypeConnector Archetype = "connector"
	ArchetypeGuardian  Archetype = "guardian"
	ArchetypeExplorer  Archetype = "explorer"
	ArchetypeSage      Archetype = "sage"
)

// Domain is the secondary axis (topical area of contribution).
type Domain string

const (
	DomainHumanBeing Domain = "human_being"
	DomainSociety    Domain = "society"
	DomainNature     Domain = "nature"
	DomainTechnology Domain = "technology"
	DomainFinance    Domain = "finance"
	DomainLegacy     Domain = "legacy"
	DomainVision     Domain = "vision"
)

// Scale is the tertiary axis, ordered from most local to most expansive.
type Scale string

const (
	ScaleLocal          Scale = "local"
	ScaleBioregional    Scale = "bioregional"
	ScaleGlobal         Scale = "global"
	ScaleCivilizational Scale = "civilizational"
)

// Archetypes returns all archetype members in declaration order.
// Declaration order is the documented deterministic tie-break order.
func Archetypes() []Archetype {
	return []Archetype{
		ArchetypeSteward,
		ArchetypeMaker,
		ArchetypeConnector,
		ArchetypeGuardian,
		ArchetypeExplorer,
		ArchetypeSage,
	}
}

// Domains returns all domain members in declaration order.
func Domains() []Domain {
	return []Domain{
		DomainHumanBeing,
		DomainSociety,
		DomainNature,
		DomainTechnology,
		DomainFinance,
		DomainLegacy,
		DomainVision,
	}
}

// Scales returns all scale members in declaration order (narrowest first).
func Scales() []Scale {
	return []Scale{
		ScaleLocal,
		ScaleBioregional,
		ScaleGlobal,
		ScaleCivilizational,
	}
}

// ArchetypeKeys returns archetype members as plain strings, for tally maps.
func ArchetypeKeys() []string {
	members := Archetypes()
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = string(m)
	}
	return keys
}

// DomainKeys returns domain members as plain strings.
func DomainKeys() []string {
	members := Domains()
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = string(m)
	}
	return keys
}

// ScaleKeys returns scale members as plain strings.
func ScaleKeys() []string {
	members := Scales()
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = string(m)
	}
	return keys
}

var archetypeLabels = map[Archetype]string{
	ArchetypeSteward:   "Steward",
	ArchetypeMaker:     "Maker",
	ArchetypeConnector: "Connector",
	ArchetypeGuardian:  "Guardian",
	ArchetypeExplorer:  "Explorer",
	ArchetypeSage:      "Sage",
}

var domainLabels = map[Domain]string{
	DomainHumanBeing: "Human Being",
	DomainSociety:    "Society",
	DomainNature:     "Nature",
	DomainTechnology: "Technology",
	DomainFinance:    "Finance & Economy",
	DomainLegacy:     "Legacy",
	DomainVision:     "Vision",
}

var scaleLabels = map[Scale]string{
	ScaleLocal:          "Local",
	ScaleBioregional:    "Bioregional",
	ScaleGlobal:         "Global",
	ScaleCivilizational: "Civilizational",
}

// Label returns the display name for the archetype.
func (a Archetype) Label() string {
	if label, ok := archetypeLabels[a]; ok {
		return label
	}
	return string(a)
}

// Label returns the display name for the domain.
func (d Domain) Label() string {
	if label, ok := domainLabels[d]; ok {
		return label
	}
	return string(d)
}

// Label returns the display name for the scale.
func (s Scale) Label() string {
	if label, ok := scaleLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseArchetype resolves a member id (case-insensitive) to an Archetype.
func ParseArchetype(raw string) (Archetype, bool) {
	candidate := Archetype(strings.ToLower(strings.TrimSpace(raw)))
	for _, m := range Archetypes() {
		if m == candidate {
			return m, true
		}
	}
	return "", false
}

// ParseDomain resolves a member id (case-insensitive) to a Domain.
func ParseDomain(raw string) (Domain, bool) {
	candidate := Domain(strings.ToLower(strings.TrimSpace(raw)))
	for _, m := range Domains() {
		if m == candidate {
			return m, true
		}
	}
	return "", false
}

// ParseScale resolves a member id (case-insensitive) to a Scale.
func ParseScale(raw string) (Scale, bool) {
	candidate := Scale(strings.ToLower(strings.TrimSpace(raw)))
	for _, m := range Scales() {
		if m == candidate {
			return m, true
		}
	}
	return "", false
}
