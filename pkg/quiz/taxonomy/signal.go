package taxonomy

// Axis identifies which taxonomy a signal contributes to.
type Axis string

const (
	AxisArchetype Axis = "ARCHETYPE"
	AxisDomain    Axis = "DOMAIN"
	AxisScale     Axis = "SCALE"
)

// Signal is a single weighted contribution to one taxonomy member.
// An option carries an ordered list of these, so one answer can score
// archetype, domain and scale at the same time.
type Signal struct {
	Axis   Axis    `json:"axis"`
	Member string  `json:"member"`
	Weight float64 `json:"weight"` // 0 means the default weight of 1
}

// EffectiveWeight resolves the default weight of 1.
func (s Signal) EffectiveWeight() float64 {
	if s.Weight == 0 {
		return 1
	}
	return s.Weight
}

// ArchetypeSignal is a convenience constructor with default weight.
func ArchetypeSignal(member Archetype) Signal {
	return Signal{Axis: AxisArchetype, Member: string(member)}
}

// DomainSignal is a convenience constructor with default weight.
func DomainSignal(member Domain) Signal {
	return Signal{Axis: AxisDomain, Member: string(member)}
}

// ScaleSignal is a convenience constructor with default weight.
func ScaleSignal(member Scale) Signal {
	return Signal{Axis: AxisScale, Member: string(member)}
}
