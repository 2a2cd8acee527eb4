package periodic

// Element is one entry of the periodic table. Elements are immutable
// reference data: the pool is built once at startup and never mutated.
type Element struct {
	// AtomicNumber uniquely identifies the element.
	AtomicNumber int

	// Symbol is the one- or two-letter chemical symbol, e.g. "Na".
	Symbol string

	// Name is the English element name.
	Name string

	// AtomicMass is the standard atomic weight in u. For elements with no
	// stable isotope this is the mass number of the most stable isotope.
	AtomicMass float64

	// Category is the element's chemical family.
	Category Category

	// Group is the table column (1-18), or 0 for lanthanides and actinides.
	Group int

	// Period is the table row (1-7).
	Period int

	// State is the physical state at room temperature.
	State State

	// DiscoveryYear is the year of discovery. Zero means the element has
	// been known since antiquity (or the year is unknown).
	DiscoveryYear int
}

// Discovered reports whether the element has a recorded discovery year.
func (e Element) Discovered() bool {
	return e.DiscoveryYear != 0
}

// State is the physical state of an element at room temperature.
type State string

const (
	StateSolid   State = "solid"
	StateLiquid  State = "liquid"
	StateGas     State = "gas"
	StateUnknown State = "unknown"
)

// AllStates lists the states in display order.
func AllStates() []State {
	return []State{StateSolid, StateLiquid, StateGas, StateUnknown}
}
