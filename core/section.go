package core

// State is the section the state machine is currently in.
type State int

const (
	Outside State = iota
	Header
	Tables
	Blocks
	Entities
	OtherSection
)

func (s State) String() string {
	switch s {
	case Outside:
		return "Outside"
	case Header:
		return "Header"
	case Tables:
		return "Tables"
	case Blocks:
		return "Blocks"
	case Entities:
		return "Entities"
	case OtherSection:
		return "OtherSection"
	default:
		return "Unknown"
	}
}

// stateForName maps a section name to its state.
func stateForName(name string) State {
	switch name {
	case "HEADER":
		return Header
	case "TABLES":
		return Tables
	case "BLOCKS":
		return Blocks
	case "ENTITIES":
		return Entities
	default:
		return OtherSection
	}
}

// SectionMachine tracks which section a stream of pairs belongs to.
// The zero value is ready to use and starts Outside.
type SectionMachine struct {
	state   State
	name    string
	pending bool // saw 0/SECTION, waiting for 2/NAME
}

// NewSectionMachine creates a state machine in the Outside state.
func NewSectionMachine() *SectionMachine {
	return &SectionMachine{state: Outside}
}

// State returns the current state.
func (m *SectionMachine) State() State {
	return m.state
}

// Name returns the name of the current section, or "" when Outside.
func (m *SectionMachine) Name() string {
	return m.name
}

// Feed advances the machine by one pair. It returns the state owning the
// pair and whether the pair is section payload. Delimiters (SECTION, the
// name pair, ENDSEC, EOF) are never payload.
func (m *SectionMachine) Feed(p Pair) (State, bool) {
	if m.pending {
		m.pending = false
		if p.Code == "2" {
			m.state = stateForName(p.Value)
			m.name = p.Value
			return m.state, false
		}
		// SECTION without a name: stay outside and treat this pair normally
	}

	if p.Code == "0" {
		switch p.Value {
		case "SECTION":
			// A SECTION inside an unterminated section closes it implicitly.
			m.state = Outside
			m.name = ""
			m.pending = true
			return Outside, false
		case "ENDSEC":
			owner := m.state
			m.state = Outside
			m.name = ""
			return owner, false
		case "EOF":
			m.state = Outside
			m.name = ""
			return Outside, false
		}
	}

	return m.state, m.state != Outside
}

// Section is the payload of one named section.
type Section struct {
	State State
	Name  string
	Pairs []Pair
}

// SplitSections runs pairs through a SectionMachine and returns the payload
// of every section in order of appearance. Pairs outside any section are
// dropped.
func SplitSections(pairs []Pair) []Section {
	var sections []Section
	m := NewSectionMachine()
	open := false

	for _, p := range pairs {
		before := m.State()
		_, payload := m.Feed(p)

		if before != Outside && m.State() != before {
			open = false
		}
		if m.State() != Outside && !open {
			sections = append(sections, Section{State: m.State(), Name: m.Name()})
			open = true
		}
		if payload {
			cur := &sections[len(sections)-1]
			cur.Pairs = append(cur.Pairs, p)
		}
	}

	return sections
}

// Payload returns the concatenated payload of every section in the given state.
func Payload(sections []Section, state State) []Pair {
	var out []Pair
	for _, s := range sections {
		if s.State == state {
			out = append(out, s.Pairs...)
		}
	}
	return out
}
