package core

import (
	"testing"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Outside, "Outside"},
		{Header, "Header"},
		{Tables, "Tables"},
		{Blocks, "Blocks"},
		{Entities, "Entities"},
		{OtherSection, "OtherSection"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestSectionMachineTransitions(t *testing.T) {
	names := []struct {
		name string
		want State
	}{
		{"HEADER", Header},
		{"TABLES", Tables},
		{"BLOCKS", Blocks},
		{"ENTITIES", Entities},
		{"OBJECTS", OtherSection},
		{"THUMBNAILIMAGE", OtherSection},
	}

	for _, tt := range names {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSectionMachine()
			if _, payload := m.Feed(Pair{"0", "SECTION"}); payload {
				t.Error("SECTION must not be payload")
			}
			if _, payload := m.Feed(Pair{"2", tt.name}); payload {
				t.Error("section name must not be payload")
			}
			if m.State() != tt.want {
				t.Fatalf("state = %v, want %v", m.State(), tt.want)
			}
			if m.Name() != tt.name {
				t.Errorf("name = %q, want %q", m.Name(), tt.name)
			}

			state, payload := m.Feed(Pair{"8", "0"})
			if state != tt.want || !payload {
				t.Errorf("Feed() = %v, %v; want %v, true", state, payload, tt.want)
			}

			state, payload = m.Feed(Pair{"0", "ENDSEC"})
			if state != tt.want || payload {
				t.Errorf("ENDSEC Feed() = %v, %v", state, payload)
			}
			if m.State() != Outside {
				t.Errorf("expected Outside after ENDSEC, got %v", m.State())
			}
		})
	}
}

func TestSectionMachineZeroValue(t *testing.T) {
	var m SectionMachine
	if m.State() != Outside {
		t.Errorf("zero value state = %v, want Outside", m.State())
	}
}

func TestSectionMachineOutside(t *testing.T) {
	m := NewSectionMachine()

	if _, payload := m.Feed(Pair{"999", "comment"}); payload {
		t.Error("pairs outside sections are not payload")
	}
	if _, payload := m.Feed(Pair{"0", "ENDSEC"}); payload {
		t.Error("stray ENDSEC is not payload")
	}
	if m.State() != Outside {
		t.Errorf("expected Outside, got %v", m.State())
	}
}

func TestSectionMachineSectionWithoutName(t *testing.T) {
	m := NewSectionMachine()
	m.Feed(Pair{"0", "SECTION"})
	m.Feed(Pair{"9", "$ACADVER"})
	if m.State() != Outside {
		t.Fatalf("expected Outside, got %v", m.State())
	}

	// The machine must still recognize the next proper section.
	m.Feed(Pair{"0", "SECTION"})
	m.Feed(Pair{"2", "ENTITIES"})
	if m.State() != Entities {
		t.Errorf("expected Entities, got %v", m.State())
	}
}

func TestSectionMachineEOFInsideSection(t *testing.T) {
	m := NewSectionMachine()
	m.Feed(Pair{"0", "SECTION"})
	m.Feed(Pair{"2", "ENTITIES"})
	if _, payload := m.Feed(Pair{"0", "EOF"}); payload {
		t.Error("EOF must not be payload")
	}
	if m.State() != Outside {
		t.Errorf("expected Outside after EOF, got %v", m.State())
	}
}

func TestSplitSections(t *testing.T) {
	pairs := Tokenize(`0
SECTION
2
HEADER
9
$ACADVER
1
AC1015
0
ENDSEC
0
SECTION
2
OBJECTS
0
DICTIONARY
0
ENDSEC
0
SECTION
2
ENTITIES
0
LINE
8
0
0
ENDSEC
0
EOF
`)

	sections := SplitSections(pairs)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	wantStates := []State{Header, OtherSection, Entities}
	wantLens := []int{2, 1, 2}
	for i, s := range sections {
		if s.State != wantStates[i] {
			t.Errorf("section %d state = %v, want %v", i, s.State, wantStates[i])
		}
		if len(s.Pairs) != wantLens[i] {
			t.Errorf("section %d has %d pairs, want %d", i, len(s.Pairs), wantLens[i])
		}
	}
	if sections[1].Name != "OBJECTS" {
		t.Errorf("section 1 name = %q", sections[1].Name)
	}

	entities := Payload(sections, Entities)
	if len(entities) != 2 || !entities[0].Is("0", "LINE") {
		t.Errorf("unexpected entity payload %v", entities)
	}
}

func TestSplitSectionsMissingEndsec(t *testing.T) {
	pairs := Tokenize(`0
SECTION
2
BLOCKS
0
BLOCK
0
SECTION
2
ENTITIES
0
CIRCLE
0
EOF
`)

	sections := SplitSections(pairs)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].State != Blocks || sections[1].State != Entities {
		t.Errorf("unexpected states %v, %v", sections[0].State, sections[1].State)
	}
	if len(sections[1].Pairs) != 1 || !sections[1].Pairs[0].Is("0", "CIRCLE") {
		t.Errorf("unexpected entity payload %v", sections[1].Pairs)
	}
}
