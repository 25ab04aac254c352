package model

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal decode or encode issue
type WarningKind int

const (
	// WarnMalformedNumber means a numeric value did not parse; the field
	// kept its default.
	WarnMalformedNumber WarningKind = iota + 1
	// WarnUnknownEntity means an entity name had no variant and was kept
	// as Unknown.
	WarnUnknownEntity
	// WarnUnknownCode means a known entity carried a group code the
	// decoder does not map.
	WarnUnknownCode
	// WarnUnsupportedKind means an encoder skipped an entity it cannot
	// represent.
	WarnUnsupportedKind
	// WarnLossy means an encoder wrote an entity but dropped some of it.
	WarnLossy
	// WarnDanglingLine means the input ended with an unpaired line.
	WarnDanglingLine
)

func (k WarningKind) String() string {
	switch k {
	case WarnMalformedNumber:
		return "malformed-number"
	case WarnUnknownEntity:
		return "unknown-entity"
	case WarnUnknownCode:
		return "unknown-code"
	case WarnUnsupportedKind:
		return "unsupported-kind"
	case WarnLossy:
		return "lossy"
	case WarnDanglingLine:
		return "dangling-line"
	default:
		return "unknown"
	}
}

// Warning is a recorded, non-fatal issue. Entity is the zero-based index
// of the entity concerned, or -1 when the warning is not about one entity.
type Warning struct {
	Kind    WarningKind
	Entity  int
	Field   string
	Message string
}

func (w Warning) String() string {
	var sb strings.Builder
	sb.WriteString(w.Kind.String())
	if w.Entity >= 0 {
		fmt.Fprintf(&sb, " entity %d", w.Entity)
	}
	if w.Field != "" {
		fmt.Fprintf(&sb, " [%s]", w.Field)
	}
	if w.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(w.Message)
	}
	return sb.String()
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// FilterWarnings returns the warnings of the given kind.
func FilterWarnings(warnings []Warning, kind WarningKind) []Warning {
	var out []Warning
	for _, w := range warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}
