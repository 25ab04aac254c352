package reader

import (
	"github.com/tsawler/cadcodec/core"
	"github.com/tsawler/cadcodec/model"
)

// Option configures decoding.
type Option func(*options)

type options struct {
	codeWarnings    bool
	rawUnknown      bool
	danglingWarning bool
}

func defaultOptions() options {
	return options{
		codeWarnings:    true,
		rawUnknown:      true,
		danglingWarning: false,
	}
}

// WithCodeWarnings controls whether unmapped group codes on known entity
// types are reported. Enabled by default.
func WithCodeWarnings(enabled bool) Option {
	return func(o *options) { o.codeWarnings = enabled }
}

// WithRawUnknown controls whether Unknown entities keep their raw pairs.
// Enabled by default.
func WithRawUnknown(enabled bool) Option {
	return func(o *options) { o.rawUnknown = enabled }
}

// WithDanglingWarning records a WarnDanglingLine warning when the input
// ends with an unpaired line. By default the line is dropped silently.
func WithDanglingWarning(enabled bool) Option {
	return func(o *options) { o.danglingWarning = enabled }
}

// Result is the full outcome of parsing interchange text.
type Result struct {
	Document *model.Document

	// Header maps each $VARIABLE of the HEADER section to its value pairs.
	Header map[string][]core.Pair

	// Sections lists the section names in order of appearance.
	Sections []string

	Warnings []model.Warning

	// Dangling is true when an unpaired final line was dropped.
	Dangling bool
}

// HeaderValue returns the first value of a header variable.
func (r *Result) HeaderValue(name string) (string, bool) {
	pairs, ok := r.Header[name]
	if !ok || len(pairs) == 0 {
		return "", false
	}
	return pairs[0].Value, true
}

// Parse decodes interchange text. It never fails: problems the decoder can
// default are reported as warnings on the result.
func Parse(text string, opts ...Option) *Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pairs, dangling := core.TokenizeStats(text)
	res := ParsePairs(pairs, opts...)
	res.Dangling = dangling
	if dangling && o.danglingWarning {
		res.Warnings = append(res.Warnings, model.Warning{
			Kind:    model.WarnDanglingLine,
			Entity:  -1,
			Message: "unpaired final line dropped",
		})
	}
	return res
}

// ParsePairs decodes an already tokenized pair stream.
func ParsePairs(pairs []core.Pair, opts ...Option) *Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sections := core.SplitSections(pairs)
	res := &Result{
		Header: parseHeader(core.Payload(sections, core.Header)),
	}
	for _, s := range sections {
		res.Sections = append(res.Sections, s.Name)
	}

	d := &decoder{opts: o}
	res.Document = d.decodeEntities(core.Payload(sections, core.Entities))
	res.Warnings = d.warnings
	return res
}

// Decode parses interchange text and returns the document and warnings.
//
// Example:
//
//	doc, warnings := reader.Decode(text)
//	for _, w := range warnings {
//	    log.Println(w)
//	}
func Decode(text string, opts ...Option) (*model.Document, []model.Warning) {
	res := Parse(text, opts...)
	return res.Document, res.Warnings
}

// parseHeader groups header payload into variables. Each 9/$NAME pair
// starts a variable; following pairs up to the next 9 are its values.
func parseHeader(pairs []core.Pair) map[string][]core.Pair {
	header := make(map[string][]core.Pair)
	current := ""
	for _, p := range pairs {
		if p.Code == "9" {
			current = p.Value
			if _, ok := header[current]; !ok {
				header[current] = nil
			}
			continue
		}
		if current == "" {
			continue
		}
		header[current] = append(header[current], p)
	}
	return header
}
