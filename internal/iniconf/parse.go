// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package iniconf

// Diagnostic describes a line that was dropped during parsing.
type Diagnostic struct {
	// Line is the 1-based line number in the document.
	Line int
	// Text is the raw line content.
	Text string
}

// Option configures [Parse].
type Option func(*parser)

// WithDiagnostics installs fn to be called for every dropped line. The hook
// does not change the parse result.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(p *parser) {
		p.diagnose = fn
	}
}

type parser struct {
	cfg      *Config
	current  Section
	diagnose func(Diagnostic)
}

// Parse converts document into a [Config]. It never fails.
func Parse(document string, opts ...Option) *Config {
	p := &parser{cfg: newConfig()}
	for _, opt := range opts {
		opt(p)
	}

	for i, raw := range splitLines(document) {
		p.apply(i+1, raw, ClassifyLine(raw))
	}

	return p.cfg
}

func (p *parser) apply(number int, raw string, line Line) {
	switch line.Kind {
	case LineComment:
	case LineKeyValue:
		if p.current != nil {
			p.current[line.Key] = line.Value
			return
		}
		p.cfg.entries[line.Key] = Value{scalar: line.Value}
	case LineSection:
		p.current = make(Section)
		p.cfg.entries[line.Section] = Value{section: p.current}
	case LineBlank:
		p.current = nil
	default:
		if p.diagnose != nil {
			p.diagnose(Diagnostic{Line: number, Text: raw})
		}
	}
}
