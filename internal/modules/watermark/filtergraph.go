package watermark

import "strings"

// Param is a single filter argument. A Param with an empty Key renders
// as a positional value.
type Param struct {
	Key   string
	Value string
}

// Filter is one filter invocation with ordered parameters.
type Filter struct {
	Name   string
	Params []Param
}

// Chain is a linear filter sequence with optional stream labels on both
// ends, e.g. [1:v]scale=...,format=rgba[wm].
type Chain struct {
	Inputs  []string
	Filters []Filter
	Output  string
}

// Graph is an ordered set of chains. Rendering to FFmpeg syntax happens
// only here, at the executor boundary; the compiler works on the
// structured form.
type Graph struct {
	Chains []Chain
}

func (p Param) String() string {
	if p.Key == "" {
		return p.Value
	}
	return p.Key + "=" + p.Value
}

func (f Filter) String() string {
	if len(f.Params) == 0 {
		return f.Name
	}
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return f.Name + "=" + strings.Join(parts, ":")
}

func (c Chain) String() string {
	var b strings.Builder
	for _, in := range c.Inputs {
		b.WriteString(in)
	}
	for i, f := range c.Filters {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.String())
	}
	b.WriteString(c.Output)
	return b.String()
}

func (g *Graph) String() string {
	parts := make([]string, len(g.Chains))
	for i, c := range g.Chains {
		parts[i] = c.String()
	}
	return strings.Join(parts, ";")
}

// Simple reports whether the graph is a single unlabeled chain, which
// can be passed via -vf instead of -filter_complex.
func (g *Graph) Simple() bool {
	return len(g.Chains) == 1 && len(g.Chains[0].Inputs) == 0 && g.Chains[0].Output == ""
}
