// Package variant normalizes free-form product option maps such as
// {"Age Range": "6M", "Color": "White"} into a canonical, order independent
// form used for cart-line deduplication and order-item labels.
package variant

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/muhammadheryan/kidswear/constant"
)

const labelSeparator = " · "

type Option struct {
	Name  string
	Value string
}

// Options is a canonical option list, sorted by name.
type Options []Option

// Map returns the options as a plain map.
func (o Options) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, opt := range o {
		m[opt.Name] = opt.Value
	}
	return m
}

// Canonicalize trims and collapses whitespace in every key and value, drops
// entries left empty, and sorts the rest by key.
func Canonicalize(options map[string]string) Options {
	seen := make(map[string]string, len(options))
	for k, val := range options {
		name := collapse(k)
		value := collapse(val)
		if name == "" || value == "" {
			continue
		}
		seen[name] = value
	}

	out := make(Options, 0, len(seen))
	for name, value := range seen {
		out = append(out, Option{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// OptionsKey returns a stable dedup key for an option map.
func OptionsKey(options map[string]string) string {
	// encoding/json writes map keys sorted
	b, err := json.Marshal(Canonicalize(options).Map())
	if err != nil {
		return "{}"
	}
	return string(b)
}

// FormatOptions renders a human label, "Default" when nothing survives
// canonicalization.
func FormatOptions(options map[string]string) string {
	canonical := Canonicalize(options)
	if len(canonical) == 0 {
		return constant.DefaultOption
	}
	parts := make([]string, 0, len(canonical))
	for _, opt := range canonical {
		parts = append(parts, opt.Name+": "+opt.Value)
	}
	return strings.Join(parts, labelSeparator)
}

// PickFirstTwoOptions maps an option set onto the fixed size/color columns.
// Only the first two canonical values survive; a third dimension is dropped.
func PickFirstTwoOptions(options map[string]string) (first, second string) {
	first, second = constant.DefaultOption, constant.DefaultOption
	canonical := Canonicalize(options)
	if len(canonical) > 0 {
		first = canonical[0].Value
	}
	if len(canonical) > 1 {
		second = canonical[1].Value
	}
	return first, second
}

// DisplayName composes the order-item name for a product and its options.
func DisplayName(base string, options map[string]string) string {
	if len(Canonicalize(options)) == 0 {
		return base
	}
	return base + " (" + FormatOptions(options) + ")"
}

// Line is one cart line before pricing.
type Line struct {
	ProductID string
	Options   map[string]string
	Quantity  int
}

// MergeLines folds lines with the same product and canonical options into one,
// summing quantities. First-seen order is kept.
func MergeLines(lines []Line) []Line {
	merged := make([]Line, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		key := line.ProductID + "|" + OptionsKey(line.Options)
		if i, ok := index[key]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[key] = len(merged)
		merged = append(merged, Line{
			ProductID: line.ProductID,
			Options:   Canonicalize(line.Options).Map(),
			Quantity:  line.Quantity,
		})
	}
	return merged
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
