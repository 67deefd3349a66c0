package variant_test

import (
	"testing"

	"github.com/muhammadheryan/kidswear/utils/variant"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	got := variant.Canonicalize(map[string]string{
		"  Color ":    " Off   White ",
		"Age   Range": "6M",
		"":            "ignored",
		"Pattern":     "   ",
	})
	assert.Equal(t, variant.Options{
		{Name: "Age Range", Value: "6M"},
		{Name: "Color", Value: "Off White"},
	}, got)

	assert.Empty(t, variant.Canonicalize(nil))
}

func TestFormatOptions(t *testing.T) {
	tests := []struct {
		name    string
		options map[string]string
		want    string
	}{
		{name: "empty map", options: map[string]string{}, want: "Default"},
		{name: "only blank entries", options: map[string]string{" ": "x"}, want: "Default"},
		{name: "single option", options: map[string]string{"Size": "M"}, want: "Size: M"},
		{
			name:    "sorted by name",
			options: map[string]string{"Color": "White", "Age Range": "6M"},
			want:    "Age Range: 6M · Color: White",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, variant.FormatOptions(tt.options))
		})
	}
}

func TestFormatOptions_OrderIndependent(t *testing.T) {
	a := map[string]string{"Color": "White", "Age Range": "6M"}
	b := map[string]string{"Age Range": "6M", "Color": "White"}
	assert.Equal(t, variant.FormatOptions(a), variant.FormatOptions(b))
	assert.Equal(t, variant.OptionsKey(a), variant.OptionsKey(b))
	assert.Equal(t, `{"Age Range":"6M","Color":"White"}`, variant.OptionsKey(a))
}

func TestPickFirstTwoOptions(t *testing.T) {
	tests := []struct {
		name       string
		options    map[string]string
		wantFirst  string
		wantSecond string
	}{
		{name: "no options", options: nil, wantFirst: "Default", wantSecond: "Default"},
		{name: "one option", options: map[string]string{"Size": "L"}, wantFirst: "L", wantSecond: "Default"},
		{
			name:       "two options",
			options:    map[string]string{"Color": "White", "Age Range": "6M"},
			wantFirst:  "6M",
			wantSecond: "White",
		},
		{
			name:       "third dimension dropped",
			options:    map[string]string{"Pattern": "Striped", "Color": "Blue", "Age Range": "2Y"},
			wantFirst:  "2Y",
			wantSecond: "Blue",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := variant.PickFirstTwoOptions(tt.options)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantSecond, second)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Romper", variant.DisplayName("Romper", nil))
	assert.Equal(t, "Romper (Age Range: 6M · Color: White)",
		variant.DisplayName("Romper", map[string]string{"Color": "White", "Age Range": "6M"}))
}

func TestMergeLines(t *testing.T) {
	lines := []variant.Line{
		{ProductID: "1", Options: map[string]string{"Color": "White", "Age Range": "6M"}, Quantity: 1},
		{ProductID: "2", Options: nil, Quantity: 3},
		{ProductID: "1", Options: map[string]string{"Age Range": " 6M", "Color": "White "}, Quantity: 2},
		{ProductID: "1", Options: map[string]string{"Age Range": "1Y", "Color": "White"}, Quantity: 1},
	}

	got := variant.MergeLines(lines)
	assert.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ProductID)
	assert.Equal(t, 3, got[0].Quantity)
	assert.Equal(t, map[string]string{"Age Range": "6M", "Color": "White"}, got[0].Options)
	assert.Equal(t, 3, got[1].Quantity)
	assert.Equal(t, 1, got[2].Quantity)
}
