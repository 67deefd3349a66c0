package whatsapp_test

import (
	"testing"

	"github.com/muhammadheryan/kidswear/thirdparty/whatsapp"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "+8801711111111", want: "8801711111111"},
		{raw: "01711-111111", want: "8801711111111"},
		{raw: "1711111111", want: "8801711111111"},
		{raw: "008801711111111", want: "8801711111111"},
		{raw: "+1 (555) 010-9999", want: "15550109999"},
		{raw: "abc", want: ""},
		{raw: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, whatsapp.NormalizePhone(tt.raw))
		})
	}
}

func TestParseRecipients(t *testing.T) {
	got := whatsapp.ParseRecipients(" 01711111111, +8801711111111 ,, 01822222222,none")
	assert.Equal(t, []string{"8801711111111", "8801822222222"}, got)
	assert.Empty(t, whatsapp.ParseRecipients(""))
}
