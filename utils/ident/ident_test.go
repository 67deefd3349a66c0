package ident

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	now := time.UnixMilli(1718000000123)

	id := New("ORD", now)
	assert.Regexp(t, regexp.MustCompile(`^ORD-1718000000123-[0-9A-F]{8}$`), id)
	assert.NotEqual(t, id, New("ORD", now))
	assert.Regexp(t, `^BKASH-1718000000123-[0-9A-F]{8}$`, New("BKASH", now))
}
