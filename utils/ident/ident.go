package ident

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns "<prefix>-<unix millis>-<8 random uppercase hex chars>".
func New(prefix string, now time.Time) string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return prefix + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + random
}
