package demo

import (
	"strings"

	"github.com/tradiehq/tradiehq/internal/clock"
)

// staticCodes are the long-lived demo codes handed out to prospects.
var staticCodes = map[string]struct{}{
	"TRADIE2025": {},
	"DEMO-TRIAL": {},
	"MATE-RATES": {},
}

type codeValidator struct {
	clk clock.Clock
}

// valid reports whether code is redeemable right now. Codes are matched
// case-sensitively after trimming. Besides the static list, a rolling
// test-demo-YYYYMMDD code is accepted for the current day only.
func (v codeValidator) valid(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	if _, ok := staticCodes[code]; ok {
		return true
	}
	return code == "test-demo-"+v.clk.Now().UTC().Format("20060102")
}
