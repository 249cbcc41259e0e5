package validators

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// IsDate aceita só datas de calendário no formato YYYY-MM-DD.
func IsDate(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
