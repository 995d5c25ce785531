package i18n

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatDuration renders a duration with the locale's unit names, composing
// days, hours, minutes, and seconds: "2 days, 4 hours, 5 seconds". Zero
// components are skipped. Sub-minute durations keep one decimal when
// fractional, so a 3.2s cooldown reads "3.2 seconds" rather than "3 seconds".
func (b *Bundle) FormatDuration(locale string, d time.Duration) string {
	if d < 0 {
		d = 0
	}

	unit := func(key string) string {
		name, _ := b.T(locale, "footer.units."+key, nil)
		return name
	}

	if d < time.Minute {
		secs := d.Seconds()
		if secs != math.Trunc(secs) {
			return fmt.Sprintf("%.1f %s", secs, unit("seconds"))
		}
		return fmt.Sprintf("%d %s", int64(secs), unit("seconds"))
	}

	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", days, unit("days")))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, unit("hours")))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", minutes, unit("minutes")))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d %s", seconds, unit("seconds")))
	}

	return strings.Join(parts, ", ")
}
