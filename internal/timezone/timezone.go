package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// ParseDate interpreta uma data YYYY-MM-DD no fuso padrão.
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(""))
}

// ParseDateTime interpreta data YYYY-MM-DD + hora HH:MM[:SS] no fuso padrão.
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	if len(timeStr) > 5 {
		timeStr = timeStr[:5]
	}
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		Location(""),
	)
}
