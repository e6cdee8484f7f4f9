package utils

import "time"

const isoDate = "2006-01-02"

// AddDaysISO shifts an ISO calendar date (YYYY-MM-DD) by n days. Returns the
// input unchanged when it does not parse, so callers can pass model-produced
// dates through without a guard.
func AddDaysISO(date string, n int) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(isoDate)
}

func ValidISODate(date string) bool {
	_, err := time.Parse(isoDate, date)
	return err == nil
}
