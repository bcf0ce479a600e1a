package utils

import (
	"time"
)

// isoLayout is ISO-8601 with microseconds and no zone suffix.
const isoLayout = "2006-01-02T15:04:05.000000"

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func FormatISOTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
