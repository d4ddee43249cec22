package helpers

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
)

// TimeOfDayPattern accepts HH:MM or HH:MM:SS on a 24-hour clock.
var TimeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// NormalizeTimeOfDay turns HH:MM into HH:MM:SS so that trigger times compare
// equal regardless of how they were entered.
func NormalizeTimeOfDay(s string) (string, error) {
	if !TimeOfDayPattern.MatchString(s) {
		return "", fmt.Errorf("invalid time of day %q", s)
	}
	if len(s) == len("15:04") {
		return s + ":00", nil
	}
	return s, nil
}
