package planning

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDuration renders a minute count for display: "45min", "1h",
// "1h30".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh%d", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

// EndTime adds totalMinutes to a HH:MM start time and wraps modulo 24
// hours. The date component never advances: a bake crossing midnight
// shows an earlier-looking end time on the same calendar date.
func EndTime(start string, totalMinutes int) (string, error) {
	hours, minutes, err := parseClock(start)
	if err != nil {
		return "", err
	}

	total := hours*60 + minutes + totalMinutes
	endHours := (total / 60) % 24
	endMinutes := total % 60

	return fmt.Sprintf("%02d:%02d", endHours, endMinutes), nil
}

// parseClock splits a HH:MM time-of-day string.
func parseClock(s string) (hours, minutes int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}

	hours, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	minutes, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("invalid time of day %q: out of range", s)
	}
	return hours, minutes, nil
}
