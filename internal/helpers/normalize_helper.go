package helpers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugSeparate = regexp.MustCompile(`[\s_]+`)
	slugCollapse = regexp.MustCompile(`-{2,}`)

	time24Hour = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	time12Hour = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
)

// ToSlug converts a title to a URL-friendly slug.
// "My Awesome Event!" becomes "my-awesome-event".
func ToSlug(title string) string {
	slug := strings.TrimSpace(strings.ToLower(title))
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugSeparate.ReplaceAllString(slug, "-")
	return slugCollapse.ReplaceAllString(slug, "-")
}

// NormalizeDate parses a free-form date string ("March 15, 2026",
// "2026-03-15", "03/15/2026", ...) and returns only the calendar-date
// portion in ISO-8601 form (YYYY-MM-DD).
func NormalizeDate(raw string) (string, error) {
	parsed, err := dateparse.ParseIn(strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid date value %q", raw)
	}
	return parsed.Format("2006-01-02"), nil
}

// NormalizeTime converts a time string to zero-padded 24-hour HH:MM.
// Accepts "14:30", "9:05 AM", "2:30 PM", etc. The 12-hour form requires an
// hour between 1 and 12, so inputs like "13:00 PM" are rejected.
func NormalizeTime(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	if m := time24Hour.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 24 && minute < 60 {
			return fmt.Sprintf("%02d:%02d", hour, minute), nil
		}
	}

	if m := time12Hour.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour >= 1 && hour <= 12 && minute < 60 {
			switch strings.ToUpper(m[3]) {
			case "PM":
				if hour != 12 {
					hour += 12
				}
			case "AM":
				if hour == 12 {
					hour = 0
				}
			}
			return fmt.Sprintf("%02d:%02d", hour, minute), nil
		}
	}

	return "", fmt.Errorf("invalid time value %q: expected HH:MM or H:MM AM/PM", raw)
}
