package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]`)

// DrugID derives a record id from the display name and the fetch time in
// milliseconds. Two fetches of the same name in the same millisecond collide.
func DrugID(name string, at time.Time) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(name), "-")
	if strings.Trim(slug, "-") == "" {
		slug = "unknown"
	}
	return slug + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}
