package utils

import (
	"strconv"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateID returns a URL-safe nanoid suitable for object keys.
func GenerateID() string {
	id, err := gonanoid.New()
	if err != nil {
		return ""
	}
	return id
}

// ParseID parses a positive numeric path parameter. It returns 0 when invalid.
func ParseID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
