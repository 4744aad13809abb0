package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// DefaultLimit is used when a caller asks for a page without a size.
const DefaultLimit = 50

// MaxLimit caps page sizes.
const MaxLimit = 200

// EncodeEntryCursor creates an opaque token pointing after the given entry.
// Entries are listed newest first by (entry date, entry sequence).
func EncodeEntryCursor(entryDate time.Time, sequence int) string {
	tokenStr := fmt.Sprintf("%s|%d", entryDate.Format(dateFormat), sequence)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeEntryCursor parses a token produced by EncodeEntryCursor.
func DecodeEntryCursor(token string) (time.Time, int, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	entryDate, err := time.ParseInLocation(dateFormat, parts[0], time.UTC)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}
	sequence, err := strconv.Atoi(parts[1])
	if err != nil || sequence < 1 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (sequence parse)")
	}
	return entryDate, sequence, nil
}

// ClampLimit applies DefaultLimit and MaxLimit to a requested page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
