package kv

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates a record id of the form "<prefix><unix-millis>-<suffix>".
// The prefix includes the trailing colon (e.g. "post:"), so the id doubles as
// the storage key. Millisecond timestamps make ids coarsely sortable by
// creation time; the random suffix makes collisions practically impossible.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + suffix
}

// HasPrefix reports whether id carries the given type prefix. Handlers use it
// to reject ids that would address a record of a different type.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix) && len(id) > len(prefix)
}
