package command

import (
	"strconv"
	"strings"
)

// Index is a position in a list. It is stored zero-based and converted at the
// edges.
type Index struct {
	zeroBased int
}

// IndexFromOneBased returns the index for the one-based position n.
func IndexFromOneBased(n int) Index { return Index{zeroBased: n - 1} }

// IndexFromZeroBased returns the index for the zero-based position n.
func IndexFromZeroBased(n int) Index { return Index{zeroBased: n} }

// ZeroBased returns the zero-based position.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the one-based position.
func (i Index) OneBased() int { return i.zeroBased + 1 }

// ParseIndex parses a trimmed non-zero unsigned integer as a one-based index.
func ParseIndex(raw string) (Index, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || n == 0 {
		return Index{}, fail(MessageInvalidIndex, err)
	}
	return IndexFromOneBased(int(n)), nil
}
