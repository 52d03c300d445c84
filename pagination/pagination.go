// Package pagination computes the limit and offset windows used by list endpoints.
package pagination

const (
	DefaultLimit = 50
	MaxLimit     = 1000
)

// Window returns the limit and offset to send. A non-positive limit becomes DefaultLimit,
// limits above MaxLimit are capped, and negative offsets become zero.
func Window(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	} else if limit > MaxLimit {
		limit = MaxLimit
	}

	return limit, max(offset, 0)
}

// Offset converts a 1-based page number into an offset for the given limit.
func Offset(page, limit int) int {
	limit, _ = Window(limit, 0)

	if page < 1 {
		page = 1
	}

	return (page - 1) * limit
}
