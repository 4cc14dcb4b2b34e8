package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 6
	// MaxLimit caps how many rows any list query can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services. The
// console grows its lists in place, so pages are addressed by offset rather
// than cursor.
type Params struct {
	Limit  int
	Offset int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizeOffset clamps negative offsets to zero.
func NormalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// Normalize returns a copy of the params with limit and offset clamped.
func Normalize(p Params) Params {
	return Params{
		Limit:  NormalizeLimit(p.Limit),
		Offset: NormalizeOffset(p.Offset),
	}
}

// LimitWithBuffer returns the normalized limit plus one to detect whether
// more rows remain past the current page.
func LimitWithBuffer(limit int) int {
	return NormalizeLimit(limit) + 1
}

// NextOffset computes the offset for the next page given how many rows were
// returned on this one.
func NextOffset(p Params, returned int) int {
	return NormalizeOffset(p.Offset) + returned
}
