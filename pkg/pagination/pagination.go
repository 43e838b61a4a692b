package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 20
	// MaxLimit caps how many rows any page query can request.
	MaxLimit = 100
)

// Params holds page/limit pagination inputs from controllers or services.
// The upstream TMS API paginates by page number, not cursor.
type Params struct {
	Page  int
	Limit int
}

// Meta mirrors the pagination block the upstream API returns alongside lists.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
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

// NormalizePage clamps the page number to 1 or greater.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// MetaFor derives the pagination block for a fully in-memory list.
func MetaFor(total int, params Params) Meta {
	limit := NormalizeLimit(params.Limit)
	pages := total / limit
	if total%limit != 0 || pages == 0 {
		pages++
	}
	return Meta{
		Page:  NormalizePage(params.Page),
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
