package shared

import (
	"math"
	"strings"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins a prefix and its parts into a colon separated key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// PageBounds returns the [start, end) indexes of a 1-based page over total items.
func PageBounds(total, page, limit int) (start, end int) {
	if page < 1 {
		page = 1
	}

	if limit <= 0 {
		return 0, total
	}

	start = (page - 1) * limit
	if start > total {
		start = total
	}

	end = start + limit
	if end > total {
		end = total
	}

	return start, end
}
