package utils

// Pages are zero-indexed; valid pages are [0, totalPages-1].

func HasPrevPage(page int) bool {
	return page > 0
}

func HasNextPage(page, totalPages int) bool {
	return page < totalPages-1
}

// ClampPage keeps a requested page inside the valid range.
// With no pages at all the only sensible value is 0.
func ClampPage(page, totalPages int) int {
	if page < 0 {
		return 0
	}
	if totalPages > 0 && page > totalPages-1 {
		return totalPages - 1
	}
	return page
}
