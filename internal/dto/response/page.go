package response

// Page is the backend's list payload shape. Pages are zero-indexed;
// requesting a page at or past TotalPages yields an empty Content slice.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// Empty returns a zero-value page, used when a fetch never succeeded
func EmptyPage[T any]() *Page[T] {
	return &Page[T]{Content: []T{}}
}
