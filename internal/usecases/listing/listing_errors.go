package listing

import "errors"

var (
	ErrInvalidPage        = errors.New("page must be greater than zero")
	ErrInvalidLimit       = errors.New("limit must be between 1 and 100")
	ErrInvalidSort        = errors.New("invalid sort field")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)
