package wardrobe

import "errors"

var (
	ErrClothingNotFound = errors.New("clothing item not found")
	ErrOutfitNotFound   = errors.New("outfit not found")
	ErrEmptySelection   = errors.New("outfit of today requires at least one clothing id")
	ErrInvalidType      = errors.New("unknown clothing type")
	ErrEmptyName        = errors.New("outfit name must not be empty")
	ErrMissingType      = errors.New("similarity query requires a clothing type")
)
