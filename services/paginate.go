package services

import (
	"fmt"
)

// PageSlice is one emitted page of a paginated surface. OffsetY is how far up
// the full scaled image shifts to expose this page's band: 0 for the first
// page, then decreasing by the page height. The renderer clips at page
// boundaries, so boundary rows appear exactly once.
type PageSlice struct {
	OffsetY float64
	Width   float64
	Height  float64
}

// Paginate slices a rendered surface into fixed-size pages. The surface is
// scaled to the page width preserving aspect ratio; pages are emitted until
// the remaining scaled height is consumed, yielding exactly
// ceil(scaledHeight/pageHeight) slices.
func Paginate(surfaceWidth, surfaceHeight, pageWidth, pageHeight float64) ([]PageSlice, error) {
	if surfaceWidth <= 0 || surfaceHeight <= 0 {
		return nil, fmt.Errorf("invalid surface size %gx%g", surfaceWidth, surfaceHeight)
	}
	if pageWidth <= 0 || pageHeight <= 0 {
		return nil, fmt.Errorf("invalid page size %gx%g", pageWidth, pageHeight)
	}

	scaledHeight := surfaceHeight * (pageWidth / surfaceWidth)

	var pages []PageSlice
	offset := 0.0
	for remaining := scaledHeight; remaining > 0; remaining -= pageHeight {
		pages = append(pages, PageSlice{
			OffsetY: offset,
			Width:   pageWidth,
			Height:  pageHeight,
		})
		offset -= pageHeight
	}
	return pages, nil
}
