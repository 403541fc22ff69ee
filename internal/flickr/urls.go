package flickr

import (
	"fmt"

	"flickgrid/internal/domain"
)

// Image size suffixes per the static image hosting convention.
const (
	sizeThumbnail = "m" // 240px on the longest edge
	sizeLarge     = "b" // 1024px on the longest edge
)

// imageURL builds the static image URL for a descriptor and size suffix.
// Construction is pure: identical inputs always yield identical URLs.
func imageURL(desc domain.PhotoDescriptor, size string) string {
	return fmt.Sprintf("https://farm%d.staticflickr.com/%s/%s_%s_%s.jpg",
		desc.Farm, desc.Server, desc.ID, desc.Secret, size)
}

// ThumbnailURL returns the URL of the grid-sized image variant.
func ThumbnailURL(desc domain.PhotoDescriptor) string {
	return imageURL(desc, sizeThumbnail)
}

// LargeImageURL returns the URL of the large image variant.
func LargeImageURL(desc domain.PhotoDescriptor) string {
	return imageURL(desc, sizeLarge)
}
