package domain

// PhotoDescriptor identifies a remotely hosted photo. The four fields are
// everything needed to construct any image URL for the photo.
type PhotoDescriptor struct {
	ID     string // Opaque photo identifier
	Farm   int    // Server farm partition used in image hostnames
	Server string // Server identifier within the farm
	Secret string // Capability token required in image URLs
}

// Photo is a descriptor plus lazily populated image buffers.
// The thumbnail is attached while a search completes; the large image is
// fetched on demand. Each buffer is set at most once and never invalidated.
type Photo struct {
	Descriptor PhotoDescriptor
	Title      string // Display title from the search response (may be empty)

	thumbnail  []byte
	largeImage []byte
}

// NewPhoto creates a photo with no image data attached yet.
func NewPhoto(desc PhotoDescriptor, title string) *Photo {
	return &Photo{Descriptor: desc, Title: title}
}

// Thumbnail returns the thumbnail bytes, or nil if not yet attached.
func (p *Photo) Thumbnail() []byte {
	return p.thumbnail
}

// SetThumbnail attaches the thumbnail bytes. Later calls are ignored.
func (p *Photo) SetThumbnail(buf []byte) {
	if p.thumbnail == nil {
		p.thumbnail = buf
	}
}

// LargeImage returns the large image bytes, or nil if not yet fetched.
func (p *Photo) LargeImage() []byte {
	return p.largeImage
}

// SetLargeImage attaches the large image bytes. Later calls are ignored.
func (p *Photo) SetLargeImage(buf []byte) {
	if p.largeImage == nil {
		p.largeImage = buf
	}
}

// DisplayTitle returns the photo title, falling back to the photo ID for
// untitled uploads.
func (p *Photo) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Descriptor.ID
}
