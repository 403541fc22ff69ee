package flickr

import (
	"encoding/json"

	"flickgrid/internal/domain"
)

// mapPhotos converts raw photo entries to domain photos, preserving response
// order. Entries that fail to decode or lack one of the four descriptor
// fields are skipped; a partial entry never fails the search.
func mapPhotos(raw []json.RawMessage) []*domain.Photo {
	photos := make([]*domain.Photo, 0, len(raw))
	for _, entry := range raw {
		var p photoEntry
		if err := json.Unmarshal(entry, &p); err != nil {
			continue
		}
		if p.ID == nil || *p.ID == "" {
			continue
		}
		if p.Secret == nil || *p.Secret == "" {
			continue
		}
		if p.Server == nil || *p.Server == "" {
			continue
		}
		if p.Farm == nil {
			continue
		}

		desc := domain.PhotoDescriptor{
			ID:     *p.ID,
			Farm:   *p.Farm,
			Server: *p.Server,
			Secret: *p.Secret,
		}
		photos = append(photos, domain.NewPhoto(desc, p.Title))
	}
	return photos
}
