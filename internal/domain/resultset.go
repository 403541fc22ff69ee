package domain

// SearchResultSet holds the photos returned by one search, tagged with the
// term that produced them. The photo sequence may be reordered or have single
// elements moved out after delivery; membership changes are the only mutation.
type SearchResultSet struct {
	Term   string
	Photos []*Photo
}
