package flickr

import "encoding/json"

// searchEnvelope is the top-level search response. stat is "ok" or "fail";
// photos is only present on success.
type searchEnvelope struct {
	Stat    string      `json:"stat"`
	Code    int         `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Photos  *photosPage `json:"photos"`
}

// photosPage wraps the result page. Photo entries stay raw so that a single
// malformed entry cannot fail decoding of the whole page.
type photosPage struct {
	Page    int                `json:"page"`
	Pages   int                `json:"pages"`
	PerPage int                `json:"perpage"`
	Photo   *[]json.RawMessage `json:"photo"`
}

// photoEntry is one search hit. Required descriptor fields are pointers so
// that absence is distinguishable from a zero value.
type photoEntry struct {
	ID     *string `json:"id"`
	Owner  string  `json:"owner,omitempty"`
	Secret *string `json:"secret"`
	Server *string `json:"server"`
	Farm   *int    `json:"farm"`
	Title  string  `json:"title,omitempty"`
}
