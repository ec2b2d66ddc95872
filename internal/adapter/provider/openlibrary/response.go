package openlibrary

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// searchResponse is the subset of the search.json payload we request.
type searchResponse struct {
	Docs []apiDoc `json:"docs"`
}

type apiDoc struct {
	Title      string   `json:"title"`
	AuthorName []string `json:"author_name"`
	ISBN       []string `json:"isbn"`
	CoverI     coverID  `json:"cover_i"`
}

// coverID is an opaque cover identifier. The API sends it as a number, but
// a string is accepted too; null leaves it empty.
type coverID string

func (c *coverID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = coverID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("cover_i: %w", err)
		}
		*c = coverID(n.String())
	}
	return nil
}
