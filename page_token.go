package numpager

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

var _encoder = base64.RawURLEncoding

// PageToken is an opaque, URL-safe reference to a page number. It lets an
// API hand out links without exposing numbering as a contract.
//
// The empty string, a nil token and page 1 are equivalent.
type PageToken struct {
	page int
}

func NewPageToken(page int) *PageToken {
	return &PageToken{
		page: page,
	}
}

// DecodePageToken parses a base64-encoded token. An empty string decodes to
// a nil token.
func DecodePageToken(b64String string) (*PageToken, error) {
	if len(b64String) == 0 {
		return nil, nil
	}

	pageBytes, err := _encoder.DecodeString(b64String)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded page token: %w", err)
	}

	page, err := strconv.Atoi(string(pageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode page token value: %w", err)
	}

	if page < 1 {
		return nil, fmt.Errorf("page token points at non-positive page %d", page)
	}

	return &PageToken{
		page: page,
	}, nil
}

// String - implements fmt.Stringer.
func (t *PageToken) String() string {
	if t.IsEmpty() {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(t.page)))
}

// IsEmpty reports whether the token refers to the first page.
func (t *PageToken) IsEmpty() bool {
	return t == nil || t.page <= 1
}

// Page returns the page number, 1 for an empty token.
func (t *PageToken) Page() int {
	if t.IsEmpty() {
		return 1
	}

	return t.page
}

var _ fmt.Stringer = (*PageToken)(nil)
