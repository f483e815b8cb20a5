package numpager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarkerKind discriminates the values a PageMarker can hold.
type MarkerKind uint8

const (
	MarkerNumber MarkerKind = iota
	MarkerJumpLeft
	MarkerJumpRight
)

func (k MarkerKind) Valid() bool {
	return k == MarkerNumber || k == MarkerJumpLeft || k == MarkerJumpRight
}

// AriaLabel returns the assistive label of a jump marker.
func (k MarkerKind) AriaLabel() string {
	switch k {
	case MarkerJumpLeft:
		return "Previous"
	case MarkerJumpRight:
		return "Next"
	case MarkerNumber:
		return ""
	default:
		panic(fmt.Errorf("unknown marker kind %d", k))
	}
}

const (
	jumpLeftToken  = "LEFT"
	jumpRightToken = "RIGHT"
)

// PageMarker is a single slot of the pagination control: either a page
// number or one of the jump markers.
type PageMarker struct {
	Kind MarkerKind
	// Page is set only for MarkerNumber.
	Page int
}

var (
	JumpLeft  = PageMarker{Kind: MarkerJumpLeft}
	JumpRight = PageMarker{Kind: MarkerJumpRight}
)

func PageNumber(page int) PageMarker {
	return PageMarker{Kind: MarkerNumber, Page: page}
}

func (m PageMarker) IsNumber() bool {
	return m.Kind == MarkerNumber
}

func (m PageMarker) IsJump() bool {
	return m.Kind == MarkerJumpLeft || m.Kind == MarkerJumpRight
}

// String - implements fmt.Stringer. Page markers print their number, jump
// markers print "LEFT" or "RIGHT".
func (m PageMarker) String() string {
	switch m.Kind {
	case MarkerNumber:
		return strconv.Itoa(m.Page)
	case MarkerJumpLeft:
		return jumpLeftToken
	case MarkerJumpRight:
		return jumpRightToken
	default:
		return fmt.Sprintf("PageMarker(%d)", m.Kind)
	}
}

// MarshalJSON encodes page markers as JSON numbers and jump markers as the
// strings "LEFT" / "RIGHT".
func (m PageMarker) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case MarkerNumber:
		return json.Marshal(m.Page)
	case MarkerJumpLeft, MarkerJumpRight:
		return json.Marshal(m.String())
	default:
		return nil, fmt.Errorf("cannot marshal page marker of unknown kind %d", m.Kind)
	}
}

func (m *PageMarker) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var token string
		if err := json.Unmarshal(data, &token); err != nil {
			return fmt.Errorf("failed to unmarshal page marker: %w", err)
		}

		switch token {
		case jumpLeftToken:
			*m = JumpLeft
		case jumpRightToken:
			*m = JumpRight
		default:
			return fmt.Errorf("invalid page marker '%s'", token)
		}

		return nil
	}

	var page int
	if err := json.Unmarshal(data, &page); err != nil {
		return fmt.Errorf("failed to unmarshal page marker: %w", err)
	}
	*m = PageNumber(page)

	return nil
}

var (
	_ fmt.Stringer     = PageMarker{}
	_ json.Marshaler   = PageMarker{}
	_ json.Unmarshaler = (*PageMarker)(nil)
)
