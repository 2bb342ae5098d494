package domain

import (
	"fmt"
	"strings"
)

// ContentEncoding controls how an empty message content is written to the wire.
type ContentEncoding int

const (
	// ContentAsString writes "content": "".
	ContentAsString ContentEncoding = iota
	// ContentAsNull writes "content": null.
	ContentAsNull
	// ContentOmitted drops the field.
	ContentOmitted
)

const DefaultContentEncoding = ContentAsString

func (e ContentEncoding) String() string {
	switch e {
	case ContentAsString:
		return "string"
	case ContentAsNull:
		return "null"
	case ContentOmitted:
		return "omit"
	default:
		return fmt.Sprintf("ContentEncoding(%d)", int(e))
	}
}

// UnmarshalText lets the encoding be read from configuration ("string", "null", "omit").
func (e *ContentEncoding) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "string":
		*e = ContentAsString
	case "null":
		*e = ContentAsNull
	case "omit", "omitted":
		*e = ContentOmitted
	default:
		return fmt.Errorf("unknown content encoding %q", string(text))
	}
	return nil
}
