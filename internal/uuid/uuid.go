// Package uuid wraps google/uuid so that identifiers can be bound from
// URI and query parameters by gin.
package uuid

import (
	"strings"

	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// Parse parses s into a UUID.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, err
	}

	return UUID{parsed}, nil
}

// UnmarshalParam implements gin's BindUnmarshaler.
//
// The empty string and the filter keyword "all" both bind to Nil, which
// list endpoints treat as "no filter".
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" || strings.EqualFold(p, "all") {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// IsNil reports whether u is the Nil UUID.
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}
