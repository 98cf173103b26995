package id

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs sort lexicographically by creation
// time, so orders listed by id come back in placement order.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// At generates a ULID whose time component is t. Times before the Unix
// epoch or past ulid.MaxTime cannot be encoded and return an error.
func At(t time.Time) (string, error) {
	if t.Before(time.UnixMilli(0)) {
		return "", ulid.ErrBigTime
	}
	u, err := ulid.New(ulid.Timestamp(t), rand.Reader)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
