package typed_test

import (
	"github.com/ghettovoice/sipmsg/uri"
)

func mustURI(s string) uri.URI {
	u, err := uri.Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

func ptr[T any](v T) *T { return &v }
