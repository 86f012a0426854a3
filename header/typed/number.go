package typed

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// TokenizeNumber cuts 1*DIGIT at the start of in.
func TokenizeNumber(in []byte) (rest, tok []byte, err error) {
	n := grammar.IndexFunc(in, func(c byte) bool { return !grammar.IsDigit(c) })
	if n == 0 {
		return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("digits expected"))
	}
	return in[n:], in[:n], nil
}

func parseUint32(tok []byte) (uint32, error) {
	v, err := strconv.ParseUint(string(tok), 10, 32)
	if err != nil {
		return 0, errtrace.Wrap(errorutil.NewParseError(err))
	}
	return uint32(v), nil
}
