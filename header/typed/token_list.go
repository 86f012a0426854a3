package typed

import (
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// TokenList is a comma separated list of tokens,
// the value shape of option-tag, content-coding and language-tag headers.
type TokenList []string

func (l TokenList) renderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, strings.Join(l, ", ")))
}

func (l TokenList) String() string { return strings.Join(l, ", ") }

// Contains reports whether the list has the token, compared case-insensitively.
func (l TokenList) Contains(tok string) bool {
	return slices.ContainsFunc(l, func(s string) bool { return util.EqFold(s, tok) })
}

// Equal compares lists element by element case-insensitively.
func (l TokenList) Equal(val any) bool {
	var other TokenList
	switch v := val.(type) {
	case TokenList:
		other = v
	case []string:
		other = v
	case *TokenList:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(l, other, util.EqFold[string, string])
}

func (l TokenList) isValid(allowEmpty bool) bool {
	if len(l) == 0 {
		return allowEmpty
	}
	return !slices.ContainsFunc(l, func(s string) bool { return !grammar.IsToken(s) })
}

// TokenizeToken cuts a token at the start of in.
func TokenizeToken(in []byte) (rest, tok []byte, err error) {
	tok, rest, ok := grammar.CutToken(in)
	if !ok {
		return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("token expected"))
	}
	return rest, tok, nil
}

// TokenizeTokenList splits one or more comma separated tokens.
func TokenizeTokenList(in []byte) (rest []byte, toks [][]byte, err error) {
	return errtrace.Wrap3(tokenizeList(in, TokenizeToken))
}

// TokenizeOptTokenList splits comma separated tokens, the value may be empty.
func TokenizeOptTokenList(in []byte) (rest []byte, toks [][]byte, err error) {
	return errtrace.Wrap3(tokenizeOptList(in, TokenizeToken))
}

// TokenListFrom converts tokenized list.
func TokenListFrom(toks [][]byte) (TokenList, error) {
	l := make(TokenList, len(toks))
	for i := range toks {
		l[i] = string(toks[i])
	}
	return l, nil
}
