package grammar

// SkipLWS drops leading linear white space, folded lines included.
func SkipLWS(in []byte) []byte {
	for {
		n := LWSLen(in)
		if n == 0 {
			return in
		}
		in = in[n:]
	}
}

// TrimLWS drops linear white space on both sides of in.
func TrimLWS(in []byte) []byte {
	in = SkipLWS(in)
	for len(in) > 0 {
		switch in[len(in)-1] {
		case ' ', '\t', '\r', '\n':
			in = in[:len(in)-1]
			continue
		}
		break
	}
	return in
}

// CutToken splits the token at the start of in.
func CutToken(in []byte) (tok, rest []byte, ok bool) {
	n := TokenLen(in)
	if n == 0 {
		return nil, in, false
	}
	return in[:n], in[n:], true
}

// CutQuoted splits the quoted-string at the start of in. Quotes stay in tok.
func CutQuoted(in []byte) (tok, rest []byte, ok bool) {
	n := QuotedStringLen(in)
	if n == 0 {
		return nil, in, false
	}
	return in[:n], in[n:], true
}

// CutByte consumes c at the start of in, optionally surrounded by LWS.
func CutByte(in []byte, c byte) (rest []byte, ok bool) {
	rest = SkipLWS(in)
	if len(rest) == 0 || rest[0] != c {
		return in, false
	}
	return SkipLWS(rest[1:]), true
}

// IndexUnquoted returns index of the first c in s that is not inside a quoted-string
// or an angle-bracketed URI, or -1.
func IndexUnquoted(s []byte, c byte) int {
	var quoted, escaped bool
	var angle int
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case quoted:
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				quoted = false
			}
			continue
		case b == c && angle == 0:
			return i
		case b == '"':
			quoted = true
		case b == '<':
			angle++
		case b == '>' && angle > 0:
			angle--
		}
	}
	return -1
}

// CutUnquoted slices s around the first top-level sep, see [IndexUnquoted].
func CutUnquoted(s []byte, sep byte) (before, after []byte, found bool) {
	if i := IndexUnquoted(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, nil, false
}

// IndexFunc returns index of the first byte of s for which stop reports true, or len(s).
func IndexFunc(s []byte, stop func(c byte) bool) int {
	for i := 0; i < len(s); i++ {
		if stop(s[i]) {
			return i
		}
	}
	return len(s)
}
