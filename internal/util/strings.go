// Package util provides small string helpers shared by the codec packages.
package util

import (
	"strings"
	"sync"
)

func UCase[T ~string](s T) T { return T(strings.ToUpper(string(s))) }

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }

func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	return strings.EqualFold(string(s1), string(s2))
}

// EqFoldBytes compares ASCII byte sequences case-insensitively without allocating.
func EqFoldBytes[T1, T2 ~string | ~[]byte](s1 T1, s2 T2) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := 0; i < len(s1); i++ {
		if lower(s1[i]) != lower(s2[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// PtrStr returns a pointer to a copy of s.
func PtrStr[T ~string](s T) *T { return &s }

// DerefStr returns the pointed value or an empty string.
func DerefStr[T ~string](s *T) T {
	if s == nil {
		return ""
	}
	return *s
}

// EqStrPtr compares optional strings. Two nil pointers are equal.
func EqStrPtr[T ~string](s1, s2 *T) bool {
	if s1 == nil || s2 == nil {
		return s1 == s2
	}
	return *s1 == *s2
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
