package tgf

import "strconv"

// LabelCodec converts a label type to and from its TGF text form.
// Parse and Format must be symmetric: Parse(Format(v)) == v for every
// value the codec is used with, otherwise the round trip is lossy.
type LabelCodec[T any] struct {
	Parse  func(string) (T, error)
	Format func(T) string
}

// Strings returns the identity codec for string labels. Parse never fails;
// an empty remainder parses as the empty string.
func Strings() LabelCodec[string] {
	return LabelCodec[string]{
		Parse:  func(s string) (string, error) { return s, nil },
		Format: func(s string) string { return s },
	}
}

// Ints returns a base-10 codec for integer labels.
func Ints() LabelCodec[int] {
	return LabelCodec[int]{
		Parse:  strconv.Atoi,
		Format: strconv.Itoa,
	}
}
