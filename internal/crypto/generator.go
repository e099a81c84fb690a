package crypto

import (
	"errors"
	"fmt"
)

const (
	lowercaseChars   = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars       = "0123456789"
	punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	allChars = lowercaseChars + uppercaseChars + digitChars + punctuationChars

	// MinLength is the shortest password Generate will produce.
	MinLength = 12
	// DefaultLength is the length used when a caller has no preference.
	DefaultLength = 12
)

// ErrInvalidArgument is returned when Generate is asked for a password
// shorter than MinLength.
var ErrInvalidArgument = errors.New("invalid argument")

// Class is a named, fixed set of characters a password must draw from.
type Class struct {
	Name  string
	Chars string
}

var classes = [...]Class{
	{Name: "lowercase", Chars: lowercaseChars},
	{Name: "uppercase", Chars: uppercaseChars},
	{Name: "digit", Chars: digitChars},
	{Name: "punctuation", Chars: punctuationChars},
}

// Classes returns the character classes in mandatory-pick order.
func Classes() []Class {
	out := make([]Class, len(classes))
	copy(out, classes[:])
	return out
}

// ClassOf reports which class r belongs to.
func ClassOf(r rune) (Class, bool) {
	for _, c := range classes {
		for _, ch := range c.Chars {
			if ch == r {
				return c, true
			}
		}
	}
	return Class{}, false
}

// Generate returns a password of exactly length characters containing at
// least one lowercase letter, uppercase letter, digit and punctuation
// character. The remaining positions are drawn from the union of all classes
// and the result is shuffled so the mandatory picks have no fixed position.
func Generate(src Source, length int) (string, error) {
	if length < MinLength {
		return "", fmt.Errorf("%w: password length should be at least %d characters for better security, got %d",
			ErrInvalidArgument, MinLength, length)
	}

	result := make([]byte, length)

	// Guarantee at least one character from each class.
	for i, c := range classes {
		result[i] = randChar(src, c.Chars)
	}

	for i := len(classes); i < length; i++ {
		result[i] = randChar(src, allChars)
	}

	shuffle(src, result)

	return string(result), nil
}

// randChar picks a uniformly random character from charset.
func randChar(src Source, charset string) byte {
	return charset[src.IntN(len(charset))]
}

// shuffle performs a Fisher-Yates shuffle of data.
func shuffle(src Source, data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
