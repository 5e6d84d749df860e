package core

import "unsafe"

// AnyBool matches every bool.
func AnyBool() Matcher[bool] { return anyBool }

// AnyByte matches every byte.
func AnyByte() Matcher[byte] { return anyByte }

// AnyBytes matches every byte slice, nil included.
func AnyBytes() Matcher[[]byte] { return anyBytes }

// AnyError matches every error, nil included.
func AnyError() Matcher[error] { return anyError }

// AnyFloat64 matches every float64.
func AnyFloat64() Matcher[float64] { return anyFloat64 }

// AnyInt matches every int.
func AnyInt() Matcher[int] { return anyInt }

// AnyInt64 matches every int64.
func AnyInt64() Matcher[int64] { return anyInt64 }

// AnyPointer matches every unsafe.Pointer, nil included.
func AnyPointer() Matcher[unsafe.Pointer] { return anyPointer }

// AnyRune matches every rune.
func AnyRune() Matcher[rune] { return anyRune }

// AnyString matches every string.
func AnyString() Matcher[string] { return anyString }

// AnyUint matches every uint.
func AnyUint() Matcher[uint] { return anyUint }

// IsNull matches only the nil unsafe.Pointer.
func IsNull() Matcher[unsafe.Pointer] { return isNull }

// Process-wide singletons. They are never tracked by a Registry, so Clear
// leaves them alone.
//
//nolint:gochecknoglobals // shared immutable matchers
var (
	anyBool    Matcher[bool]           = anyMatcher[bool]{}
	anyByte    Matcher[byte]           = anyMatcher[byte]{}
	anyBytes   Matcher[[]byte]         = anyMatcher[[]byte]{}
	anyError   Matcher[error]          = anyMatcher[error]{}
	anyFloat64 Matcher[float64]        = anyMatcher[float64]{}
	anyInt     Matcher[int]            = anyMatcher[int]{}
	anyInt64   Matcher[int64]          = anyMatcher[int64]{}
	anyPointer Matcher[unsafe.Pointer] = anyMatcher[unsafe.Pointer]{}
	anyRune    Matcher[rune]           = anyMatcher[rune]{}
	anyString  Matcher[string]         = anyMatcher[string]{}
	anyUint    Matcher[uint]           = anyMatcher[uint]{}
	isNull     Matcher[unsafe.Pointer] = &eqMatcher[unsafe.Pointer]{want: nil}
)
