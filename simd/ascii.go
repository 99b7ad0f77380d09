package simd

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
// Returns true if all bytes have the high bit clear (values 0x00-0x7F).
//
// This function uses an optimized pure Go implementation with SWAR (SIMD
// Within A Register) technique, which processes 8 bytes at a time using
// uint64 bitwise operations.
//
// generate.MatchString calls it so that ASCII-only input can be turned
// into runes byte by byte, without UTF-8 decoding.
//
// See isASCIIGeneric for implementation details.
func IsASCII(data []byte) bool {
	return isASCIIGeneric(data)
}
