package obf

import "github.com/veilforge/obf/internal/bijection"

// MaxStringLength is the maximum length accepted by Str — the Go
// realization of spec.md's "a 33rd byte... deliberately makes any
// over-length invocation ill-formed." Go has no way to reject an
// over-length literal at compile time the way a fixed-size parameter pack
// does, so Str instead panics with ErrInvalidStringLength.
const MaxStringLength = 32

const stringBlocks = MaxStringLength / 8

// String is an obfuscated short string literal: up to 32 bytes, packed into
// four 8-byte blocks, each concealed as its own Literal[uint64]. Embedded
// zero bytes round-trip correctly since length is tracked explicitly rather
// than relying on a NUL terminator.
type String struct {
	length int
	blocks [stringBlocks]Literal[uint64]
}

// Str constructs a String holding s, obfuscated under trees built for tier
// e at this call site. It panics with ErrInvalidStringLength if s is
// longer than MaxStringLength bytes.
func Str(s string, e int) String {
	if len(s) > MaxStringLength {
		panic(ErrInvalidStringLength)
	}

	var buf [MaxStringLength]byte
	copy(buf[:], s)

	width := bijection.WidthOf[uint64]()
	str := String{length: len(s)}
	for i := 0; i < stringBlocks; i++ {
		var block uint64
		for j := 0; j < 8; j++ {
			block |= uint64(buf[i*8+j]) << (8 * uint(j))
		}
		// Every block is packed from the one line that calls Str, so each
		// needs its own tree: sub=i keeps the four blocks from collapsing
		// onto the same memoized site.
		node := buildLiteralSite(width, e, 1, i)
		str.blocks[i] = Literal[uint64]{node: node, stored: node.Inject(block)}
	}
	return str
}

// Get recovers the plain string.
func (s String) Get() string {
	var buf [MaxStringLength]byte
	for i := 0; i < stringBlocks; i++ {
		block := s.blocks[i].Get()
		for j := 0; j < 8; j++ {
			buf[i*8+j] = byte(block >> (8 * uint(j)))
		}
	}
	return string(buf[:s.length])
}
