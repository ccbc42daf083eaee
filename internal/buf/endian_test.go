package buf

import (
	"math"
	"testing"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := U64LE(data); got != 0xefcdab8967452301 {
		t.Fatalf("U64LE = 0x%x, want 0xefcdab8967452301", got)
	}
	if got := I64LE(data); got != int64(-0x1032547698badcff) {
		t.Fatalf("I64LE = %d, want %d", got, int64(-0x1032547698badcff))
	}

	one := make([]byte, 4)
	bits := math.Float32bits(1.5)
	one[0], one[1], one[2], one[3] = byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24)
	if got := F32LE(one); got != 1.5 {
		t.Fatalf("F32LE = %v, want 1.5", got)
	}

	short := []byte{0xAA}
	if U32LE(short) != 0 || U64LE(short) != 0 || I64LE(short) != 0 || F32LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}
