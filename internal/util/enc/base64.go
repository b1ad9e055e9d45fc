package enc

import (
	"fmt"
	"runtime"
)

const (
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// padChar fills the final group when the input is not a multiple of 3 bytes
	padChar = '='
)

// EncodedLen returns the length of the base-64 text for n input bytes. A short final
// group is still padded to a full 4 characters.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode returns the standard (RFC 4648, padded) base-64 text of source. Nil and empty
// input both encode to an empty string. When parallel is set, complete 3-byte groups are
// spread over up to GOMAXPROCS workers; the result is identical either way.
func Encode(source []byte, parallel bool) string {
	workers := 1
	if parallel {
		workers = runtime.GOMAXPROCS(0)
	}
	return encode(source, workers)
}

// EncodeToString is the sequential shorthand for Encode(source, false).
func EncodeToString(source []byte) string {
	return encode(source, 1)
}

func encode(source []byte, workers int) string {
	if len(source) == 0 {
		return ""
	}

	dst := make([]byte, EncodedLen(len(source)))
	fullGroups := len(source) / 3

	if workers <= 1 {
		encodeBlock(source, dst, 0, fullGroups)
	} else {
		dispatchParallel(source, dst, Partition(fullGroups, workers))
	}

	// Workers have joined by now, the tail is never written concurrently.
	encodeRemainder(source, dst, fullGroups)

	return string(dst)
}

// encodeBlock transcodes complete groups [begin, end) of src into dst. Group i reads
// src[i*3:i*3+3] and writes dst[i*4:i*4+4] and nothing else.
func encodeBlock(src, dst []byte, begin, end int) {
	for i := begin; i < end; i++ {
		s := src[i*3 : i*3+3]
		d := dst[i*4 : i*4+4]

		x1, x2, x3 := s[0], s[1], s[2]
		d[0] = cb64[x1>>2]
		d[1] = cb64[((x1<<4)&0x30)|(x2>>4)]
		d[2] = cb64[((x2<<2)&0x3C)|(x3>>6)]
		d[3] = cb64[x3&0x3F]
	}
}

// encodeRemainder writes the last, padded group for the 0-2 bytes following fullGroups.
func encodeRemainder(src, dst []byte, fullGroups int) {
	si, di := fullGroups*3, fullGroups*4

	switch len(src) - si {
	case 1:
		x1 := src[si]
		dst[di] = cb64[x1>>2]
		dst[di+1] = cb64[(x1<<4)&0x30]
		dst[di+2] = padChar
		dst[di+3] = padChar
	case 2:
		x1, x2 := src[si], src[si+1]
		dst[di] = cb64[x1>>2]
		dst[di+1] = cb64[((x1<<4)&0x30)|(x2>>4)]
		dst[di+2] = cb64[(x2<<2)&0x3C]
		dst[di+3] = padChar
	}
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters using the standard alphabet and '=' padding.
type Base64Encoder struct {
	// Parallel spreads the complete groups over several goroutines
	Parallel bool
	// Workers caps the number of goroutines used when Parallel is set. Zero means GOMAXPROCS.
	Workers int
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return encode(data, b.WorkerCount())
}

// WorkerCount returns the number of workers Encode will ask for. The actual number is
// further limited by the number of complete groups in the input.
func (b *Base64Encoder) WorkerCount() int {
	if !b.Parallel {
		return 1
	}
	if b.Workers > 0 {
		return b.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (b *Base64Encoder) BlocksizeRaw() int {
	return 3
}

func (b *Base64Encoder) BlocksizeEncoded() int {
	return 4
}
