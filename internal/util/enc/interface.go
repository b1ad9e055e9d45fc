package enc

// Encoder turns raw bytes into text.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of bytes) output by this encoder for every input block
	BlocksizeEncoded() int
}
