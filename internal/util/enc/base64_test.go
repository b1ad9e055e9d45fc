package enc

import (
	"encoding/base64"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

func randomBytes(t *testing.T, seed int64, n int) []byte {
	buf := make([]byte, n)
	_, err := rand.New(rand.NewSource(seed)).Read(buf)
	require.NoError(t, err)
	return buf
}

func Test_Base64Encoder_Vectors(t *testing.T) {
	tests := []struct {
		Name     string
		Input    []byte
		Expected string
	}{
		{Name: "nil", Input: nil, Expected: ""},
		{Name: "empty", Input: []byte{}, Expected: ""},
		{Name: "one byte", Input: []byte{0x4D}, Expected: "TQ=="},
		{Name: "two bytes", Input: []byte{0x4D, 0x61}, Expected: "TWE="},
		{Name: "three bytes", Input: []byte{0x4D, 0x61, 0x6E}, Expected: "TWFu"},
		{Name: "hello", Input: []byte("Hello"), Expected: "SGVsbG8="},
		{Name: "all zero", Input: []byte{0, 0, 0}, Expected: "AAAA"},
		{Name: "all ones", Input: []byte{0xFF, 0xFF, 0xFF}, Expected: "////"},
		{Name: "plus and slash", Input: []byte{0xFB, 0xFF}, Expected: "+/8="},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			require.Equal(t, test.Expected, Encode(test.Input, false))
			require.Equal(t, test.Expected, Encode(test.Input, true))
			require.Equal(t, test.Expected, EncodeToString(test.Input))
		})
	}
}

func Test_Base64Encoder_MatchesStandardEncoding(t *testing.T) {
	for n := 0; n < 300; n++ {
		data := randomBytes(t, int64(n), n)
		expected := base64.StdEncoding.EncodeToString(data)

		require.Equalf(t, expected, Encode(data, false), "sequential, length %v", n)
		require.Equalf(t, expected, Encode(data, true), "parallel, length %v", n)
	}

	require.Equal(t, base64.StdEncoding.EncodeToString(encoderTest), Encode(encoderTest, true))
}

func Test_Base64Encoder_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 1023, 1024, 1025, 1 << 16} {
		data := randomBytes(t, 42, n)

		decoded, err := base64.StdEncoding.DecodeString(Encode(data, true))
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}
}

func Test_Base64Encoder_Length(t *testing.T) {
	for n := 0; n < 100; n++ {
		encoded := Encode(randomBytes(t, 7, n), false)

		require.Equal(t, (n+2)/3*4, len(encoded))
		require.Equal(t, EncodedLen(n), len(encoded))
		require.Zero(t, len(encoded)%4)
	}
}

func Test_Base64Encoder_Padding(t *testing.T) {
	for n := 1; n < 30; n++ {
		encoded := Encode(randomBytes(t, 3, n), false)
		padding := len(encoded) - len(strings.TrimRight(encoded, "="))

		require.Equalf(t, (3-n%3)%3, padding, "wrong padding for length %v", n)
		require.NotContains(t, strings.TrimRight(encoded, "="), "=")
	}
}

func Test_Base64Encoder_DoesNotModifyInput(t *testing.T) {
	data := randomBytes(t, 11, 4096)
	original := make([]byte, len(data))
	copy(original, data)

	Encode(data, true)
	require.Equal(t, original, data)
}

func Test_Base64Encoder_Workers(t *testing.T) {
	data := randomBytes(t, 5, 10000)
	expected := base64.StdEncoding.EncodeToString(data)

	for _, workers := range []int{0, 1, 2, 3, 7, 16, 5000} {
		encoder := Base64Encoder{Parallel: true, Workers: workers}
		require.Equalf(t, expected, encoder.Encode(data), "workers: %v", workers)
	}

	encoder := Base64Encoder{Workers: 8}
	require.Equal(t, 1, encoder.WorkerCount())
	require.Equal(t, expected, encoder.Encode(data))
}

func Test_Base64Encoder_Interface(t *testing.T) {
	var encoder Encoder = &Base64Encoder{}
	require.Equal(t, "Base64", encoder.Name())
	require.Equal(t, byte('S'), encoder.Code())
	require.Equal(t, 3, encoder.BlocksizeRaw())
	require.Equal(t, 4, encoder.BlocksizeEncoded())
	require.Equal(t, "Base64(S)", encoder.(*Base64Encoder).String())
}

func Test_EncodeBlock_WritesOnlyItsRange(t *testing.T) {
	src := []byte("abcdefghijkl")
	dst := []byte(strings.Repeat(".", EncodedLen(len(src))))

	encodeBlock(src, dst, 1, 3)
	require.Equal(t, "....ZGVmZ2hp....", string(dst))
}
