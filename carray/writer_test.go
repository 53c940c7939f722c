package carray_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/bitmapkit/bmpdump/bmp"
	"github.com/bitmapkit/bmpdump/carray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBitmap decodes a 2x2 24 bit image whose rows are stored bottom
// to top.
func testBitmap(t *testing.T) *bmp.Bitmap {
	b := new(bytes.Buffer)
	b.WriteString("BM")
	for _, v := range []interface{}{
		uint32(54 + 16), uint32(0), uint32(54),
		uint32(40), int32(2), int32(2), uint16(1), uint16(24),
		uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0),
	} {
		binary.Write(b, binary.LittleEndian, v)
	}
	b.Write([]byte{
		// bottom row, 6 pixel bytes plus 2 padding bytes
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x00, 0x00,
		// top row
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x00, 0x00,
	})

	bm, err := bmp.Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	return bm
}

func TestEncode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, carray.Encode(&out, testBitmap(t), "logo-2.bmp"))

	// The top row comes first and the padding bytes are gone.
	expected := `/* logo_2_bmp: 2x2, 24 bits per pixel */
const unsigned char logo_2_bmp_data[] = {
    0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06
};

const unsigned int logo_2_bmp_width = 2;
const unsigned int logo_2_bmp_height = 2;
const unsigned short logo_2_bmp_bits_per_pixel = 24;
`
	assert.Equal(t, expected, out.String())
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"logo", "logo"},
		{"logo-2.bmp", "logo_2_bmp"},
		{"8ball", "_ball"},
		{"UPPER_case9", "UPPER_case9"},
		{"", "_"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, carray.Identifier(tt.in))
	}
}
