package bmp

import "fmt"

// InvalidSignatureError reports that the first two bytes of the file
// are not the "BM" magic. The value holds the offending bytes.
type InvalidSignatureError [2]byte

func (e InvalidSignatureError) Error() string {
	return fmt.Sprintf("bmp: invalid signature 0x%02x 0x%02x, want \"BM\"", e[0], e[1])
}

// UnsupportedHeaderVariantError reports an info header size other than
// the 40 byte BITMAPINFOHEADER. The value is the size found.
type UnsupportedHeaderVariantError uint32

func (e UnsupportedHeaderVariantError) Error() string {
	return fmt.Sprintf("bmp: unsupported DIB header size %d, want %d", uint32(e), infoHeaderLen)
}

// UnsupportedCompressionError reports a compression method other than
// BI_RGB. The value is the method code found.
type UnsupportedCompressionError uint32

func (e UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("bmp: unsupported compression method %d, want %d (BI_RGB)", uint32(e), CompressionRGB)
}

// InvalidDimensionsError reports header dimensions the decoder cannot
// turn into a row layout.
type InvalidDimensionsError struct {
	Width, Height int32
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("bmp: invalid dimensions %dx%d", e.Width, e.Height)
}

// TruncatedReadError reports that the file ended before a fixed-size
// structure or declared region could be read in full.
type TruncatedReadError struct {
	Offset int64
	Want   int
	Got    int
}

func (e *TruncatedReadError) Error() string {
	return fmt.Sprintf("bmp: truncated read at offset %d: want %d bytes, got %d", e.Offset, e.Want, e.Got)
}
