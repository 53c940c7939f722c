/*
Package bmp implements a decoder for uncompressed Windows bitmap (BMP)
files.

Only the common BITMAPFILEHEADER followed by a 40 byte BITMAPINFOHEADER
variant with BI_RGB (no compression) pixel storage is supported. The
decoder reads the two fixed headers, the color palette if the info
header declares one, and the raw pixel samples row by row. Rows are
stored bottom to top and each row is zero padded to a 4 byte boundary;
the padding is skipped and never appears in the sample stream.

Pixel samples are returned as raw little-endian values, exactly as they
appear in the file. Palette-indexed depths are not expanded into colors
and depths below 8 bits per pixel are read as whole bytes without
bit-level unpacking; consumers that need final RGB values or a
top-to-bottom row order have to do that themselves.
*/
package bmp

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
)

// Compression methods defined by the format. Only CompressionRGB is
// supported by this decoder.
const (
	CompressionRGB       = 0
	CompressionRLE8      = 1
	CompressionRLE4      = 2
	CompressionBitfields = 3
)

// FileHeader is the 14 byte BITMAPFILEHEADER at the start of every BMP
// file.
type FileHeader struct {
	Signature  [2]byte
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32
}

// InfoHeader is the 40 byte BITMAPINFOHEADER that immediately follows
// the file header.
type InfoHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter uint32
	YPixelsPerMeter uint32
	PaletteColors   uint32
	ImportantColors uint32
}

// PaletteEntry is one 4 byte color table entry, with the fields in file
// byte order.
type PaletteEntry struct {
	Red      uint8
	Green    uint8
	Blue     uint8
	Reserved uint8
}

// Geometry describes the row layout derived from the info header.
type Geometry struct {
	// BytesPerPixel is the raw sample width used for reading. Depths
	// below 8 bits per pixel are read as single whole bytes.
	BytesPerPixel int

	// BytesPerRow is the number of pixel bytes in a row, excluding
	// padding.
	BytesPerRow int

	// Padding is the number of zero bytes at the end of each row that
	// align the next row to a 4 byte boundary.
	Padding int

	// RowStride is BytesPerRow plus Padding, the distance in bytes
	// between the starts of consecutive rows.
	RowStride int

	// SamplesPerRow is the number of samples emitted per row.
	SamplesPerRow int
}

// Config holds the decoded headers and derived row geometry of a BMP
// file without any palette or pixel data.
type Config struct {
	FileHeader FileHeader
	InfoHeader InfoHeader
	Geometry   Geometry
}

// Bitmap is a fully decoded BMP file. It is populated by a single
// decode pass and must not be modified afterwards; decoding again
// requires a fresh call to Decode.
type Bitmap struct {
	FileHeader FileHeader
	InfoHeader InfoHeader

	// Palette holds InfoHeader.PaletteColors entries in file order, or
	// is empty when the header declares none.
	Palette []PaletteEntry

	geom    Geometry
	samples []uint32
}

// Geometry returns the row layout the pixel data was decoded with.
func (b *Bitmap) Geometry() Geometry {
	return b.geom
}

// Rows returns the number of stored pixel rows, i.e. the absolute value
// of the header height.
func (b *Bitmap) Rows() int {
	h := int(b.InfoHeader.Height)
	if h < 0 {
		h = -h
	}
	return h
}

// Samples returns the raw pixel sample stream in storage order: rows
// from the bottom of the image to the top, samples within a row left to
// right.
func (b *Bitmap) Samples() []uint32 {
	return b.samples
}

// Sample returns the raw sample at the given stored row and column.
// Row 0 is the bottom-most stored row.
func (b *Bitmap) Sample(row, col int) uint32 {
	return b.samples[row*b.geom.SamplesPerRow+col]
}
