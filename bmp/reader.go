package bmp

import (
	"encoding/binary"
	"io"
	"os"
)

// reader is a positional byte reader over the underlying seekable
// source, tracking the current offset so truncation errors can report
// where the short read happened.
type reader struct {
	r   io.ReadSeeker
	off int64
}

func (r *reader) seek(off int64) error {
	n, err := r.r.Seek(off, io.SeekStart)
	if err != nil {
		return err
	}
	r.off = n
	return nil
}

func (r *reader) readFull(b []byte) error {
	start := r.off
	n, err := io.ReadFull(r.r, b)
	r.off += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &TruncatedReadError{Offset: start, Want: len(b), Got: n}
	}
	return err
}

type decoder struct {
	r   reader
	bmp Bitmap
}

// decodeHeaders reads the two contiguous fixed headers, leaving the
// cursor 54 bytes in. Fields are parsed individually at their declared
// offsets rather than through in-memory struct layout.
func (d *decoder) decodeHeaders() error {
	var b [fileHeaderLen + infoHeaderLen]byte
	if err := d.r.readFull(b[:fileHeaderLen]); err != nil {
		return err
	}

	fh := &d.bmp.FileHeader
	copy(fh.Signature[:], b[0:2])
	fh.FileSize = binary.LittleEndian.Uint32(b[2:])
	fh.Reserved = binary.LittleEndian.Uint32(b[6:])
	fh.DataOffset = binary.LittleEndian.Uint32(b[10:])

	if fh.Signature[0] != 'B' || fh.Signature[1] != 'M' {
		return InvalidSignatureError(fh.Signature)
	}

	if err := d.r.readFull(b[fileHeaderLen:]); err != nil {
		return err
	}

	ih := &d.bmp.InfoHeader
	ih.HeaderSize = binary.LittleEndian.Uint32(b[14:])
	ih.Width = int32(binary.LittleEndian.Uint32(b[18:]))
	ih.Height = int32(binary.LittleEndian.Uint32(b[22:]))
	ih.Planes = binary.LittleEndian.Uint16(b[26:])
	ih.BitsPerPixel = binary.LittleEndian.Uint16(b[28:])
	ih.Compression = binary.LittleEndian.Uint32(b[30:])
	ih.ImageSize = binary.LittleEndian.Uint32(b[34:])
	ih.XPixelsPerMeter = binary.LittleEndian.Uint32(b[38:])
	ih.YPixelsPerMeter = binary.LittleEndian.Uint32(b[42:])
	ih.PaletteColors = binary.LittleEndian.Uint32(b[46:])
	ih.ImportantColors = binary.LittleEndian.Uint32(b[50:])

	// The 40 byte field layout above is only valid for the
	// BITMAPINFOHEADER variant.
	if ih.HeaderSize != infoHeaderLen {
		return UnsupportedHeaderVariantError(ih.HeaderSize)
	}
	if ih.Compression != CompressionRGB {
		return UnsupportedCompressionError(ih.Compression)
	}

	return nil
}

// geometry derives the row layout from the info header. Depths below 8
// bits per pixel are read as whole bytes, so the sample width is
// clamped to one byte.
func geometry(ih *InfoHeader) (Geometry, error) {
	if ih.Width < 0 {
		return Geometry{}, &InvalidDimensionsError{Width: ih.Width, Height: ih.Height}
	}

	bpp := int(ih.BitsPerPixel)

	var g Geometry
	g.BytesPerPixel = bpp / 8
	if g.BytesPerPixel < 1 {
		g.BytesPerPixel = 1
	}
	g.BytesPerRow = (int(ih.Width)*bpp + 7) / 8
	g.Padding = (4 - g.BytesPerRow%4) % 4
	g.RowStride = g.BytesPerRow + g.Padding
	g.SamplesPerRow = (g.BytesPerRow + g.BytesPerPixel - 1) / g.BytesPerPixel

	return g, nil
}

// decodePalette reads the color table that sits immediately after the
// two fixed headers. A short read discards the whole palette.
func (d *decoder) decodePalette() error {
	n := int(d.bmp.InfoHeader.PaletteColors)
	if n == 0 {
		return nil
	}

	if err := d.r.seek(fileHeaderLen + int64(d.bmp.InfoHeader.HeaderSize)); err != nil {
		return err
	}

	var b [4]byte
	var entries []PaletteEntry
	for i := 0; i < n; i++ {
		if err := d.r.readFull(b[:]); err != nil {
			return err
		}
		entries = append(entries, PaletteEntry{b[0], b[1], b[2], b[3]})
	}
	d.bmp.Palette = entries

	return nil
}

// decodePixels reads |height| rows bottom to top, seeking to each row's
// start and reading only the pixel bytes so the padding never enters
// the sample stream. A row is appended only once it has been read in
// full.
func (d *decoder) decodePixels() error {
	g := d.bmp.geom
	rows := d.bmp.Rows()
	if g.BytesPerRow == 0 || rows == 0 {
		return nil
	}

	offset := int64(d.bmp.FileHeader.DataOffset)
	row := make([]byte, g.BytesPerRow)
	var samples []uint32

	for r := 0; r < rows; r++ {
		if err := d.r.seek(offset + int64(r)*int64(g.RowStride)); err != nil {
			return err
		}
		if err := d.r.readFull(row); err != nil {
			return err
		}
		for i := 0; i < len(row); i += g.BytesPerPixel {
			end := i + g.BytesPerPixel
			if end > len(row) {
				end = len(row)
			}
			var v uint32
			for j, c := range row[i:end] {
				v |= uint32(c) << (8 * uint(j))
			}
			samples = append(samples, v)
		}
	}
	d.bmp.samples = samples

	return nil
}

func (d *decoder) decode(r io.ReadSeeker, configOnly bool) error {
	d.r = reader{r: r}

	if err := d.decodeHeaders(); err != nil {
		return err
	}

	g, err := geometry(&d.bmp.InfoHeader)
	if err != nil {
		return err
	}
	d.bmp.geom = g

	if configOnly {
		return nil
	}

	if err := d.decodePalette(); err != nil {
		return err
	}

	return d.decodePixels()
}

// Decode reads a BMP file from r and returns the decoded Bitmap. On any
// validation or I/O error no Bitmap is returned; there is no partial
// result.
func Decode(r io.ReadSeeker) (*Bitmap, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return &d.bmp, nil
}

// DecodeConfig returns the headers and row geometry of a BMP file
// without reading the palette or pixel data.
func DecodeConfig(r io.ReadSeeker) (Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return Config{}, err
	}
	return Config{
		FileHeader: d.bmp.FileHeader,
		InfoHeader: d.bmp.InfoHeader,
		Geometry:   d.bmp.geom,
	}, nil
}

// DecodeFile opens path and decodes it, closing the file handle on
// every return path.
func DecodeFile(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
