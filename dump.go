package bmpdump

import (
	"fmt"
	"io"

	"github.com/bitmapkit/bmpdump/bmp"
)

func compressionName(method uint32) string {
	switch method {
	case bmp.CompressionRGB:
		return "BI_RGB"
	case bmp.CompressionRLE8:
		return "BI_RLE8"
	case bmp.CompressionRLE4:
		return "BI_RLE4"
	case bmp.CompressionBitfields:
		return "BI_BITFIELDS"
	}
	return "unknown"
}

// Dump decodes the BMP file at path and writes its diagnostics to w:
// every header field, the derived row geometry, the palette table and,
// when pixels is set, each stored row's samples in hex, bottom row
// first as stored in the file.
func Dump(w io.Writer, path string, pixels bool) error {
	bm, err := bmp.DecodeFile(path)
	if err != nil {
		return err
	}

	fh, ih, g := bm.FileHeader, bm.InfoHeader, bm.Geometry()

	fmt.Fprintf(w, "Signature         : %c%c (0x%02x%02x)\n", fh.Signature[0], fh.Signature[1], fh.Signature[1], fh.Signature[0])
	fmt.Fprintf(w, "File size         : %d bytes\n", fh.FileSize)
	fmt.Fprintf(w, "Data offset       : %d\n", fh.DataOffset)
	fmt.Fprintf(w, "DIB header size   : %d\n", ih.HeaderSize)
	fmt.Fprintf(w, "Width             : %d px\n", ih.Width)
	fmt.Fprintf(w, "Height            : %d px\n", ih.Height)
	fmt.Fprintf(w, "Color planes      : %d\n", ih.Planes)
	fmt.Fprintf(w, "Bits per pixel    : %d\n", ih.BitsPerPixel)
	fmt.Fprintf(w, "Compression       : %d (%s)\n", ih.Compression, compressionName(ih.Compression))
	fmt.Fprintf(w, "Raw bitmap size   : %d\n", ih.ImageSize)
	fmt.Fprintf(w, "Resolution        : %dx%d px/m\n", ih.XPixelsPerMeter, ih.YPixelsPerMeter)
	fmt.Fprintf(w, "Palette colors    : %d\n", ih.PaletteColors)
	fmt.Fprintf(w, "Important colors  : %d\n", ih.ImportantColors)
	fmt.Fprintf(w, "Bytes per pixel   : %d\n", g.BytesPerPixel)
	fmt.Fprintf(w, "Bytes per row     : %d\n", g.BytesPerRow)
	fmt.Fprintf(w, "Row padding       : %d\n", g.Padding)
	fmt.Fprintf(w, "Row stride        : %d\n", g.RowStride)

	if len(bm.Palette) > 0 {
		fmt.Fprintln(w, "Palette:")
		for i, e := range bm.Palette {
			fmt.Fprintf(w, "%4d  R:%3d G:%3d B:%3d X:%3d\n", i, e.Red, e.Green, e.Blue, e.Reserved)
		}
	}

	if pixels {
		fmt.Fprintln(w, "Pixel samples (bottom row first):")
		for r := 0; r < bm.Rows(); r++ {
			fmt.Fprintf(w, "%4d:", r)
			for c := 0; c < g.SamplesPerRow; c++ {
				fmt.Fprintf(w, " %0*x", g.BytesPerPixel*2, bm.Sample(r, c))
			}
			fmt.Fprintln(w)
		}
	}

	return nil
}
