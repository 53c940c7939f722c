/*
Package carray writes decoded bitmaps as C source arrays suitable for
embedding in firmware or FPGA test benches.
*/
package carray

import (
	"fmt"
	"io"

	"github.com/bitmapkit/bmpdump/bmp"
)

const bytesPerLine = 12

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// Identifier turns name into a valid C identifier.
func Identifier(name string) string {
	if name == "" {
		return "_"
	}
	id := []byte(name)
	for i, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				id[i] = '_'
			}
		default:
			id[i] = '_'
		}
	}
	return string(id)
}

// Encode writes the raw sample bytes of bm to w as a C unsigned char
// array named after name, along with width, height and depth
// constants. Rows are emitted top to bottom, flipping the bitmap's
// bottom-up storage order into presentation order.
func Encode(w io.Writer, bm *bmp.Bitmap, name string) error {
	id := Identifier(name)
	g := bm.Geometry()
	rows := bm.Rows()

	data := make([]byte, 0, rows*g.SamplesPerRow*g.BytesPerPixel)
	for r := rows - 1; r >= 0; r-- {
		for c := 0; c < g.SamplesPerRow; c++ {
			v := bm.Sample(r, c)
			for b := 0; b < g.BytesPerPixel; b++ {
				data = append(data, byte(v>>(8*uint(b))))
			}
		}
	}

	e := encoder{w: w}

	e.printf("/* %s: %dx%d, %d bits per pixel */\n", id, bm.InfoHeader.Width, rows, bm.InfoHeader.BitsPerPixel)
	e.printf("const unsigned char %s_data[] = {\n", id)
	for i, b := range data {
		if i%bytesPerLine == 0 {
			e.printf("    ")
		}
		e.printf("0x%02x", b)
		if i != len(data)-1 {
			e.printf(",")
		}
		if (i+1)%bytesPerLine == 0 || i == len(data)-1 {
			e.printf("\n")
		} else {
			e.printf(" ")
		}
	}
	e.printf("};\n\n")
	e.printf("const unsigned int %s_width = %d;\n", id, bm.InfoHeader.Width)
	e.printf("const unsigned int %s_height = %d;\n", id, rows)
	e.printf("const unsigned short %s_bits_per_pixel = %d;\n", id, bm.InfoHeader.BitsPerPixel)

	return e.err
}
