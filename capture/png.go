// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package capture

import (
	"bytes"
	"image"
	"image/png"

	"github.com/jetsetilly/presetselector/curated"
)

// Encoder is the image codec used to create the screenshot file. The pixel
// data is packed with the given number of channels per pixel in row order.
type Encoder interface {
	Encode(pixels []byte, width, height, channels int) ([]byte, error)
}

// PNG is an Encoder that produces PNG data with the standard library's image
// encoder.
type PNG struct {
	Compression png.CompressionLevel
}

// Encode implements the Encoder interface. Supported channel counts are 3
// (RGB) and 4 (RGBA).
func (p PNG) Encode(pixels []byte, width, height, channels int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf("png: %v", "invalid image dimensions")
	}
	if channels != 3 && channels != 4 {
		return nil, curated.Errorf("png: %v", "unsupported number of channels")
	}
	if len(pixels) < width*height*channels {
		return nil, curated.Errorf("png: %v", "not enough pixel data")
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if channels == 4 {
		copy(img.Pix, pixels[:width*height*4])
	} else {
		for i := 0; i < width*height; i++ {
			img.Pix[i*4] = pixels[i*3]
			img.Pix[i*4+1] = pixels[i*3+1]
			img.Pix[i*4+2] = pixels[i*3+2]
			img.Pix[i*4+3] = 0xff
		}
	}

	var b bytes.Buffer
	enc := png.Encoder{CompressionLevel: p.Compression}
	if err := enc.Encode(&b, img); err != nil {
		return nil, curated.Errorf("png: %v", err)
	}

	return b.Bytes(), nil
}
