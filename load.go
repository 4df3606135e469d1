package rcgen

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage opens and decodes the image stored in file. Any format with a
// registered decoder is accepted.
func LoadImage(file string) (image.Image, error) {
	return imgio.Open(file)
}
