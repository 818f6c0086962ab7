package imagediff

import (
	"bytes"
	"image"

	// Registered decoders for the self-contained payload formats ingestion
	// hands over.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// PixelComparer computes per-pixel similarity between two encoded image
// payloads. A pixel counts as different when any of its first three channels
// differs by more than the tolerance on a 0-255 scale.
type PixelComparer struct {
	tolerance int
}

// NewPixelComparer creates a new pixel comparer
func NewPixelComparer(tolerance int) *PixelComparer {
	return &PixelComparer{
		tolerance: tolerance,
	}
}

// Similarity returns 1 - differentPixels/totalPixels. Decode failure on
// either side and dimension mismatch are defined as similarity 0, never an
// error.
func (pc *PixelComparer) Similarity(payloadA, payloadB []byte) float64 {
	imgA, err := decodeImage(payloadA)
	if err != nil {
		return 0
	}
	imgB, err := decodeImage(payloadB)
	if err != nil {
		return 0
	}

	boundsA := imgA.Bounds()
	boundsB := imgB.Bounds()
	if boundsA.Dx() != boundsB.Dx() || boundsA.Dy() != boundsB.Dy() {
		return 0
	}

	totalPixels := boundsA.Dx() * boundsA.Dy()
	if totalPixels == 0 {
		return 0
	}

	differentPixels := 0
	for y := 0; y < boundsA.Dy(); y++ {
		for x := 0; x < boundsA.Dx(); x++ {
			rA, gA, bA, _ := imgA.At(boundsA.Min.X+x, boundsA.Min.Y+y).RGBA()
			rB, gB, bB, _ := imgB.At(boundsB.Min.X+x, boundsB.Min.Y+y).RGBA()

			if pc.channelDiffers(rA, rB) || pc.channelDiffers(gA, gB) || pc.channelDiffers(bA, bB) {
				differentPixels++
			}
		}
	}

	return 1 - float64(differentPixels)/float64(totalPixels)
}

// channelDiffers compares two 16-bit channel samples on the 0-255 scale.
func (pc *PixelComparer) channelDiffers(a, b uint32) bool {
	diff := int(a>>8) - int(b>>8)
	if diff < 0 {
		diff = -diff
	}
	return diff > pc.tolerance
}

func decodeImage(payload []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(payload))
	return img, err
}
