package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessAvatar_ProducesSquareWebP(t *testing.T) {
	out, err := ProcessAvatar(pngOf(t, 400, 300))
	require.NoError(t, err)

	require.True(t, len(out) > 12)
	assert.Equal(t, "RIFF", string(out[0:4]))
	assert.Equal(t, "WEBP", string(out[8:12]))

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, AvatarSize, cfg.Width)
	assert.Equal(t, AvatarSize, cfg.Height)
}

func TestProcessAvatar_RejectsGarbage(t *testing.T) {
	_, err := ProcessAvatar([]byte("not an image"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidImage))

	_, err = ProcessAvatar(nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidImage))
}

func TestProcessAvatar_RejectsOversizedDimensions(t *testing.T) {
	// A flat grayscale image compresses to a few KB whatever its size.
	img := image.NewGray(image.Rect(0, 0, MaxSourceDimension+1, 8))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.Less(t, buf.Len(), MaxUploadBytes)

	_, err := ProcessAvatar(buf.Bytes())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidImage))

	tall := image.NewGray(image.Rect(0, 0, 8, MaxSourceDimension+1))
	buf.Reset()
	require.NoError(t, png.Encode(&buf, tall))

	_, err = ProcessAvatar(buf.Bytes())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidImage))
}

func TestSquareCrop(t *testing.T) {
	assert.Equal(t, image.Rect(50, 0, 350, 300), squareCrop(image.Rect(0, 0, 400, 300)))
	assert.Equal(t, image.Rect(0, 50, 300, 350), squareCrop(image.Rect(0, 0, 300, 400)))
	assert.Equal(t, image.Rect(0, 0, 10, 10), squareCrop(image.Rect(0, 0, 10, 10)))
}

func TestAvatarKey(t *testing.T) {
	assert.Equal(t, "avatars/3-carlos-martinez.webp", AvatarKey(3, "Carlos Martínez"))
}
