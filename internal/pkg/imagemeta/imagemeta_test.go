package imagemeta_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selorm/scholarbase/internal/pkg/imagemeta"
)

func TestDimensions(t *testing.T) {
	t.Run("png header is read", func(t *testing.T) {
		var buf bytes.Buffer
		img := image.NewRGBA(image.Rect(0, 0, 24, 16))
		require.NoError(t, png.Encode(&buf, img))

		w, h, ok := imagemeta.Dimensions(buf.Bytes())
		require.True(t, ok)
		assert.Equal(t, 24, w)
		assert.Equal(t, 16, h)
	})

	t.Run("non-image bytes are tolerated", func(t *testing.T) {
		_, _, ok := imagemeta.Dimensions([]byte("not an image"))
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, ok := imagemeta.Dimensions(nil)
		assert.False(t, ok)
	})
}
