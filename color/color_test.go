package color

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Color
	}{
		{"#5A1846", RGB(0x5a, 0x18, 0x46)},
		{"ffc300", RGB(255, 195, 0)},
		{"#fff", RGB(255, 255, 255)},
		{"#FC2A1AFF", RGBA(252, 42, 26, 255)},
	} {
		c, err := ParseHex(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	for _, in := range []string{"", "#12", "#GGGGGG", "#1234567"} {
		_, err := ParseHex(in)
		assert.Error(t, err, in)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#E700D5", RGB(231, 0, 213).Hex())
	assert.Equal(t, "#0A111F", RGB(9.665468314072013, 17.18305478057247, 31.1442867897876).Hex())
	assert.Equal(t, "#FF0000", RGB(300, -4, 0).Hex())
}

func TestValid(t *testing.T) {
	assert.True(t, RGB(0, 128, 255).Valid())
	assert.True(t, RGBA(252, 242, 26, 255).Valid())
	assert.False(t, RGB(0, 256, 0).Valid())
	assert.False(t, RGBA(0, 0, 0, -1).Valid())
}

func TestColorJSON(t *testing.T) {
	var c Color
	require.NoError(t, json.Unmarshal([]byte(`[252, 242, 26, 255]`), &c))
	assert.Equal(t, RGBA(252, 242, 26, 255), c)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `[252,242,26,255]`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`[9.665468314072013, 17.18305478057247, 31.1442867897876]`), &c))
	assert.False(t, c.HasAlpha)
	b, err = json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `[9.665468314072013,17.18305478057247,31.1442867897876]`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &c))
	assert.Error(t, json.Unmarshal([]byte(`"#fff"`), &c))
}
