package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticMapProviderURL(t *testing.T) {
	p := NewStaticMapProvider(" key123 ")
	url, ok := p.URL(floatPtr(-34.5), floatPtr(-71.25))
	assert.True(t, ok)
	assert.Equal(t, "https://maps.googleapis.com/maps/api/staticmap?center=-34.5,-71.25&zoom=14&size=400x300&markers=color:red%7C-34.5,-71.25&key=key123", url)

	_, ok = p.URL(nil, floatPtr(-71.25))
	assert.False(t, ok)

	for _, key := range []string{"", placeholderKey} {
		_, ok = NewStaticMapProvider(key).URL(floatPtr(1), floatPtr(2))
		assert.False(t, ok, key)
	}

	var nilProvider *StaticMapProvider
	assert.False(t, nilProvider.Enabled())
}

func TestValleyImagesLookup(t *testing.T) {
	images := NewValleyImages(map[string]string{
		"Valle de Colchagua": "https://img.example/colchagua.png",
		"":                   "https://img.example/empty.png",
	})

	url, ok := images.Lookup("valle de colchagua")
	assert.True(t, ok)
	assert.Equal(t, "https://img.example/colchagua.png", url)

	_, ok = images.Lookup("Valle de Elqui")
	assert.False(t, ok)
	assert.Len(t, images, 1)
}
