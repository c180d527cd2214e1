package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignSortsParameters(t *testing.T) {
	s := New("demo", "key", "s3cret", "watches")

	got := s.sign(map[string]string{
		"timestamp": "1700000000",
		"folder":    "watches",
		"public_id": "seamaster",
	})

	sum := sha1.Sum([]byte("folder=watches&public_id=seamaster&timestamp=1700000000s3cret"))
	assert.Equal(t, hex.EncodeToString(sum[:]), got)
}

func TestPublicIDFromURL(t *testing.T) {
	id, ok := publicIDFromURL("https://res.cloudinary.com/demo/image/upload/v1700000000/watches/seamaster.jpg")
	require.True(t, ok)
	assert.Equal(t, "watches/seamaster", id)

	id, ok = publicIDFromURL("https://res.cloudinary.com/demo/image/upload/watches/nested/dial.png")
	require.True(t, ok)
	assert.Equal(t, "watches/nested/dial", id)

	_, ok = publicIDFromURL("https://cdn.example.com/watches/seamaster.jpg")
	assert.False(t, ok)

	_, ok = publicIDFromURL("https://res.cloudinary.com/demo/image/upload/")
	assert.False(t, ok)
}
