package recordstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMeta_RoundTrip(t *testing.T) {
	meta := Meta{
		"email":    "amina@example.com",
		"address":  "House 12, Road 7",
		"district": "Dhaka",
		"notes":    "Call before delivery || ring twice",
	}

	packed := EncodeMeta("Amina Rahman", meta)
	assert.True(t, strings.HasPrefix(packed, "Amina Rahman"+MetaDelimiter))

	display, decoded, err := DecodeMeta(packed)
	require.NoError(t, err)
	assert.Equal(t, "Amina Rahman", display)
	assert.Equal(t, meta, decoded)
}

func TestEncodeMeta_Empty(t *testing.T) {
	assert.Equal(t, "Plain", EncodeMeta("Plain", nil))
	assert.Equal(t, "Plain", EncodeMeta("Plain", Meta{"email": ""}))

	display, meta, err := DecodeMeta("Plain")
	require.NoError(t, err)
	assert.Equal(t, "Plain", display)
	assert.Empty(t, meta)
}

func TestDecodeMeta_Corrupt(t *testing.T) {
	display, meta, err := DecodeMeta("Name" + MetaDelimiter + "%%%not-base64")
	assert.Error(t, err)
	assert.Equal(t, "Name", display)
	assert.Empty(t, meta)
}

func TestMeta_MergePreservesSiblings(t *testing.T) {
	packed := EncodeMeta("Amina Rahman", Meta{
		"email":    "amina@example.com",
		"district": "Dhaka",
	})

	name, meta, err := DecodeMeta(packed)
	require.NoError(t, err)

	updated := EncodeMeta(name, meta.Merge(Meta{"payment_method": "bkash"}))

	name, meta, err = DecodeMeta(updated)
	require.NoError(t, err)
	assert.Equal(t, "Amina Rahman", name)
	assert.Equal(t, Meta{
		"email":          "amina@example.com",
		"district":       "Dhaka",
		"payment_method": "bkash",
	}, meta)
}

func TestMeta_MergeDoesNotMutateReceiver(t *testing.T) {
	base := Meta{"a": "1", "b": "2"}
	merged := base.Merge(Meta{"a": "3", "b": ""})

	assert.Equal(t, Meta{"a": "1", "b": "2"}, base)
	assert.Equal(t, Meta{"a": "3"}, merged)
}
