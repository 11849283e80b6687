package tree

import (
	"testing"

	"github.com/philip928lin/pathnav/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		attr string
	}{
		{"dots_replaced", "config.yaml", "config_yaml"},
		{"spaces_replaced", "my file.txt", "my_file_txt"},
		{"hyphen_replaced", "my-project", "my_project"},
		{"leading_digit_prefixed", "123data", "_123data"},
		{"hidden_entry", ".git", "_git"},
		{"keyword_suffixed", "type", "type_"},
		{"already_valid", "data", "data"},
		{"empty", "", "_"},
		{"unicode_replaced", "héllo", "h_llo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.attr, EncodeName(tt.raw))
			// deterministic
			assert.Equal(t, EncodeName(tt.raw), EncodeName(tt.raw))
		})
	}
}

func TestNameCodec_EncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	c := NewNameCodec("/tmp/root")

	attr, err := c.Encode("config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "config_yaml", attr)

	raw, err := c.Decode(attr)
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", raw)

	// re-registering the same raw name is a no-op
	again, err := c.Encode("config.yaml")
	require.NoError(t, err)
	assert.Equal(t, attr, again)
}

func TestNameCodec_Collision(t *testing.T) {
	t.Parallel()

	c := NewNameCodec("/tmp/root")

	_, err := c.Encode("a.b")
	require.NoError(t, err)

	_, err = c.Encode("a_b")
	require.Error(t, err)

	var collision *errs.NameCollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "a_b", collision.Raw)
	assert.Equal(t, "a.b", collision.Existing)
	assert.Equal(t, "a_b", collision.Attr)
	assert.Equal(t, "/tmp/root", collision.Path)

	// first registration stays intact
	raw, err := c.Decode("a_b")
	require.NoError(t, err)
	assert.Equal(t, "a.b", raw)
}

func TestNameCodec_DecodeUnknown(t *testing.T) {
	t.Parallel()

	c := NewNameCodec("/tmp/root")

	_, err := c.Decode("never_seen")
	var notFound *errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "never_seen", notFound.Name)
	assert.Equal(t, "/tmp/root", notFound.Path)
}

func TestNameCodec_Forget(t *testing.T) {
	t.Parallel()

	c := NewNameCodec("/tmp/root")

	_, err := c.Encode("a.b")
	require.NoError(t, err)
	c.Forget("a.b")

	_, err = c.Decode("a_b")
	assert.Error(t, err)

	// attribute name is free again
	_, err = c.Encode("a_b")
	assert.NoError(t, err)
}
