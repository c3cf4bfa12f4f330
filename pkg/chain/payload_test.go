package chain

import (
	"testing"

	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayloadDoubleEncoded(t *testing.T) {
	body := []byte(`"{\"vertices\": [[1,0,0],[0,1,0]]}"`)

	c, err := DecodePayload(body)
	require.NoError(t, err)
	assert.Equal(t, Chain{
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, 0, 0),
	}, c)
	assert.Len(t, c.Links(), 2)
}

func TestDecodePayloadAlwaysAppendsOrigin(t *testing.T) {
	bodies := []string{
		`"{\"vertices\": []}"`,
		`"{}"`,
		`"{\"vertices\": null}"`,
		`"{\"vertices\": [[0,0,0]]}"`,
		`"{\"vertices\": [[5,5,5],[0,0,0]]}"`,
		`"{\"vertices\": [[1.5,-2.25,3e2]], \"extra\": true}"`,
	}

	for _, body := range bodies {
		c, err := DecodePayload([]byte(body))
		require.NoError(t, err, body)
		require.NotEmpty(t, c, body)
		assert.Equal(t, geometry.Origin, c[len(c)-1], body)
	}
}

func TestDecodePayloadRejectsMalformed(t *testing.T) {
	bodies := []string{
		`not json`,
		`{"vertices": [[1,0,0]]}`, // single encoded object
		`"not json either"`,
		`"{\"vertices\": [[1,0]]}"`,
		`"{\"vertices\": [[1,0,0,0]]}"`,
		`"{\"vertices\": [[\"a\",0,0]]}"`,
		``,
	}

	for _, body := range bodies {
		_, err := DecodePayload([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedPayload, body)
	}
}

func TestEncodePayloadRoundTrip(t *testing.T) {
	c := Chain{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 1, 1),
		geometry.NewVector3(0, 2, 0),
	}

	body, err := EncodePayload(c)
	require.NoError(t, err)
	assert.Equal(t, byte('"'), body[0], "payload must be a JSON string")

	decoded, err := DecodePayload(body)
	require.NoError(t, err)
	assert.Equal(t, c.WithClosure(), decoded)
}
