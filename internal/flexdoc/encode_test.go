package flexdoc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFrames = []Frame{
	{ID: "root", X: 0, Y: 0, Width: 100, Height: 20},
	{ID: "a", X: 17.5, Y: 0, Width: 10, Height: 20},
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, sampleFrames))

	assert.JSONEq(t, `[
		{"id": "root", "x": 0, "y": 0, "width": 100, "height": 20},
		{"id": "a", "x": 17.5, "y": 0, "width": 10, "height": 20}
	]`, buf.String())

	got, err := Decode(&buf, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, sampleFrames, got)
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, sampleFrames))

	assert.YAMLEq(t, `
- {id: root, x: 0, y: 0, width: 100, height: 20}
- {id: a, x: 17.5, y: 0, width: 10, height: 20}
`, buf.String())

	got, err := Decode(&buf, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, sampleFrames, got)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.EqualError(t, err, `unknown format "xml"`)

	assert.Error(t, Encode(&bytes.Buffer{}, Format("xml"), sampleFrames))
}

func TestFrame_Rect(t *testing.T) {
	assert.Equal(t, 27.5, sampleFrames[1].Rect().Right())
}
