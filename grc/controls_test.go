package grc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphisoft/jsontogrc/grc"
)

func dialogWithControl(t *testing.T, controlJSON string) string {
	t.Helper()

	doc, err := grc.Decode([]byte(`{
  "GDLG": [
    {
      "#id": 1, "name": "D", "anchor": "A", "type": "Modal",
      "size": {"w": 50, "h": 50},
      "controls": [` + controlJSON + `]
    }
  ]
}`))
	require.NoError(t, err)

	text, err := grc.Convert(doc, 29, nil)
	require.NoError(t, err)

	return text
}

func TestIconMenuCheckItemsAreOptional(t *testing.T) {
	t.Parallel()

	text := dialogWithControl(t, `{"IconMenuCheck": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 10, "h": 10}}}`)

	assert.Contains(t, text, "RoundedEdge", "default appearance maps through the version-29 bevel table")
}

func TestIconMenuCheckEmitsBevelAndIconList(t *testing.T) {
	t.Parallel()

	text := dialogWithControl(t, `{"IconMenuCheck": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 10, "h": 10}, "items": [{"iconId": "101"}, {"iconId": "102"}]}}`)

	assert.Contains(t, text, "101")
	assert.Contains(t, text, "102")
	assert.Contains(t, text, "RoundedEdge", "default appearance maps through the version-29 bevel table")
}

func TestIconRadioButtonRejectsAppearance(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{
  "GDLG": [
    {
      "#id": 1, "name": "D", "anchor": "A", "type": "Modal",
      "size": {"w": 50, "h": 50},
      "controls": [
        {"IconRadioButton": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 10, "h": 10}, "iconId": "7", "appearance": "roundedEdge"}}
      ]
    }
  ]
}`))
	require.NoError(t, err)

	_, err = grc.Convert(doc, 29, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, grc.ErrUnsupportedGDLGControl)
}

func TestIconButtonEmitsBevelByDefault(t *testing.T) {
	t.Parallel()

	text := dialogWithControl(t, `{"IconButton": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 10, "h": 10}, "iconId": "7"}}`)

	assert.Contains(t, text, "RoundedEdge", "appearance defaults to roundedEdge even when omitted")
}

func TestIconCheckBoxHasNoBevelOrFrame(t *testing.T) {
	t.Parallel()

	text := dialogWithControl(t, `{"IconCheckBox": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 10, "h": 10}, "iconId": "7"}}`)

	assert.NotContains(t, text, "RoundedEdge")
	assert.NotContains(t, text, "BevelEdge")
	assert.NotContains(t, text, "frame")
}

func TestUnsupportedControlKindIsRejected(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{
  "GDLG": [
    {
      "#id": 1, "name": "D", "anchor": "A", "type": "Modal",
      "size": {"w": 50, "h": 50},
      "controls": [
        {"NotARealControl": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 10, "h": 10}}}
      ]
    }
  ]
}`))
	require.NoError(t, err)

	_, err = grc.Convert(doc, 29, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, grc.ErrUnsupportedGDLGControl)
}

func TestButtonEmitsNoTypeToken(t *testing.T) {
	t.Parallel()

	text := dialogWithControl(t, `{"Button": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 10, "h": 10}, "text": "OK"}}`)

	assert.NotContains(t, text, "DefaultButton")
	assert.NotContains(t, text, "CancelButton")
	assert.Contains(t, text, "Button ")
}

func TestButtonRejectsUnknownTypeProperty(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{
  "GDLG": [
    {
      "#id": 1, "name": "D", "anchor": "A", "type": "Modal",
      "size": {"w": 50, "h": 50},
      "controls": [
        {"Button": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 10, "h": 10}, "type": "default", "text": "OK"}}
      ]
    }
  ]
}`))
	require.NoError(t, err)

	_, err = grc.Convert(doc, 29, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, grc.ErrUnhandledJSONProperty)
}
