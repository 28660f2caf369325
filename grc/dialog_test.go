package grc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphisoft/jsontogrc/grc"
)

func TestConvertDialogTypeFlagsLegality(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		dialogType string
		fields     string
		wantErr    bool
	}{
		"TabPage forbids grow": {
			dialogType: "TabPage",
			fields:     `"grow":"yes"`,
			wantErr:    true,
		},
		"Modal allows grow": {
			dialogType: "Modal",
			fields:     `"grow":"yes"`,
		},
		"Modal forbids topCaption": {
			dialogType: "Modal",
			fields:     `"topCaption":"yes"`,
			wantErr:    true,
		},
		"Modeless allows minimize": {
			dialogType: "Modeless",
			fields:     `"minimize":"yes"`,
		},
		"Palette forbids minimize": {
			dialogType: "Palette",
			fields:     `"minimize":"yes"`,
			wantErr:    true,
		},
		"Palette allows close": {
			dialogType: "Palette",
			fields:     `"close":"yes"`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := grc.Decode([]byte("{" + tc.fields + "}"))
			require.NoError(t, err)

			rec := grc.NewRecord(doc)

			_, err = grc.ConvertDialogTypeFlags(rec, tc.dialogType)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, grc.ErrIllegalStyle)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGenerateUniqueAnchorPicksSmallestFree(t *testing.T) {
	t.Parallel()

	used := map[string]bool{"Button_0": true, "Button_1": true}

	got := grc.GenerateUniqueAnchor("Button", used)

	assert.Equal(t, "Button_2", got)
	assert.True(t, used["Button_2"])
}

const dialogFixture = `{
  "GDLG": [
    {
      "#id": 100,
      "name": "Settings",
      "anchor": "DlgSettings",
      "type": "Modal",
      "size": {"w": 200, "h": 100},
      "controls": [
        {"Button": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 80, "h": 20}, "text": "OK"}},
        {"Button": {"#id": 2, "rect": {"x": 90, "y": 0, "w": 80, "h": 20}, "text": "Cancel"}}
      ]
    }
  ]
}`

func TestConvertGDLGProducesOneDLGHRowPerControl(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(dialogFixture))
	require.NoError(t, err)

	text, err := grc.Convert(doc, 29, nil)
	require.NoError(t, err)

	assert.Contains(t, text, `'GDLG' 100 Modal`)
	assert.Contains(t, text, `'DLGH' 100 DlgSettings {`)

	dlghStart := strings.Index(text, `'DLGH' 100 DlgSettings {`)
	require.GreaterOrEqual(t, dlghStart, 0)

	dlghBlock := text[dlghStart:]
	closeIdx := strings.Index(dlghBlock, "\n}")
	require.GreaterOrEqual(t, closeIdx, 0)

	rows := strings.Split(strings.TrimSpace(dlghBlock[len(`'DLGH' 100 DlgSettings {`):closeIdx]), "\n")
	require.Len(t, rows, 2, "one DLGH row per control, no multi-entry helpInfo present")

	assert.Contains(t, rows[0], "1")
	assert.Contains(t, rows[1], "2")
}

func TestConvertGDLGSynthesizesUniqueAnchors(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(dialogFixture))
	require.NoError(t, err)

	text, err := grc.Convert(doc, 29, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "Button_0")
	assert.Contains(t, text, "Button_1")
	assert.NotContains(t, text, "Button_2")
}

func TestConvertGDLGVersionSensitivityIsolatedToBevelTokens(t *testing.T) {
	t.Parallel()

	const bevelDialog = `{
  "GDLG": [
    {
      "#id": 5, "name": "D", "anchor": "A", "type": "Modal",
      "size": {"w": 50, "h": 50},
      "controls": [
        {"Button": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 10, "h": 10}, "text": "OK"}}
      ]
    }
  ]
}`

	doc28, err := grc.Decode([]byte(bevelDialog))
	require.NoError(t, err)
	text28, err := grc.Convert(doc28, 28, nil)
	require.NoError(t, err)

	doc29, err := grc.Decode([]byte(bevelDialog))
	require.NoError(t, err)
	text29, err := grc.Convert(doc29, 29, nil)
	require.NoError(t, err)

	text28NoBevel := strings.ReplaceAll(text28, "BevelEdge", "EDGE")
	text29NoBevel := strings.ReplaceAll(text29, "RoundedEdge", "EDGE")

	assert.Equal(t, text28NoBevel, text29NoBevel, "only the bevel token differs across versions")
	assert.NotEqual(t, text28, text29)
}

func TestConvertRejectsUnhandledField(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{
  "GDLG": [
    {
      "#id": 1, "name": "D", "anchor": "A", "type": "Modal",
      "size": {"w": 10, "h": 10}, "controls": [],
      "bogusField": true
    }
  ]
}`))
	require.NoError(t, err)

	_, err = grc.Convert(doc, 29, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, grc.ErrUnhandledJSONProperty)
	assert.Contains(t, err.Error(), "bogusField")
}
