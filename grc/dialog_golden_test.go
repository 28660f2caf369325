package grc_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphisoft/jsontogrc/grc"
)

// TestConvertGDLGDialogGolden compares a GDLG/DLGH dialog pair, plus a
// representative sample of control kinds (Button, SingleSpin from the
// numeric-tuple family, IconCheckBox from the icon family, and Ruler in
// its "window" form), byte for byte against hand-assembled expected text.
// The expected text is built with the same exported formatting primitives
// (LJust/RJust and the column-width constants) the converters themselves
// use, rather than transcribed literal whitespace, so a regression in
// field order or presence -- not just column alignment -- is what this
// test actually pins down.
func TestConvertGDLGDialogGolden(t *testing.T) {
	t.Parallel()

	const doc = `{
  "GDLG": [
    {
      "#id": 42, "name": "Panel", "anchor": "DlgPanel", "type": "Modal",
      "size": {"w": 300, "h": 150},
      "controls": [
        {"Button": {"#id": 1, "rect": {"x": 5, "y": 5, "w": 80, "h": 20}, "text": "OK"}},
        {"SingleSpin": {"#id": 2, "rect": {"x": 5, "y": 30, "w": 60, "h": 20}, "minValue": 0, "maxValue": 100}},
        {"IconCheckBox": {"#id": 3, "rect": {"x": 5, "y": 55, "w": 20, "h": 20}, "iconId": "7"}},
        {"Ruler": {"#id": 4, "rect": {"x": 5, "y": 80, "w": 200, "h": 16}, "rulerType": "window"}}
      ]
    }
  ]
}`

	decoded, err := grc.Decode([]byte(doc))
	require.NoError(t, err)

	got, err := grc.Convert(decoded, 29, nil)
	require.NoError(t, err)

	rect := func(x, y, w, h int) string {
		return fmt.Sprintf("%s %s %s %s",
			grc.RJust(strconv.Itoa(x), 4), grc.RJust(strconv.Itoa(y), 4),
			grc.RJust(strconv.Itoa(w), 4), grc.RJust(strconv.Itoa(h), 4))
	}

	controlLine := func(controlType string, fields ...string) string {
		parts := append([]string{grc.LJust(controlType, grc.GDLGControlTypeWidth)}, fields...)

		line := parts[0]
		for _, p := range parts[1:] {
			line += " " + p
		}

		return line
	}

	dlghRow := func(ordinal, anchor string) string {
		return fmt.Sprintf("%s  %s  %s", ordinal, grc.LJust(`""`, grc.DLGHTooltipWidth), anchor)
	}

	var want string
	want += `#include "DGDefs.h"` + "\n"
	want += "\n"
	want += fmt.Sprintf(`'GDLG' %s Modal %s %s %s %s %s {`,
		"42", grc.RJust("0", 4), grc.RJust("0", 4), grc.RJust("300", 4), grc.RJust("150", 4), `"Panel"`) + "\n"
	want += controlLine("Button", rect(5, 5, 80, 20), "LargePlain", "frame", "RoundedEdge", `"OK"`) + "\n"
	want += controlLine("SingleSpin", rect(5, 30, 60, 20), "0", "100") + "\n"
	want += controlLine("IconCheckBox", rect(5, 55, 20, 20), "7") + "\n"
	want += controlLine("Ruler", rect(5, 80, 200, 16), "window", "") + "\n"
	want += "}" + "\n"
	want += "\n"
	want += `'DLGH' 42 DlgPanel {` + "\n"
	want += dlghRow("1", "Button_0") + "\n"
	want += dlghRow("2", "SingleSpin_0") + "\n"
	want += dlghRow("3", "IconCheckBox_0") + "\n"
	want += dlghRow("4", "Ruler_0") + "\n"
	want += "}" + "\n"
	want += "\n"

	assert.Equal(t, want, got)
}

// TestConvertGDLGIconAndSplitButtonGolden pins the IconPushRadio groupId
// ordering (groupId before iconId, both ahead of bevelType) and
// SplitButton's full fontSpec/bevelType/iconId/text shape.
func TestConvertGDLGIconAndSplitButtonGolden(t *testing.T) {
	t.Parallel()

	const doc = `{
  "GDLG": [
    {
      "#id": 7, "name": "Toolbar", "anchor": "DlgToolbar", "type": "Modal",
      "size": {"w": 100, "h": 40},
      "controls": [
        {"IconPushRadio": {"#id": 1, "rect": {"x": 0, "y": 0, "w": 20, "h": 20}, "groupId": "G1", "iconId": "9"}},
        {"SplitButton": {"#id": 2, "rect": {"x": 25, "y": 0, "w": 60, "h": 20}, "iconId": "3", "text": "Go"}}
      ]
    }
  ]
}`

	decoded, err := grc.Decode([]byte(doc))
	require.NoError(t, err)

	got, err := grc.Convert(decoded, 29, nil)
	require.NoError(t, err)

	rect := func(x, y, w, h int) string {
		return fmt.Sprintf("%s %s %s %s",
			grc.RJust(strconv.Itoa(x), 4), grc.RJust(strconv.Itoa(y), 4),
			grc.RJust(strconv.Itoa(w), 4), grc.RJust(strconv.Itoa(h), 4))
	}

	controlLine := func(controlType string, fields ...string) string {
		parts := append([]string{grc.LJust(controlType, grc.GDLGControlTypeWidth)}, fields...)

		line := parts[0]
		for _, p := range parts[1:] {
			line += " " + p
		}

		return line
	}

	dlghRow := func(ordinal, anchor string) string {
		return fmt.Sprintf("%s  %s  %s", ordinal, grc.LJust(`""`, grc.DLGHTooltipWidth), anchor)
	}

	var want string
	want += `#include "DGDefs.h"` + "\n"
	want += "\n"
	want += fmt.Sprintf(`'GDLG' %s Modal %s %s %s %s %s {`,
		"7", grc.RJust("0", 4), grc.RJust("0", 4), grc.RJust("100", 4), grc.RJust("40", 4), `"Toolbar"`) + "\n"
	want += controlLine("IconPushRadio", rect(0, 0, 20, 20), "G1", "9", "RoundedEdge") + "\n"
	want += controlLine("SplitButton", rect(25, 0, 60, 20), "LargePlain", "RoundedEdge", "3", `"Go"`) + "\n"
	want += "}" + "\n"
	want += "\n"
	want += `'DLGH' 7 DlgToolbar {` + "\n"
	want += dlghRow("1", "IconPushRadio_0") + "\n"
	want += dlghRow("2", "SplitButton_0") + "\n"
	want += "}" + "\n"
	want += "\n"

	assert.Equal(t, want, got)
}
