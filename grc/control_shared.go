package grc

import (
	"fmt"
)

// controlConverterFunc converts one GDLG control's properties into a single
// (or, for tab/list controls, multi-line) GRC block, writing directly to
// out. The enclosing `#condition` bracket (if any) and the trailing
// exhaustion check are handled by the GDLG orchestrator, not the
// individual converter.
type controlConverterFunc func(out *Builder, props *Record, controlType string, acVersion int) error

func controlRect(props *Record) (string, error) {
	rectRec, err := props.RequireObject("rect")
	if err != nil {
		return "", err
	}

	if err := rectRec.RequireNoCondition(); err != nil {
		return "", err
	}

	x, err := rectRec.RequireInt("x")
	if err != nil {
		return "", err
	}

	y, err := rectRec.RequireInt("y")
	if err != nil {
		return "", err
	}

	w, err := rectRec.RequireInt("w")
	if err != nil {
		return "", err
	}

	h, err := rectRec.RequireInt("h")
	if err != nil {
		return "", err
	}

	if err := rectRec.Done(); err != nil {
		return "", fmt.Errorf("rect: %w", err)
	}

	return fmt.Sprintf("%s %s %s %s", RJust(itoa(x), 4), RJust(itoa(y), 4), RJust(itoa(w), 4), RJust(itoa(h), 4)), nil
}

func itoa(v int64) string {
	return fmt.Sprintf("%d", v)
}

var fontSpecMapping = map[string]string{
	"extraSmall":     "ExtraSmall",
	"smallPlain":     "SmallPlain",
	"smallItalic":    "SmallItalic",
	"smallUnderline": "SmallUnderline",
	"smallBold":      "SmallBold",
	"smallShadow":    "SmallShadow",
	"smallOutline":   "SmallOutline",
	"largePlain":     "LargePlain",
	"largeItalic":    "LargeItalic",
	"largeUnderline": "LargeUnderline",
	"largeBold":      "LargeBold",
	"largeShadow":    "LargeShadow",
	"largeOutline":   "LargeOutline",
}

func controlFontSpec(props *Record) (string, error) {
	font, err := props.PopStringDefault("font", "largePlain")
	if err != nil {
		return "", err
	}

	return MapProperty(font, fontSpecMapping)
}

var frameTypeMapping = map[string]string{"no": "noFrame", "yes": "frame"}

func controlFrameType(props *Record) (string, error) {
	v, err := props.PopStringDefault("frame", "yes")
	if err != nil {
		return "", err
	}

	return MapProperty(v, frameTypeMapping)
}

var bevelTypeMapping29 = map[string]string{"roundedEdge": "RoundedEdge", "squaredEdge": "SquaredEdge"}
var bevelTypeMappingLegacy = map[string]string{"roundedEdge": "BevelEdge", "squaredEdge": "RoundedBevelEdge"}

func controlBevelType(props *Record, acVersion int) (string, error) {
	v, err := props.PopStringDefault("appearance", "roundedEdge")
	if err != nil {
		return "", err
	}

	mapping := bevelTypeMappingLegacy
	if acVersion >= 29 {
		mapping = bevelTypeMapping29
	}

	return MapProperty(v, mapping)
}

var edgeTypeMapping = map[string]string{
	"default":    "Default",
	"staticEdge": "StaticEdge",
	"clientEdge": "ClientEdge",
	"modalFrame": "ModalFrame",
}

func controlEdgeType(props *Record) (string, error) {
	v, err := props.PopStringDefault("edgeType", "default")
	if err != nil {
		return "", err
	}

	return MapProperty(v, edgeTypeMapping)
}

var alignmentMapping = map[string]string{"top": "vTop", "center": "vCenter", "bottom": "vBottom"}

func controlAlignment(props *Record) (string, error) {
	v, err := props.PopStringDefault("alignment", "top")
	if err != nil {
		return "", err
	}

	return MapProperty(v, alignmentMapping)
}

var truncationMapping = map[string]string{"no": "noTrunc", "end": "truncEnd", "middle": "truncMiddle"}

func controlTruncation(props *Record) (string, error) {
	v, err := props.PopStringDefault("truncation", "no")
	if err != nil {
		return "", err
	}

	return MapProperty(v, truncationMapping)
}

func controlTextStyles(props *Record) (string, error) {
	alignment, err := controlAlignment(props)
	if err != nil {
		return "", err
	}

	truncation, err := controlTruncation(props)
	if err != nil {
		return "", err
	}

	return alignment + " | " + truncation, nil
}

var changeFontMapping = map[string]string{"no": "noChangeFont", "yes": "changeFont"}

func controlChangeFont(props *Record) (string, error) {
	v, err := props.PopStringDefault("changeFont", "yes")
	if err != nil {
		return "", err
	}

	return MapProperty(v, changeFontMapping)
}

var updateMapping = map[string]string{"no": "noUpdate", "delayed": "update", "instant": "noDelay"}

func controlUpdate(props *Record) (string, error) {
	v, err := props.PopStringDefault("update", "delayed")
	if err != nil {
		return "", err
	}

	return MapProperty(v, updateMapping)
}

var relativeMapping = map[string]string{"no": "absolute", "yes": "relative"}

func controlRelative(props *Record) (string, error) {
	v, err := props.PopStringDefault("relative", "no")
	if err != nil {
		return "", err
	}

	return MapProperty(v, relativeMapping)
}

var readOnlyMapping = map[string]string{"no": "editable", "yes": "readOnly"}

func controlReadOnly(props *Record) (string, error) {
	v, err := props.PopStringDefault("readOnly", "no")
	if err != nil {
		return "", err
	}

	return MapProperty(v, readOnlyMapping)
}

func controlEditStyles(props *Record) (string, error) {
	frameType, err := controlFrameType(props)
	if err != nil {
		return "", err
	}

	update, err := controlUpdate(props)
	if err != nil {
		return "", err
	}

	relative, err := controlRelative(props)
	if err != nil {
		return "", err
	}

	readOnly, err := controlReadOnly(props)
	if err != nil {
		return "", err
	}

	return frameType + " | " + update + " | " + relative + " | " + readOnly, nil
}

func controlLengthEditStyles(props *Record) (string, error) {
	changeFont, err := controlChangeFont(props)
	if err != nil {
		return "", err
	}

	frameType, err := controlFrameType(props)
	if err != nil {
		return "", err
	}

	update, err := controlUpdate(props)
	if err != nil {
		return "", err
	}

	relative, err := controlRelative(props)
	if err != nil {
		return "", err
	}

	readOnly, err := controlReadOnly(props)
	if err != nil {
		return "", err
	}

	return changeFont + " | " + frameType + " | " + update + " | " + relative + " | " + readOnly, nil
}

func controlRichEditStyles(props *Record) (string, error) {
	frameType, err := controlFrameType(props)
	if err != nil {
		return "", err
	}

	readOnly, err := controlReadOnly(props)
	if err != nil {
		return "", err
	}

	return frameType + " | " + readOnly, nil
}

var scrollMapping = map[string]string{"no": "NoScroll", "h": "HScroll", "v": "VScroll", "hv": "HVScroll"}

func controlScroll(props *Record, def string) (string, error) {
	v, err := props.PopStringDefault("scroll", def)
	if err != nil {
		return "", err
	}

	return MapProperty(v, scrollMapping)
}

func controlRequireScroll(props *Record) (string, error) {
	v, err := props.RequireString("scroll")
	if err != nil {
		return "", err
	}

	return MapProperty(v, scrollMapping)
}

var resizeMapping = map[string]string{"auto": "autoResize", "noAuto": "noAutoResize"}

func controlResize(props *Record) (string, error) {
	v, err := props.PopStringDefault("resize", "auto")
	if err != nil {
		return "", err
	}

	return MapProperty(v, resizeMapping)
}

var wrapMapping = map[string]string{"word": "wordWrap", "eof": "eofWrap"}

func controlWrap(props *Record) (string, error) {
	v, err := props.PopStringDefault("wrap", "eof")
	if err != nil {
		return "", err
	}

	return MapProperty(v, wrapMapping)
}

func controlUniRichEditStyles(props *Record) (string, error) {
	resize, err := controlResize(props)
	if err != nil {
		return "", err
	}

	wrap, err := controlWrap(props)
	if err != nil {
		return "", err
	}

	frameType, err := controlFrameType(props)
	if err != nil {
		return "", err
	}

	readOnly, err := controlReadOnly(props)
	if err != nil {
		return "", err
	}

	return resize + " | " + wrap + " | " + frameType + " | " + readOnly, nil
}

var proportionalMapping = map[string]string{"yes": "Proportional", "no": "Normal"}

func controlProportional(props *Record) (string, error) {
	v, err := props.PopStringDefault("proportional", "no")
	if err != nil {
		return "", err
	}

	return MapProperty(v, proportionalMapping)
}

var focusableMapping = map[string]string{"yes": "Focusable", "no": "NonFocusable"}

func controlFocusable(props *Record) (string, error) {
	v, err := props.PopStringDefault("focusable", "yes")
	if err != nil {
		return "", err
	}

	return MapProperty(v, focusableMapping)
}

var autoScrollMapping = map[string]string{"yes": "AutoScroll", "no": "NoAutoScroll"}

func controlAutoScroll(props *Record) (string, error) {
	v, err := props.PopStringDefault("autoScroll", "yes")
	if err != nil {
		return "", err
	}

	return MapProperty(v, autoScrollMapping)
}

func controlScrollBarStyles(props *Record) (string, error) {
	proportional, err := controlProportional(props)
	if err != nil {
		return "", err
	}

	focusable, err := controlFocusable(props)
	if err != nil {
		return "", err
	}

	autoScroll, err := controlAutoScroll(props)
	if err != nil {
		return "", err
	}

	return proportional + " | " + focusable + " | " + autoScroll, nil
}

var partialItemsMapping = map[string]string{"yes": "PartialItems", "no": "NoPartialItems"}

func controlPartialItems(props *Record) (string, error) {
	v, err := props.RequireString("partialItems")
	if err != nil {
		return "", err
	}

	return MapProperty(v, partialItemsMapping)
}

func controlListFlags(props *Record) (string, error) {
	header, err := props.PopStringDefault("header", "no")
	if err != nil {
		return "", err
	}

	var parts []string

	if header == "yes" {
		height, err := props.RequireRaw("headerHeight")
		if err != nil {
			return "", err
		}

		parts = append(parts, "HasHeader "+height)
	}

	frame, err := props.PopStringDefault("frame", "no")
	if err != nil {
		return "", err
	}

	if frame == "yes" {
		parts = append(parts, "HasFrame")
	}

	return joinWith(parts, " "), nil
}

func controlSize(props *Record, key string) (w, h int64, err error) {
	rec, err := props.RequireObject(key)
	if err != nil {
		return 0, 0, err
	}

	w, err = rec.RequireInt("w")
	if err != nil {
		return 0, 0, err
	}

	h, err = rec.RequireInt("h")
	if err != nil {
		return 0, 0, err
	}

	if err := rec.Done(); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", key, err)
	}

	return w, h, nil
}

var listViewTextModeMapping = map[string]string{
	"bottomText":   "bottomText",
	"rightText":    "rightText",
	"singleColumn": "singleColumn",
}

func controlListViewTextMode(props *Record) (string, error) {
	v, err := props.RequireString("mode")
	if err != nil {
		return "", err
	}

	return MapProperty(v, listViewTextModeMapping)
}

func controlListViewFlags(props *Record) (string, error) {
	var parts []string

	scroll, ok, err := props.PopString("scroll")
	if err != nil {
		return "", err
	}

	if ok && scroll == "no" {
		parts = append(parts, "NoScroll")
	}

	frame, err := props.PopStringDefault("frame", "no")
	if err != nil {
		return "", err
	}

	if frame == "yes" {
		parts = append(parts, "HasFrame")
	}

	return joinWith(parts, " "), nil
}

var tvLabelEditMapping = map[string]string{"yes": "labelEdit", "no": "noLabelEdit"}

func controlTVLabelEdit(props *Record) (string, error) {
	v, err := props.RequireString("editableLabel")
	if err != nil {
		return "", err
	}

	return MapProperty(v, tvLabelEditMapping)
}

var tvDragDropMapping = map[string]string{"yes": "dragDrop", "no": "noDragDrop"}

func controlTVDragDrop(props *Record) (string, error) {
	v, err := props.RequireString("dragDrop")
	if err != nil {
		return "", err
	}

	return MapProperty(v, tvDragDropMapping)
}

func controlTVFlags(props *Record) (string, error) {
	var parts []string

	rootButton, err := props.PopStringDefault("rootButton", "no")
	if err != nil {
		return "", err
	}

	if rootButton == "no" {
		parts = append(parts, "noRootButton")
	}

	frame, err := props.PopStringDefault("frame", "no")
	if err != nil {
		return "", err
	}

	if frame == "yes" {
		parts = append(parts, "HasFrame")
	}

	return joinWith(parts, " "), nil
}

var sliderStyleMapping = map[string]string{"BottomRight": "BottomRight", "TopLeft": "TopLeft"}

var splitterTypeMapping = map[string]string{"normal": "Normal", "transparent": "Transparent"}

var dateControlTypeMapping = map[string]string{"calendar": "Calendar", "standard": "Standard"}

var groupBoxTypeMapping = map[string]string{"primary": "Primary", "secondary": "Secondary"}

var partialUpdateMapping = map[string]string{"yes": "PartialUpdate", "no": ""}

var progressBarFrameMapping = map[string]string{
	"staticEdge": "StaticEdge",
	"clientEdge": "ClientEdge",
	"modalFrame": "ModalFrame",
}

func controlProgressBarFrame(props *Record) (string, error) {
	v, err := props.PopStringDefault("frameType", "staticEdge")
	if err != nil {
		return "", err
	}

	return MapProperty(v, progressBarFrameMapping)
}

func convertDataBytes(items []*Node) (string, error) {
	parts := make([]string, 0, len(items))

	for _, item := range items {
		if item.Kind != KindInt {
			return "", fmt.Errorf("data: expected integer byte values")
		}

		parts = append(parts, fmt.Sprintf("0x%04X", item.Int))
	}

	return joinWith(parts, " "), nil
}
