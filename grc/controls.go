package grc

import (
	"fmt"
	"strings"
)

// emitControlLine writes one control's line: its type token left-justified,
// then its fields joined by single spaces, then its trailing comment.
func emitControlLine(out *Builder, controlType, comment string, fields ...string) {
	parts := append([]string{LJust(controlType, GDLGControlTypeWidth)}, fields...)
	out.AddLine(strings.Join(parts, " ") + comment)
}

// --- Button, CheckBox, RadioButton ---

func convertButton(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	frameType, err := controlFrameType(props)
	if err != nil {
		return err
	}

	bevelType, err := controlBevelType(props, acVersion)
	if err != nil {
		return err
	}

	text, err := requireEscapedString(props, "text")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, font, frameType, bevelType, text)

	return nil
}

func convertCheckOrRadio(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	fields := []string{rect, font}

	if props.Has("groupId") {
		groupID, err := props.RequireRaw("groupId")
		if err != nil {
			return err
		}

		fields = append(fields, groupID)
	}

	text, err := requireEscapedString(props, "text")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	fields = append(fields, text)
	emitControlLine(out, controlType, comment, fields...)

	return nil
}

// --- Numeric edit family ---

func convertNumericEdit(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	fields := []string{rect, font}

	if controlType == "SAMQuantityEdit" {
		subType, err := props.RequireRaw("subType")
		if err != nil {
			return err
		}

		fields = append(fields, subType)
	}

	styles, err := controlEditStyles(props)
	if err != nil {
		return err
	}

	minValue, err := requireEscapedString(props, "minValue")
	if err != nil {
		return err
	}

	maxValue, err := requireEscapedString(props, "maxValue")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	fields = append(fields, styles, minValue, maxValue)
	emitControlLine(out, controlType, comment, fields...)

	return nil
}

func convertLengthEdit(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	styles, err := controlLengthEditStyles(props)
	if err != nil {
		return err
	}

	minValue, err := requireEscapedString(props, "minValue")
	if err != nil {
		return err
	}

	maxValue, err := requireEscapedString(props, "maxValue")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	// Preserves a reference-format quirk: an extra literal space separates
	// the last field from the comment here (comment already carries its
	// own leading space).
	emitControlLine(out, controlType, " "+comment, rect, font, styles, minValue, maxValue)

	return nil
}

// --- Text edit family ---

func convertSimpleTextEdit(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	styles, err := controlEditStyles(props)
	if err != nil {
		return err
	}

	maxCharCount, err := props.RequireRaw("maxCharCount")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, font, styles, maxCharCount)

	return nil
}

func convertRichEditFamily(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	var styles string

	if controlType == "UniRichEdit" {
		styles, err = controlUniRichEditStyles(props)
	} else {
		styles, err = controlRichEditStyles(props)
	}

	if err != nil {
		return err
	}

	scroll, err := controlRequireScroll(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, font, styles, scroll)

	return nil
}

// --- Static text family ---

func convertStaticText(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	styles, err := controlTextStyles(props)
	if err != nil {
		return err
	}

	edgeType, err := controlEdgeType(props)
	if err != nil {
		return err
	}

	text, err := requireEscapedString(props, "text")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, font, styles, edgeType, text)

	return nil
}

func convertGroupBox(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	groupBoxType, err := props.RequireString("groupBoxType")
	if err != nil {
		return err
	}

	groupBoxTypeToken, err := MapProperty(groupBoxType, groupBoxTypeMapping)
	if err != nil {
		return err
	}

	text, err := requireEscapedString(props, "text")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, font, groupBoxTypeToken, text)

	return nil
}

// --- Icon family ---
// Icon, IconButton/IconPushCheck, IconCheckBox, IconPushRadio,
// IconRadioButton, and the two IconMenu* controls each have a distinct
// shape; only the leading rect is shared.

func convertIcon(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	iconID, err := props.RequireRaw("iconId")
	if err != nil {
		return err
	}

	edgeType, err := controlEdgeType(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, ConvertIconID(iconID), edgeType)

	return nil
}

// convertIconButtonOrPushCheck handles IconButton and IconPushCheck, which
// share rect, iconId, frameType, bevelType.
func convertIconButtonOrPushCheck(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	iconID, err := props.RequireRaw("iconId")
	if err != nil {
		return err
	}

	frameType, err := controlFrameType(props)
	if err != nil {
		return err
	}

	bevelType, err := controlBevelType(props, acVersion)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, ConvertIconID(iconID), frameType, bevelType)

	return nil
}

func convertIconCheckBox(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	iconID, err := props.RequireRaw("iconId")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, ConvertIconID(iconID))

	return nil
}

func convertIconPushRadio(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	groupID, err := props.PopRawDefault("groupId", "")
	if err != nil {
		return err
	}

	iconID, err := props.RequireRaw("iconId")
	if err != nil {
		return err
	}

	bevelType, err := controlBevelType(props, acVersion)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, groupID, ConvertIconID(iconID), bevelType)

	return nil
}

func convertIconRadioButton(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	groupID, err := props.PopRawDefault("groupId", "")
	if err != nil {
		return err
	}

	iconID, err := props.RequireRaw("iconId")
	if err != nil {
		return err
	}

	if props.Has("appearance") {
		return fmt.Errorf("%w: IconRadioButton does not support appearance", ErrUnsupportedGDLGControl)
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, groupID, ConvertIconID(iconID))

	return nil
}

// convertIconMenuItems reads the optional "items" list shared by
// IconMenuCheck and IconMenuRadio: each entry carries only an iconId (and
// an ignored #comment).
func convertIconMenuItems(props *Record) ([]string, error) {
	items, _, err := props.PopList("items")
	if err != nil {
		return nil, err
	}

	iconIDs := make([]string, 0, len(items))

	for i, item := range items {
		if !item.IsObject() {
			return nil, fmt.Errorf("items[%d]: expected an object", i)
		}

		irec := NewRecord(item)

		iconID, err := irec.RequireRaw("iconId")
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}

		irec.PopComment() // Not supported on the iconIds token list.

		if err := irec.Done(); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}

		iconIDs = append(iconIDs, ConvertIconID(iconID))
	}

	return iconIDs, nil
}

func convertIconMenuCheck(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	iconIDs, err := convertIconMenuItems(props)
	if err != nil {
		return err
	}

	bevelType, err := controlBevelType(props, acVersion)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	fields := append([]string{rect}, iconIDs...)
	fields = append(fields, bevelType)

	// Preserves a reference-format quirk: an extra literal space separates
	// bevelType from the comment.
	emitControlLine(out, controlType, " "+comment, fields...)

	return nil
}

func convertIconMenuRadio(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	groupID, err := props.RequireRaw("groupId")
	if err != nil {
		return err
	}

	iconIDs, err := convertIconMenuItems(props)
	if err != nil {
		return err
	}

	bevelType, err := controlBevelType(props, acVersion)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	fields := []string{rect, groupID}
	fields = append(fields, iconIDs...)
	fields = append(fields, bevelType)

	emitControlLine(out, controlType, comment, fields...)

	return nil
}

// --- Tab families ---

func convertNormalTab(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect)

	items, err := props.RequireList("items")
	if err != nil {
		return err
	}

	for i, item := range items {
		if !item.IsObject() {
			return fmt.Errorf("items[%d]: expected an object", i)
		}

		irec := NewRecord(item)

		pageID, err := irec.RequireRaw("pageId")
		if err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}

		iconID, err := irec.RequireRaw("iconId")
		if err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}

		text, err := requireEscapedString(irec, "text")
		if err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}

		itemComment := irec.PopComment()

		out.AddLine(fmt.Sprintf("    %s %s %s%s", pageID, ConvertIconID(iconID), text, itemComment))

		if err := irec.Done(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	return nil
}

func convertSimpleTab(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	frameType, err := controlFrameType(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, frameType)

	items, err := props.RequireList("items")
	if err != nil {
		return err
	}

	for i, item := range items {
		if !item.IsObject() {
			return fmt.Errorf("items[%d]: expected an object", i)
		}

		irec := NewRecord(item)

		pageID, err := irec.RequireRaw("pageId")
		if err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}

		itemComment := irec.PopComment()

		out.AddLine(fmt.Sprintf("    %s%s", pageID, itemComment))

		if err := irec.Done(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	return nil
}

func convertPopupControl(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	listHeight, err := props.RequireRaw("listHeight")
	if err != nil {
		return err
	}

	textOffset, err := props.RequireRaw("textOffset")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, listHeight, textOffset)

	items, err := props.RequireList("items")
	if err != nil {
		return err
	}

	for i, item := range items {
		if !item.IsObject() {
			return fmt.Errorf("items[%d]: expected an object", i)
		}

		irec := NewRecord(item)

		iconID, err := irec.RequireRaw("iconId")
		if err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}

		text, err := requireEscapedString(irec, "text")
		if err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}

		itemComment := irec.PopComment()

		out.AddLine(fmt.Sprintf("    %s %s%s", ConvertIconID(iconID), text, itemComment))

		if err := irec.Done(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	return nil
}

// --- List / ListView / TreeView families ---

func convertSelList(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	partialItems, err := controlPartialItems(props)
	if err != nil {
		return err
	}

	scroll, err := controlScroll(props, "no")
	if err != nil {
		return err
	}

	itemHeight, err := props.RequireRaw("itemHeight")
	if err != nil {
		return err
	}

	flags, err := controlListFlags(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	fields := []string{rect, font, partialItems, scroll, itemHeight}
	if flags != "" {
		fields = append(fields, flags)
	}

	emitControlLine(out, controlType, comment, fields...)

	return nil
}

func convertSelListView(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	imW, imH, err := controlSize(props, "imageSize")
	if err != nil {
		return err
	}

	cellW, cellH, err := controlSize(props, "cellSize")
	if err != nil {
		return err
	}

	mode, err := controlListViewTextMode(props)
	if err != nil {
		return err
	}

	flags, err := controlListViewFlags(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	fields := []string{rect, font, itoa(imW), itoa(imH), itoa(cellW), itoa(cellH), mode}
	if flags != "" {
		fields = append(fields, flags)
	}

	emitControlLine(out, controlType, comment, fields...)

	return nil
}

func convertSelTreeView(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	normW, normH, err := controlSize(props, "normalIconSize")
	if err != nil {
		return err
	}

	smW, smH, err := controlSize(props, "smallIconSize")
	if err != nil {
		return err
	}

	labelEdit, err := controlTVLabelEdit(props)
	if err != nil {
		return err
	}

	dragDrop, err := controlTVDragDrop(props)
	if err != nil {
		return err
	}

	maxCharCount, err := props.RequireRaw("maxCharCount")
	if err != nil {
		return err
	}

	flags, err := controlTVFlags(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	fields := []string{rect, font, itoa(normW), itoa(normH), itoa(smW), itoa(smH), labelEdit, dragDrop, maxCharCount}
	if flags != "" {
		fields = append(fields, flags)
	}

	emitControlLine(out, controlType, comment, fields...)

	return nil
}

// --- SingleSpin, EditSpin, Slider, ScrollBar, ProgressBar ---
// Five structurally distinct shapes sharing only a leading rect.

func convertSingleSpin(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	minValue, err := props.RequireRaw("minValue")
	if err != nil {
		return err
	}

	maxValue, err := props.RequireRaw("maxValue")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, minValue, maxValue)

	return nil
}

func convertEditSpin(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	editID, err := props.RequireRaw("editId")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	// Preserves a reference-format quirk: an extra literal space separates
	// editId from the comment.
	emitControlLine(out, controlType, " "+comment, rect, editID)

	return nil
}

func convertSlider(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	stepValue, err := props.RequireRaw("stepValue")
	if err != nil {
		return err
	}

	minValue, err := props.RequireRaw("minValue")
	if err != nil {
		return err
	}

	maxValue, err := props.RequireRaw("maxValue")
	if err != nil {
		return err
	}

	sliderStyle, err := props.PopStringDefault("sliderStyle", "BottomRight")
	if err != nil {
		return err
	}

	sliderStyleToken, err := MapProperty(sliderStyle, sliderStyleMapping)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	// Preserves a reference-format quirk: an extra literal space separates
	// sliderStyle from the comment.
	emitControlLine(out, controlType, " "+comment, rect, stepValue, minValue, maxValue, sliderStyleToken)

	return nil
}

func convertScrollBar(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	pageSize, err := props.RequireRaw("pageSize")
	if err != nil {
		return err
	}

	minValue, err := props.RequireRaw("minValue")
	if err != nil {
		return err
	}

	maxValue, err := props.RequireRaw("maxValue")
	if err != nil {
		return err
	}

	styles, err := controlScrollBarStyles(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, pageSize, minValue, maxValue, styles)

	return nil
}

func convertProgressBar(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	minValue, err := props.RequireRaw("minValue")
	if err != nil {
		return err
	}

	maxValue, err := props.RequireRaw("maxValue")
	if err != nil {
		return err
	}

	frame, err := controlProgressBarFrame(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, minValue, maxValue, frame)

	return nil
}

// --- Ruler, Picture, UserControl, UserItem ---

var rulerTypeMapping = map[string]string{"editor": "editor", "window": "window", "table": "table"}

func convertRuler(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	rulerType, err := props.RequireString("rulerType")
	if err != nil {
		return err
	}

	rulerTypeToken, err := MapProperty(rulerType, rulerTypeMapping)
	if err != nil {
		return err
	}

	editID := ""
	if rulerType == "editor" || rulerType == "table" {
		editID, err = props.RequireRaw("editId")
		if err != nil {
			return err
		}
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, rulerTypeToken, editID)

	return nil
}

func convertPicture(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	iconID, err := props.RequireRaw("iconId")
	if err != nil {
		return err
	}

	edgeType, err := controlEdgeType(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, ConvertIconID(iconID), edgeType)

	return nil
}

func convertUserControl(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	ucID, err := props.RequireRaw("ucId")
	if err != nil {
		return err
	}

	fields := []string{rect, ucID}

	if dataItems, ok, err := props.PopList("data"); err != nil {
		return err
	} else if ok {
		dataStr, err := convertDataBytes(dataItems)
		if err != nil {
			return err
		}

		fields = append(fields, dataStr)
	}

	frameType, err := controlFrameType(props)
	if err != nil {
		return err
	}

	bevelType, err := controlBevelType(props, acVersion)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	fields = append(fields, frameType, bevelType)
	emitControlLine(out, controlType, comment, fields...)

	return nil
}

func convertUserItem(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	fields := []string{rect}

	partialUpdate, err := props.PopStringDefault("partialUpdate", "no")
	if err != nil {
		return err
	}

	if partialUpdate == "yes" {
		fields = append(fields, "PartialUpdate")
	}

	edgeType, err := controlEdgeType(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	fields = append(fields, edgeType)
	emitControlLine(out, controlType, comment, fields...)

	return nil
}

// --- Short, mostly-bare-rect controls ---

func convertRectOnly(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect)

	return nil
}

func convertDateControl(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	dateControlType, err := props.PopStringDefault("dateControlType", "standard")
	if err != nil {
		return err
	}

	dateControlTypeToken, err := MapProperty(dateControlType, dateControlTypeMapping)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, dateControlTypeToken)

	return nil
}

func convertSplitButton(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	font, err := controlFontSpec(props)
	if err != nil {
		return err
	}

	bevelType, err := controlBevelType(props, acVersion)
	if err != nil {
		return err
	}

	iconID, err := props.RequireRaw("iconId")
	if err != nil {
		return err
	}

	text, err := requireEscapedString(props, "text")
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, font, bevelType, ConvertIconID(iconID), text)

	return nil
}

func convertSplitter(out *Builder, props *Record, controlType string, acVersion int) error {
	rect, err := controlRect(props)
	if err != nil {
		return err
	}

	splitterType, err := props.RequireString("splitterType")
	if err != nil {
		return err
	}

	splitterTypeToken, err := MapProperty(splitterType, splitterTypeMapping)
	if err != nil {
		return err
	}

	comment := props.PopComment()

	emitControlLine(out, controlType, comment, rect, splitterTypeToken)

	return nil
}

// controlConverterMapping dispatches each supported GDLG control kind to
// its converter.
var controlConverterMapping = map[string]controlConverterFunc{
	"Button":     convertButton,
	"CheckBox":   convertCheckOrRadio,
	"RadioButton": convertCheckOrRadio,

	"IntEdit":         convertNumericEdit,
	"AngleEdit":       convertNumericEdit,
	"AreaEdit":        convertNumericEdit,
	"RealEdit":        convertNumericEdit,
	"PolarAngleEdit":  convertNumericEdit,
	"MMPointEdit":     convertNumericEdit,
	"VolumeEdit":      convertNumericEdit,
	"MMInchEdit":      convertNumericEdit,
	"SAMQuantityEdit": convertNumericEdit,
	"LengthEdit":      convertLengthEdit,

	"TextEdit":     convertSimpleTextEdit,
	"PasswordEdit": convertSimpleTextEdit,
	"ShortcutEdit": convertSimpleTextEdit,
	"SearchEdit":   convertSimpleTextEdit,

	"MultiLineEdit": convertRichEditFamily,
	"RichEdit":      convertRichEditFamily,
	"UniRichEdit":   convertRichEditFamily,

	"LeftText":   convertStaticText,
	"RightText":  convertStaticText,
	"CenterText": convertStaticText,
	"GroupBox":   convertGroupBox,

	"Icon":            convertIcon,
	"IconButton":      convertIconButtonOrPushCheck,
	"IconPushCheck":   convertIconButtonOrPushCheck,
	"IconCheckBox":    convertIconCheckBox,
	"IconPushRadio":   convertIconPushRadio,
	"IconRadioButton": convertIconRadioButton,
	"IconMenuCheck":   convertIconMenuCheck,
	"IconMenuRadio":   convertIconMenuRadio,

	"NormalTab":     convertNormalTab,
	"SimpleTab":     convertSimpleTab,
	"PopupControl":  convertPopupControl,

	"SingleSelList": convertSelList,
	"MultiSelList":  convertSelList,

	"SingleSelListView": convertSelListView,
	"MultiSelListView":  convertSelListView,

	"SingleSelTreeView": convertSelTreeView,
	"MultiSelTreeView":  convertSelTreeView,

	"SingleSpin":  convertSingleSpin,
	"EditSpin":    convertEditSpin,
	"Slider":      convertSlider,
	"ScrollBar":   convertScrollBar,
	"ProgressBar": convertProgressBar,

	"Ruler":       convertRuler,
	"Picture":     convertPicture,
	"UserControl": convertUserControl,
	"UserItem":    convertUserItem,

	"Browser":     convertRectOnly,
	"Separator":   convertRectOnly,
	"TimeControl": convertRectOnly,
	"TabBar":      convertRectOnly,
	"DateControl": convertDateControl,
	"SplitButton": convertSplitButton,
	"Splitter":    convertSplitter,
}
