package grc

import "fmt"

var dialogTypeMapping = map[string]string{
	"Modal":    "Modal",
	"Modeless": "Modeless",
	"Palette":  "Palette",
	"TabPage":  "TabPage",
}

// ConvertDialogType pops the required `type` field and maps it to its GRC
// token.
func ConvertDialogType(rec *Record) (string, error) {
	v, err := rec.RequireString("type")
	if err != nil {
		return "", err
	}

	return MapProperty(v, dialogTypeMapping)
}

// dialogFlagNames lists the style-flag fields in emission order; token
// order in the combined `dialogTypeFlags` string follows this list.
var dialogFlagNames = []struct{ key, token string }{
	{"grow", "Grow"},
	{"topCaption", "TopCaption"},
	{"leftCaption", "LeftCaption"},
	{"close", "Close"},
	{"minimize", "Minimize"},
	{"maximize", "Maximize"},
	{"frame", "Frame"},
}

// dialogTypeLegalFlags lists which style flags each dialogType may carry.
var dialogTypeLegalFlags = map[string]map[string]bool{
	"TabPage":  {},
	"Modal":    {"Grow": true, "Frame": true},
	"Modeless": {"Grow": true, "TopCaption": true, "LeftCaption": true, "Close": true, "Minimize": true, "Maximize": true, "Frame": true},
	"Palette":  {"Grow": true, "TopCaption": true, "LeftCaption": true, "Close": true, "Frame": true},
}

// ConvertDialogTypeFlags pops each style-flag field and assembles the
// `dialogTypeFlags` bitwise-OR string, rejecting any flag not legal for
// dialogType.
func ConvertDialogTypeFlags(rec *Record, dialogType string) (string, error) {
	legal := dialogTypeLegalFlags[dialogType]

	var tokens []string

	for _, f := range dialogFlagNames {
		v, err := rec.PopStringDefault(f.key, "no")
		if err != nil {
			return "", err
		}

		if v != "yes" {
			continue
		}

		if !legal[f.token] {
			return "", fmt.Errorf("%w: %q not legal for dialogType %q", ErrIllegalStyle, f.token, dialogType)
		}

		tokens = append(tokens, f.token)
	}

	return joinWith(tokens, " | "), nil
}

// GenerateUniqueAnchor returns the smallest non-negative k such that
// "<base>_<k>" isn't already present in used, then marks it used.
func GenerateUniqueAnchor(base string, used map[string]bool) string {
	for k := 0; ; k++ {
		candidate := fmt.Sprintf("%s_%d", base, k)
		if !used[candidate] {
			used[candidate] = true

			return candidate
		}
	}
}

// GetUsedAnchors gathers every explicit anchor already present across a
// dialog's controls, via a non-consuming peek pass performed before any
// control is converted.
func GetUsedAnchors(controls []*Node) map[string]bool {
	used := map[string]bool{}

	collectAnchor := func(n *Node) {
		if n == nil || !n.IsObject() {
			return
		}

		if a := n.Field("anchor"); a != nil {
			if s, err := nodeScalarString(a); err == nil {
				used[s] = true
			}
		}
	}

	for _, control := range controls {
		for _, controlType := range control.Keys() {
			props := control.Field(controlType)

			hi := props.Field("helpInfo")
			if hi == nil {
				continue
			}

			if hi.IsArray() {
				for _, entry := range hi.Items {
					collectAnchor(entry)
				}
			} else {
				collectAnchor(hi)
			}
		}
	}

	return used
}

type dlghRow struct {
	condition string
	ordinal   string
	tooltip   string
	anchor    string
}

// resolveHelpInfo produces the DLGH rows for one control, keyed by its own
// `#id` as ordinal. A single `helpInfo` object reads `anchor`/`tooltip`
// non-destructively and without checking `#condition` on it; a list of
// objects is popped and `#condition`-checked entry by entry, with only the
// first row carrying the ordinal; an absent `helpInfo` synthesizes one
// anchor under the control's own ordinal.
func resolveHelpInfo(controlType, ordinal string, hi *Node, has bool, used map[string]bool) ([]dlghRow, error) {
	if !has || hi.IsNull() {
		return []dlghRow{{ordinal: ordinal, tooltip: `""`, anchor: GenerateUniqueAnchor(controlType, used)}}, nil
	}

	if hi.IsArray() {
		rows := make([]dlghRow, 0, len(hi.Items))

		for i, entry := range hi.Items {
			entryRec := NewRecord(entry)

			condition, _ := entryRec.PopCondition()

			anchor, err := entryRec.PopRawDefault("anchor", "")
			if err != nil {
				return nil, err
			}

			if anchor == "" {
				anchor = GenerateUniqueAnchor(controlType, used)
			} else {
				used[anchor] = true
			}

			tooltip, err := popEscapedStringDefault(entryRec, "tooltip", `""`)
			if err != nil {
				return nil, err
			}

			if err := entryRec.Done(); err != nil {
				return nil, fmt.Errorf("helpInfo[%d]: %w", i, err)
			}

			rowOrdinal := ""
			if i == 0 {
				rowOrdinal = ordinal
			}

			rows = append(rows, dlghRow{condition: condition, ordinal: rowOrdinal, tooltip: tooltip, anchor: anchor})
		}

		return rows, nil
	}

	// Single-object shape: read anchor/tooltip via a non-consuming peek,
	// matching the reference implementation's asymmetry with the list form.
	anchor := ""
	if a := hi.Field("anchor"); a != nil {
		s, err := nodeScalarString(a)
		if err != nil {
			return nil, err
		}

		anchor = s
	}

	if anchor == "" {
		anchor = GenerateUniqueAnchor(controlType, used)
	} else {
		used[anchor] = true
	}

	tooltip := `""`
	if t := hi.Field("tooltip"); t != nil {
		s, err := ConvertToEscapedString(t)
		if err != nil {
			return nil, err
		}

		tooltip = s
	}

	return []dlghRow{{ordinal: ordinal, tooltip: tooltip, anchor: anchor}}, nil
}

// ConvertGDLG emits a dialog's `GDLG` body and companion `DLGH` help-anchor
// table from one JSON object.
func ConvertGDLG(out *Builder, rec *Record, acVersion int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	rec.Pop("localized") // no GRC equivalent

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	size, err := rec.RequireObject("size")
	if err != nil {
		return err
	}

	w, err := size.RequireInt("w")
	if err != nil {
		return err
	}

	h, err := size.RequireInt("h")
	if err != nil {
		return err
	}

	if err := size.Done(); err != nil {
		return fmt.Errorf("size: %w", err)
	}

	dialogType, err := ConvertDialogType(rec)
	if err != nil {
		return err
	}

	dialogAnchor, err := rec.RequireString("anchor")
	if err != nil {
		return err
	}

	flags, err := ConvertDialogTypeFlags(rec, dialogType)
	if err != nil {
		return err
	}

	controls, err := rec.RequireList("controls")
	if err != nil {
		return err
	}

	return withCondition(rec, out, func() error {
		used := GetUsedAnchors(controls)

		dialogTypeToken := dialogType
		if flags != "" {
			dialogTypeToken = dialogType + " | " + flags
		}

		out.AddLine(fmt.Sprintf(`'GDLG' %s %s %s %s %s %s %s {`,
			id, dialogTypeToken, RJust("0", 4), RJust("0", 4), RJust(itoa(w), 4), RJust(itoa(h), 4), name))

		var rows []dlghRow

		for i, control := range controls {
			keys := control.Keys()
			if len(keys) != 1 {
				return fmt.Errorf("controls[%d]: expected a single-key control mapping", i)
			}

			controlType := keys[0]
			props := NewRecord(control.Field(controlType))

			controlID, err := props.RequireRaw("#id")
			if err != nil {
				return fmt.Errorf("controls[%d] (%s): %w", i, controlType, err)
			}

			helpInfo, hasHelp := props.Pop("helpInfo")

			itemRows, err := resolveHelpInfo(controlType, controlID, helpInfo, hasHelp, used)
			if err != nil {
				return fmt.Errorf("controls[%d] (%s): %w", i, controlType, err)
			}

			rows = append(rows, itemRows...)

			converter, ok := controlConverterMapping[controlType]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnsupportedGDLGControl, controlType)
			}

			if err := withCondition(props, out, func() error {
				return converter(out, props, controlType, acVersion)
			}); err != nil {
				return fmt.Errorf("controls[%d] (%s): %w", i, controlType, err)
			}

			if err := props.Done(); err != nil {
				return fmt.Errorf("controls[%d] (%s): %w", i, controlType, err)
			}
		}

		out.AddLine("}")
		out.Blank()
		out.AddLine(fmt.Sprintf(`'DLGH' %s %s {`, id, dialogAnchor))

		for _, row := range rows {
			if row.condition != "" {
				line, err := ConditionToIfdef(row.condition)
				if err != nil {
					return err
				}

				out.AddLine(line)
			}

			out.AddLine(fmt.Sprintf("%s  %s  %s", row.ordinal, LJust(row.tooltip, DLGHTooltipWidth), row.anchor))

			if row.condition != "" {
				out.AddLine(ConditionEnd())
			}
		}

		out.AddLine("}")

		return nil
	})
}
