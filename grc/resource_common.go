package grc

import "fmt"

// ConvertACP0 emits an ACP0 (add-on preference) resource: a name/value
// table of persisted preference items.
func ConvertACP0(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	comment := rec.PopComment()
	rec.Pop("localized") // no GRC equivalent

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'ACP0' %s %s{%s`, id, name, comment))

		items, err := rec.RequireList("items")
		if err != nil {
			return err
		}

		for i, item := range items {
			if !item.IsObject() {
				return fmt.Errorf("items[%d]: expected an object", i)
			}

			irec := NewRecord(item)

			itemID, err := irec.RequireRaw("#id")
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			itemComment := irec.PopComment()

			varName, err := requireEscapedString(irec, "varName")
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			value, err := requireEscapedString(irec, "value")
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			out.AddLine(fmt.Sprintf("/* [%s] VarName  */ %s%s", RJust(itemID, 3), varName, itemComment))
			out.AddLine(fmt.Sprintf("/* [%s] Value    */ %s%s", RJust(itemID, 3), value, itemComment))

			if err := irec.Done(); err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
		}

		out.AddLine("}")

		return nil
	})
}

// ConvertCMND emits a CMND (menu command) resource: a table of commands,
// each with one or more display-text items.
func ConvertCMND(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'CMND' %s %s {`, id, name))

		commands, err := rec.RequireList("commands")
		if err != nil {
			return err
		}

		for ci, command := range commands {
			if !command.IsObject() {
				return fmt.Errorf("commands[%d]: expected an object", ci)
			}

			crec := NewRecord(command)

			cmdID, err := crec.RequireRaw("#id")
			if err != nil {
				return fmt.Errorf("commands[%d]: %w", ci, err)
			}

			iconID, err := crec.PopRawDefault("iconId", "noIcon")
			if err != nil {
				return fmt.Errorf("commands[%d]: %w", ci, err)
			}

			iconID = convertCommandIconID(iconID)

			err = withCondition(crec, out, func() error {
				items, err := crec.RequireList("items")
				if err != nil {
					return err
				}

				for ii, item := range items {
					if !item.IsObject() {
						return fmt.Errorf("commands[%d].items[%d]: expected an object", ci, ii)
					}

					irec := NewRecord(item)

					text, err := requireEscapedString(irec, "text")
					if err != nil {
						return fmt.Errorf("commands[%d].items[%d]: %w", ci, ii, err)
					}

					description, err := requireEscapedString(irec, "description")
					if err != nil {
						return fmt.Errorf("commands[%d].items[%d]: %w", ci, ii, err)
					}

					itemComment := irec.PopComment()

					if ii == 0 {
						out.AddLine(fmt.Sprintf("    %s %s %s %s%s",
							LJust(cmdID, CMNDIDWidth), LJust(iconID, CMNDIconIDWidth),
							LJust(text, CMNDTextWidth), description, itemComment))
					} else {
						out.AddLine(fmt.Sprintf("    %s %s %s %s%s",
							LJust("", CMNDIDWidth), LJust("", CMNDIconIDWidth),
							LJust(text, CMNDTextWidth), description, itemComment))
					}

					if err := irec.Done(); err != nil {
						return fmt.Errorf("commands[%d].items[%d]: %w", ci, ii, err)
					}
				}

				return nil
			})
			if err != nil {
				return err
			}

			if err := crec.Done(); err != nil {
				return fmt.Errorf("commands[%d]: %w", ci, err)
			}
		}

		out.AddLine("}")

		return nil
	})
}

func convertCommandIconID(id string) string {
	if id == "NoIcon" {
		return "noIcon"
	}

	return ConvertIconID(id)
}

// ConvertDATA emits a DATA resource: either an inline data literal or a
// reference to an external file, never both.
func ConvertDATA(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	fileName, hasFileName, err := rec.PopString("fileName")
	if err != nil {
		return err
	}

	data, hasData, err := rec.PopString("data")
	if err != nil {
		return err
	}

	comment := rec.PopComment()

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'DATA' %s %s {%s`, id, name, comment))

		switch {
		case hasData:
			if hasFileName {
				return fmt.Errorf("DATA resource cannot have both fileName and data")
			}

			out.AddLine(data)
		case hasFileName:
			out.AddLine(EscapeString(fileName))
		default:
			return fmt.Errorf("DATA resource must have either fileName or data")
		}

		out.AddLine("}")

		return nil
	})
}

// ConvertDHLP emits a DHLP (dialog help anchor table) resource standalone
// -- the GDLG converter emits its own companion DLGH block directly, this
// path covers a DHLP authored on its own.
func ConvertDHLP(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	rec.Pop("localized") // no GRC equivalent

	comment := rec.PopComment()

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'DHLP' %s {%s`, id, comment))

		items, err := rec.RequireList("items")
		if err != nil {
			return err
		}

		for i, item := range items {
			if !item.IsObject() {
				return fmt.Errorf("items[%d]: expected an object", i)
			}

			irec := NewRecord(item)

			tooltip, err := requireEscapedString(irec, "tooltipStr")
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			anchor, err := irec.RequireString("anchorStr")
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			itemComment := irec.PopComment()

			out.AddLine(fmt.Sprintf("%s %s %s%s", ItemIndexComment(i), LJust(tooltip, DLGHTooltipWidth), anchor, itemComment))

			if err := irec.Done(); err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
		}

		out.AddLine("}")

		return nil
	})
}

// ConvertFILE emits a FILE resource: a name bound to an external file path.
func ConvertFILE(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	fileName, err := requireEscapedString(rec, "fileName")
	if err != nil {
		return err
	}

	comment := rec.PopComment()

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'FILE' %s %s {%s`, id, name, comment))
		out.AddLine("    " + fileName)
		out.AddLine("}")

		return nil
	})
}

// ConvertFTGP emits an FTGP (file-type group) resource: two groups of
// mime-id/mime-type mappings.
func ConvertFTGP(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	mime, err := rec.RequireString("mime")
	if err != nil {
		return err
	}

	description, err := requireEscapedString(rec, "description")
	if err != nil {
		return err
	}

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'FTGP' %s %s {`, id, EscapeString(mime)))
		out.AddLine(fmt.Sprintf("/* description */ %s", description))
		out.AddLine("{")

		if err := convertFTGPGroup(out, rec, "group1"); err != nil {
			return err
		}

		out.AddLine("{")

		if err := convertFTGPGroup(out, rec, "group2"); err != nil {
			return err
		}

		out.AddLine("}")

		return nil
	})
}

func convertFTGPGroup(out *Builder, rec *Record, key string) error {
	items, err := rec.RequireList(key)
	if err != nil {
		return err
	}

	for i, item := range items {
		if !item.IsObject() {
			return fmt.Errorf("%s[%d]: expected an object", key, i)
		}

		irec := NewRecord(item)

		mimeID, err := irec.RequireRaw("mimeId")
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i, err)
		}

		mimeType, err := irec.RequireString("mimeType")
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i, err)
		}

		itemComment := irec.PopComment()

		out.AddLine(fmt.Sprintf("        %s%s%s", mimeID, FormatCommentLeadingSpace(EscapeString(mimeType)), itemComment))

		if err := irec.Done(); err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i, err)
		}
	}

	out.AddLine("}")

	return nil
}

// ConvertFTYP emits an FTYP (file type) resource: mime metadata and a
// platform file-type tuple.
func ConvertFTYP(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	mimeType, err := requireEscapedString(rec, "mimeType")
	if err != nil {
		return err
	}

	comment := rec.PopComment()

	description, err := requireEscapedString(rec, "description")
	if err != nil {
		return err
	}

	fileExt, err := requireEscapedString(rec, "fileExtension")
	if err != nil {
		return err
	}

	creator, err := requireEscapedString(rec, "creator")
	if err != nil {
		return err
	}

	fileType, err := requireEscapedString(rec, "type")
	if err != nil {
		return err
	}

	iconID, err := rec.RequireRaw("iconId")
	if err != nil {
		return err
	}

	if iconID == "NoIcon" {
		iconID = "-1"
	} else {
		iconID = ConvertIconID(iconID)
	}

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'FTYP' %s %s {%s`, id, mimeType, comment))
		out.AddLine("    " + description)
		out.AddLine("    " + fileExt)
		out.AddLine("    " + creator)
		out.AddLine("    " + fileType)
		out.AddLine("    " + iconID)
		out.AddLine("}")

		return nil
	})
}

// ConvertGALR emits a GALR (alert dialog) resource.
func ConvertGALR(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	iconIDRaw, err := rec.RequireRaw("iconId")
	if err != nil {
		return err
	}

	iconID := ConvertIconID(iconIDRaw)

	name, err := popEscapedStringDefault(rec, "name", `""`)
	if err != nil {
		return err
	}

	comment := rec.PopComment()

	largeText, err := requireEscapedStringNoCondition(rec, "largeText")
	if err != nil {
		return err
	}

	smallText, err := requireEscapedStringNoCondition(rec, "smallText")
	if err != nil {
		return err
	}

	acceptButtonText, err := requireEscapedStringNoCondition(rec, "acceptButtonText")
	if err != nil {
		return err
	}

	cancelButtonText, err := requireEscapedStringNoCondition(rec, "cancelButtonText")
	if err != nil {
		return err
	}

	thirdButtonText, err := requireEscapedStringNoCondition(rec, "thirdButtonText")
	if err != nil {
		return err
	}

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'GALR' %s %s %s {%s`, id, iconID, name, comment))
		out.AddLine("    " + largeText)
		out.AddLine("    " + smallText)
		out.AddLine("    " + acceptButtonText)
		out.AddLine("    " + cancelButtonText)
		out.AddLine("    " + thirdButtonText)
		out.AddLine("}")

		return nil
	})
}

// requireEscapedStringNoCondition pops key and converts it, rejecting a
// nested `#condition` (GALR's inner texts don't support conditional
// compilation even though the resource itself does).
func requireEscapedStringNoCondition(rec *Record, key string) (string, error) {
	v, ok := rec.Pop(key)
	if !ok {
		return "", fmt.Errorf("%w: missing required field %q", ErrUnhandledJSONProperty, key)
	}

	if err := RequireNoCondition(v); err != nil {
		return "", err
	}

	return ConvertToEscapedString(v)
}

// ConvertMDID emits an MDID (module id) resource: two raw identifier
// values bound to a name.
func ConvertMDID(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	value1, err := rec.RequireString("value1")
	if err != nil {
		return err
	}

	value2, err := rec.RequireString("value2")
	if err != nil {
		return err
	}

	comment := rec.PopComment()

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'MDID' %s %s {%s`, id, name, comment))
		out.AddLine("    " + value1)
		out.AddLine("    " + value2)
		out.AddLine("}")

		return nil
	})
}

// ConvertSTRS emits an STR# (string table) resource.
func ConvertSTRS(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	comment := rec.PopComment()

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	rec.Pop("localized") // no GRC equivalent

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'STR#' %s %s {%s`, id, name, comment))

		items, err := rec.RequireList("items")
		if err != nil {
			return err
		}

		for i, item := range items {
			if !item.IsObject() {
				return fmt.Errorf("items[%d]: expected an object", i)
			}

			irec := NewRecord(item)

			itemID, err := irec.RequireRaw("#id")
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			err = withCondition(irec, out, func() error {
				text, err := requireEscapedString(irec, "text")
				if err != nil {
					return err
				}

				itemComment := irec.PopComment()

				out.AddLine(fmt.Sprintf("%s %s%s", FormatComment(fmt.Sprintf("[%3s]", itemID)), text, itemComment))

				return nil
			})
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			if err := irec.Done(); err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
		}

		out.AddLine("}")

		return nil
	})
}

// ConvertTEXT emits a TEXT resource: a STR#-shaped table of multi-line
// escaped text blocks. (No reference implementation of this converter was
// available; it's modeled directly on STR#, the closest sibling format.)
func ConvertTEXT(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	comment := rec.PopComment()

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	rec.Pop("localized")

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'TEXT' %s %s {%s`, id, name, comment))

		items, err := rec.RequireList("items")
		if err != nil {
			return err
		}

		for i, item := range items {
			if !item.IsObject() {
				return fmt.Errorf("items[%d]: expected an object", i)
			}

			irec := NewRecord(item)

			itemID, err := irec.RequireRaw("#id")
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			err = withCondition(irec, out, func() error {
				text, err := requireEscapedString(irec, "text")
				if err != nil {
					return err
				}

				itemComment := irec.PopComment()

				out.AddLine(fmt.Sprintf("%s %s%s", FormatComment(fmt.Sprintf("[%3s]", itemID)), text, itemComment))

				return nil
			})
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			if err := irec.Done(); err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
		}

		out.AddLine("}")

		return nil
	})
}

// ConvertGICN emits a GICN (icon group) resource: an indexed list of icon
// ids. (No reference implementation of this converter was available; it's
// modeled on STR#'s header-plus-item-list shape, substituting icon ids for
// escaped text.)
func ConvertGICN(out *Builder, rec *Record, _ int) error {
	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	comment := rec.PopComment()

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	rec.Pop("localized") // no GRC equivalent

	return withCondition(rec, out, func() error {
		out.AddLine(fmt.Sprintf(`'ICN#' %s %s {%s`, id, name, comment))

		items, err := rec.RequireList("items")
		if err != nil {
			return err
		}

		for i, item := range items {
			if !item.IsObject() {
				return fmt.Errorf("items[%d]: expected an object", i)
			}

			irec := NewRecord(item)

			itemID, err := irec.RequireRaw("#id")
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			iconID, err := irec.RequireRaw("iconId")
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}

			iconID = ConvertIconID(iconID)
			itemComment := irec.PopComment()

			out.AddLine(fmt.Sprintf("%s %s%s", FormatComment(fmt.Sprintf("[%3s]", itemID)), iconID, itemComment))

			if err := irec.Done(); err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
		}

		out.AddLine("}")

		return nil
	})
}
