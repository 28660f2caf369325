package grc

import "fmt"

// converterFunc converts a single resource object, writing its GRC block(s)
// into out.
type converterFunc func(out *Builder, rec *Record, acVersion int) error

var resourceConverters = map[string]converterFunc{
	"ACNF": ConvertACNF,
	"ACP0": ConvertACP0,
	"CMND": ConvertCMND,
	"DATA": ConvertDATA,
	"DHLP": ConvertDHLP,
	"FILE": ConvertFILE,
	"FTGP": ConvertFTGP,
	"FTYP": ConvertFTYP,
	"GALR": ConvertGALR,
	"GCSR": ConvertGCSR,
	"GDLG": ConvertGDLG,
	"GICN": ConvertGICN,
	"MDID": ConvertMDID,
	"STRS": ConvertSTRS,
	"TEXT": ConvertTEXT,
}

// Convert renders an entire decoded document to GRC text for the given
// target Archicad version. Top-level tags named in ignoredResourceTypes
// are skipped entirely.
func Convert(doc *Node, acVersion int, ignoredResourceTypes []string) (string, error) {
	ignored := make(map[string]bool, len(ignoredResourceTypes))
	for _, t := range ignoredResourceTypes {
		ignored[t] = true
	}

	out := &Builder{}

	out.AddLine(`#include "DGDefs.h"`)

	if doc.Has("MDID") {
		out.AddLine(`#include "MDIDs_modules.h"`)
	}

	out.Blank()

	if err := convertMacroDictionary(out, doc); err != nil {
		return "", err
	}

	for _, tag := range doc.Keys() {
		if tag == "macroDictionary" || ignored[tag] {
			continue
		}

		resources := doc.Field(tag)
		if !resources.IsArray() {
			return "", fmt.Errorf("tag %q: expected an array of resources", tag)
		}

		converter, ok := resourceConverters[tag]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedResourceType, tag)
		}

		for i, resource := range resources.Items {
			if !resource.IsObject() {
				return "", fmt.Errorf("tag %q item %d: expected an object", tag, i)
			}

			rec := NewRecord(resource)

			if err := converter(out, rec, acVersion); err != nil {
				return "", fmt.Errorf("%s[%d]: %w", tag, i, err)
			}

			if err := rec.Done(); err != nil {
				return "", fmt.Errorf("%s[%d]: %w", tag, i, err)
			}

			out.Blank()
		}
	}

	return out.String(), nil
}

func convertMacroDictionary(out *Builder, doc *Node) error {
	macros := doc.Field("macroDictionary")
	if macros == nil {
		return nil
	}

	if !macros.IsArray() {
		return fmt.Errorf("macroDictionary: expected an array")
	}

	for i, m := range macros.Items {
		if !m.IsObject() {
			return fmt.Errorf("macroDictionary[%d]: expected an object", i)
		}

		// The macro dictionary is peeked, not consumed: it has no
		// companion exhaustion check in the reference format.
		condition := m.Field("#condition")
		hasCondition := condition != nil && condition.Kind == KindString

		if hasCondition {
			line, err := ConditionToIfdef(condition.Str)
			if err != nil {
				return fmt.Errorf("macroDictionary[%d]: %w", i, err)
			}

			out.AddLine(line)
		}

		name, err := nodeScalarString(m.Field("macro"))
		if err != nil {
			return fmt.Errorf("macroDictionary[%d]: macro: %w", i, err)
		}

		value, err := nodeScalarString(m.Field("value"))
		if err != nil {
			return fmt.Errorf("macroDictionary[%d]: value: %w", i, err)
		}

		out.AddLine(fmt.Sprintf("#define %s %s", LJust(name, MacroNameWidth), RJust(value, MacroValueWidth)))

		if hasCondition {
			out.AddLine(ConditionEnd())
		}
	}

	out.Blank()

	return nil
}
