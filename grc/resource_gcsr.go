package grc

import "fmt"

// ConvertGCSR emits a GCSR (cursor) resource. GCSR doesn't support
// `#condition` or `#comment`.
func ConvertGCSR(out *Builder, rec *Record, _ int) error {
	if err := rec.RequireNoCondition(); err != nil {
		return err
	}

	id, err := rec.RequireRaw("#id")
	if err != nil {
		return err
	}

	name, err := requireEscapedString(rec, "name")
	if err != nil {
		return err
	}

	hotspot, err := rec.RequireObject("hotspot")
	if err != nil {
		return err
	}

	x, err := hotspot.RequireInt("x")
	if err != nil {
		return err
	}

	y, err := hotspot.RequireInt("y")
	if err != nil {
		return err
	}

	if err := hotspot.Done(); err != nil {
		return fmt.Errorf("hotspot: %w", err)
	}

	out.AddLine(fmt.Sprintf(`'GCSR' %s %s {`, id, name))
	out.AddLine(fmt.Sprintf("    %s %s", RJust(fmt.Sprint(x), 4), RJust(fmt.Sprint(y), 4)))
	out.AddLine("}")

	return nil
}
