package grc

import "fmt"

// ConvertACNF emits an ACNF (Add-On configuration) resource. ACNF doesn't
// support `#condition` or `#comment` at all.
func ConvertACNF(out *Builder, rec *Record, _ int) error {
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

	version, err := rec.RequireRaw("version")
	if err != nil {
		return err
	}

	platform, err := rec.RequireRaw("platform")
	if err != nil {
		return err
	}

	flag, err := rec.RequireRaw("flag")
	if err != nil {
		return err
	}

	method, err := rec.RequireRaw("method")
	if err != nil {
		return err
	}

	subMethod, err := rec.RequireRaw("subMethod")
	if err != nil {
		return err
	}

	methodVersion, err := rec.RequireRaw("methodVersion")
	if err != nil {
		return err
	}

	methodIndex, err := rec.RequireRaw("methodIndex")
	if err != nil {
		return err
	}

	functionItems, err := rec.RequireList("function")
	if err != nil {
		return err
	}

	functionTokens := make([]string, 0, len(functionItems))

	for _, item := range functionItems {
		tok, err := nodeScalarString(item)
		if err != nil {
			return fmt.Errorf("function: %w", err)
		}

		functionTokens = append(functionTokens, tok)
	}

	function := joinWith(functionTokens, " + ")

	modulName, err := requireEscapedString(rec, "modulName")
	if err != nil {
		return err
	}

	out.AddLine(fmt.Sprintf(`'ACNF' %s %s {`, id, name))
	out.AddLine("    " + version)
	out.AddLine("    " + platform)
	out.AddLine("    " + flag)
	out.AddLine("    " + method)
	out.AddLine("    " + subMethod)
	out.AddLine("    " + methodVersion)
	out.AddLine("    " + methodIndex)
	out.AddLine("    " + function)
	out.AddLine("    " + modulName)
	out.AddLine("}")

	return nil
}

func joinWith(items []string, sep string) string {
	result := ""

	for i, s := range items {
		if i > 0 {
			result += sep
		}

		result += s
	}

	return result
}
