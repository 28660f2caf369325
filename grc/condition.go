package grc

// withCondition pops a `#condition` key from rec (if present), wraps body in
// an `#if`/`#endif` bracket, and runs body to emit the bracketed lines.
// Resource and control converters call this once they've popped any fields
// they need before the condition check in the reference format.
func withCondition(rec *Record, out *Builder, body func() error) error {
	condition, has := rec.PopCondition()

	if has {
		line, err := ConditionToIfdef(condition)
		if err != nil {
			return err
		}

		out.AddLine(line)
	}

	if err := body(); err != nil {
		return err
	}

	if has {
		out.AddLine(ConditionEnd())
	}

	return nil
}
