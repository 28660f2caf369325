package xliff

import (
	"strings"

	"github.com/graphisoft/jsontogrc/grc"
)

// Translate walks doc depth-first and, for every object carrying both
// `dictId` and `str`, replaces `str`'s text with the catalog's translation
// for that id -- preserving the original value's leading and trailing
// whitespace runs. An id absent from cat leaves the value unchanged.
// Literal `\n` sequences in the translated text become real newlines.
func Translate(doc *grc.Node, cat Catalog) {
	if doc == nil {
		return
	}

	if doc.IsObject() {
		if doc.Has("dictId") && doc.Has("str") {
			translateOne(doc, cat)
		}

		for _, k := range doc.Keys() {
			Translate(doc.Field(k), cat)
		}

		return
	}

	if doc.IsArray() {
		for _, item := range doc.Items {
			Translate(item, cat)
		}
	}
}

func translateOne(n *grc.Node, cat Catalog) {
	strNode := n.Field("str")
	dictIDNode := n.Field("dictId")

	if strNode == nil || dictIDNode == nil || strNode.Kind != grc.KindString {
		return
	}

	translated, ok := cat[dictIDNode.Str]
	if !ok {
		return
	}

	leading, trailing := splitWhitespace(strNode.Str)
	strNode.Str = leading + strings.ReplaceAll(translated, `\n`, "\n") + trailing
}

// splitWhitespace splits s into its leading and trailing whitespace runs.
// An all-whitespace s attributes its entire content to the leading run.
func splitWhitespace(s string) (leading, trailing string) {
	if strings.TrimSpace(s) == "" {
		return s, ""
	}

	const cutset = " \t\n\r\f\v"

	leadLen := len(s) - len(strings.TrimLeft(s, cutset))
	trailLen := len(s) - len(strings.TrimRight(s, cutset))

	return s[:leadLen], s[len(s)-trailLen:]
}
