// Package xliff parses XLIFF 1.2 translation catalogs and applies them to a
// decoded GRC document, substituting dictId-tagged strings while preserving
// the surrounding whitespace of the value being replaced.
package xliff

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Catalog maps a translation unit id (dictId) to its resolved text.
type Catalog map[string]string

// usableTargetStates lists the `state` attribute values whose `<target>`
// text is trusted over `<source>`.
var usableTargetStates = map[string]bool{
	"final":                true,
	"translated":           true,
	"signed-off":           true,
	"x-machine-translated": true,
}

type xliffDocument struct {
	XMLName xml.Name    `xml:"xliff"`
	Files   []xliffFile `xml:"file"`
}

type xliffFile struct {
	Body xliffBody `xml:"body"`
}

type xliffBody struct {
	TransUnits []xliffTransUnit `xml:"trans-unit"`
}

type xliffTransUnit struct {
	ID     string      `xml:"id,attr"`
	Source string      `xml:"source"`
	Target xliffTarget `xml:"target"`
}

type xliffTarget struct {
	State string `xml:"state,attr"`
	Text  string `xml:",chardata"`
}

// Parse reads an XLIFF 1.2 document and returns a [Catalog] of trans-unit
// id to usable text: the `<target>` text when its `state` attribute marks
// it usable, else the `<source>` text.
//
// encoding/xml's namespace-agnostic element matching is relied on here --
// the document is expected to declare the `urn:oasis:names:tc:xliff:document:1.2`
// default namespace, but the decoder matches local element names
// regardless of prefix or default-namespace declaration.
func Parse(r io.Reader) (Catalog, error) {
	var doc xliffDocument

	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing XLIFF document: %w", err)
	}

	cat := Catalog{}

	for _, f := range doc.Files {
		for _, tu := range f.Body.TransUnits {
			text := tu.Source

			if usableTargetStates[tu.Target.State] && strings.TrimSpace(tu.Target.Text) != "" {
				text = tu.Target.Text
			}

			cat[tu.ID] = text
		}
	}

	return cat, nil
}

// Merge returns the union of parent and child, with child's entries
// winning on id collision.
func Merge(parent, child Catalog) Catalog {
	merged := make(Catalog, len(parent)+len(child))

	for id, text := range parent {
		merged[id] = text
	}

	for id, text := range child {
		merged[id] = text
	}

	return merged
}
