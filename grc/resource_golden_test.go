package grc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphisoft/jsontogrc/grc"
)

func TestConvertTEXTGolden(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{
  "TEXT": [
    {"#id": 1000, "name": "Greeting", "items": [{"#id": 1, "text": "Hello"}]}
  ]
}`))
	require.NoError(t, err)

	got, err := grc.Convert(doc, 29, nil)
	require.NoError(t, err)

	assertGolden(t, "testdata/text_simple.grc", got)
}
