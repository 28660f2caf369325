package grc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphisoft/jsontogrc/grc"
)

func TestMapPropertyUnknownValue(t *testing.T) {
	t.Parallel()

	_, err := grc.MapProperty("nonsense", map[string]string{"a": "A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, grc.ErrUnsupportedGDLGControlProperty)
}

func TestMapPropertyKnownValue(t *testing.T) {
	t.Parallel()

	got, err := grc.MapProperty("a", map[string]string{"a": "A", "b": "B"})
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestExtractStringFromBareString(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{"v": "plain"}`))
	require.NoError(t, err)

	got, err := grc.ExtractString(doc.Field("v"))
	require.NoError(t, err)
	assert.Equal(t, "plain", got)
}

func TestExtractStringFromTranslationForm(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{"v": {"str": "hi", "dictId": "x.y", "localized": true}}`))
	require.NoError(t, err)

	got, err := grc.ExtractString(doc.Field("v"))
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestExtractStringFromValueWrapper(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{"v": {"#value": "wrapped"}}`))
	require.NoError(t, err)

	got, err := grc.ExtractString(doc.Field("v"))
	require.NoError(t, err)
	assert.Equal(t, "wrapped", got)
}

func TestExtractStringNull(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{"v": null}`))
	require.NoError(t, err)

	got, err := grc.ExtractString(doc.Field("v"))
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
