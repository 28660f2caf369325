package grc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphisoft/jsontogrc/grc"
)

func TestRecordDoneReportsResidualField(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{"#id":1,"unexpected":"oops"}`))
	require.NoError(t, err)

	rec := grc.NewRecord(doc)

	_, err = rec.RequireRaw("#id")
	require.NoError(t, err)

	err = rec.Done()
	require.Error(t, err)
	assert.ErrorIs(t, err, grc.ErrUnhandledJSONProperty)
	assert.Contains(t, err.Error(), "unexpected")
}

func TestRecordDoneCleanAfterFullConsumption(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{"#id":1,"name":"hi"}`))
	require.NoError(t, err)

	rec := grc.NewRecord(doc)

	_, err = rec.RequireRaw("#id")
	require.NoError(t, err)

	_, err = rec.RequireString("name")
	require.NoError(t, err)

	assert.NoError(t, rec.Done())
}

func TestRecordRequireStringMissing(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{}`))
	require.NoError(t, err)

	_, err = grc.NewRecord(doc).RequireString("name")
	require.Error(t, err)
	assert.ErrorIs(t, err, grc.ErrUnhandledJSONProperty)
}

func TestRecordPopConditionAndComment(t *testing.T) {
	t.Parallel()

	doc, err := grc.Decode([]byte(`{"#condition":"+WIN","#comment":"trailing note"}`))
	require.NoError(t, err)

	rec := grc.NewRecord(doc)

	cond, ok := rec.PopCondition()
	require.True(t, ok)
	assert.Equal(t, "+WIN", cond)

	comment := rec.PopComment()
	assert.Equal(t, " /* trailing note */", comment)

	assert.NoError(t, rec.Done())
}
