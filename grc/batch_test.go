package grc_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphisoft/jsontogrc/grc"
)

func TestConvertBatchPreservesOrderAndConvertsEachJob(t *testing.T) {
	t.Parallel()

	jobs := make([]grc.Job, 0, 8)

	for i := range 8 {
		doc, err := grc.Decode([]byte(fmt.Sprintf(
			`{"TEXT":[{"#id":%d,"name":"N%d","items":[{"#id":1,"text":"hi"}]}]}`, i, i)))
		require.NoError(t, err)

		jobs = append(jobs, grc.Job{
			InputPath: fmt.Sprintf("doc-%d.json", i),
			Document:  doc,
		})
	}

	results, err := grc.ConvertBatch(context.Background(), jobs, 29, nil)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, r := range results {
		assert.Equal(t, jobs[i].InputPath, r.Job.InputPath)
		assert.Contains(t, r.Text, fmt.Sprintf(`'TEXT' %d "N%d"`, i, i))
	}
}

func TestConvertBatchReturnsFirstErrorAcrossJobs(t *testing.T) {
	t.Parallel()

	goodDoc, err := grc.Decode([]byte(`{"TEXT":[{"#id":1,"name":"ok","items":[{"#id":1,"text":"hi"}]}]}`))
	require.NoError(t, err)

	badDoc, err := grc.Decode([]byte(`{"TEXT":[{"#id":1,"name":"bad"}]}`))
	require.NoError(t, err)

	jobs := []grc.Job{
		{InputPath: "good.json", Document: goodDoc},
		{InputPath: "bad.json", Document: badDoc},
	}

	_, err = grc.ConvertBatch(context.Background(), jobs, 29, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, grc.ErrUnhandledJSONProperty)
}
