package report_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/robokeys/complexity"
	"github.com/katalvlaran/robokeys/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePart() complexity.Report {
	return complexity.Report{
		ChainLength: 2,
		Scope:       6,
		Results:     []complexity.Result{{Code: "029A", Presses: 68, Value: 29, Complexity: 1972}},
		Total:       1972,
	}
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, report.Text, f)

	f, err = report.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, report.JSON, f)

	_, err = report.ParseFormat("yaml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, []complexity.Report{samplePart()}, report.Options{Humanize: true}))
	assert.Equal(t, "The answer is: 1,972\n", buf.String())

	deep := samplePart()
	deep.ChainLength = 25
	deep.Total = 154115708116294

	buf.Reset()
	require.NoError(t, report.Write(&buf, []complexity.Report{samplePart(), deep}, report.Options{}))
	assert.Equal(t, "[2 robots] The answer is: 1972\n[25 robots] The answer is: 154115708116294\n", buf.String())
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, []complexity.Report{samplePart()}, report.Options{Format: report.JSON}))
	assert.JSONEq(t, `{"parts":[{"chain_length":2,"scope":6,"total":1972,
		"codes":[{"code":"029A","presses":68,"value":29,"complexity":1972}]}]}`, buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := report.Write(&bytes.Buffer{}, nil, report.Options{Format: report.Format(9)})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "126384", report.Number(126384, false))
	assert.Equal(t, "126,384", report.Number(126384, true))
	assert.Equal(t, "18,446,744,073,709,551,615", report.Number(math.MaxUint64, true))
}
