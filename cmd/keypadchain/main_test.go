package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/robokeys/chaincache"
	"github.com/katalvlaran/robokeys/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var example = filepath.Join("testdata", "example.txt")

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"BothParts", []string{"keypadchain", example},
			"[2 robots] The answer is: 126384\n[25 robots] The answer is: 154115708116294\n"},
		{"PartOne", []string{"keypadchain", "-n", "2", "-f", example},
			"The answer is: 126384\n"},
		{"PartTwoHumanized", []string{"keypadchain", "-p", "-H", "-w", "2", example},
			"The answer is: 154,115,708,116,294\n"},
		{"DirectHuman", []string{"keypadchain", "-n", "0", "-s", "4", example},
			"The answer is: 25392\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.NoError(t, run(tc.args, &stdout, &stderr))
			assert.Equal(t, tc.want, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_JSONVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"keypadchain", "-j", "-v", "-n", "2", example}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), `"total": 126384`)
	assert.Contains(t, stdout.String(), `"code": "029A"`)
	assert.Contains(t, stderr.String(), "read 5 codes")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"keypadchain"}, &stdout, &stderr)
	assert.ErrorIs(t, err, errNoInput)

	err = run([]string{"keypadchain", "-s", "3", example}, &stdout, &stderr)
	assert.ErrorIs(t, err, chaincache.ErrNotCached)

	err = run([]string{"keypadchain", "-n", "-4", example}, &stdout, &stderr)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	err = run([]string{"keypadchain", "-n", "two", example}, &stdout, &stderr)
	assert.Error(t, err)

	err = run([]string{"keypadchain", "-x", example}, &stdout, &stderr)
	assert.Error(t, err)

	err = run([]string{"keypadchain", filepath.Join("testdata", "missing.txt")}, &stdout, &stderr)
	assert.Error(t, err)

	assert.Empty(t, stdout.String())
}
