package writers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vvforecast/internal/output"
)

func TestWriteDistribution_TextPretty(t *testing.T) {
	var buf bytes.Buffer
	d := output.ToAPIDistribution(3, 12)
	require.NoError(t, WriteDistribution(output.FormatText, &buf, d, Options{Header: true, Pretty: true}))
	s := buf.String()
	assert.True(t, strings.HasPrefix(s, output.DistributionTSVHeader+"\n"))
	assert.Contains(t, s, "# Poisson lambda=3.00")
	assert.Contains(t, s, "infected (k>=1) 95.02%")
}

func TestWriteDistribution_JSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDistribution(output.FormatJSONL, &buf, output.ToAPIDistribution(1, 4), Options{}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], `{"k":0,`))
}

func TestWriteSweep_TextHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSweep(output.FormatText, &buf, nil, Options{Header: true}))
	assert.Equal(t, output.SweepTSVHeader+"\n", buf.String())
}
