package richtext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/cdstream/pkg/builder"
	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/table"
)

func sample(t *testing.T) []byte {
	t.Helper()
	b := builder.New()
	require.NoError(t, b.AddText("Quarterly report\nDraft", builder.TextOptions{SplitLines: true}))
	require.NoError(t, b.BeginTable(builder.TableOptions{}))
	for _, c := range []struct {
		row, col int
		text     string
	}{{0, 0, "Region"}, {0, 1, "Total"}, {1, 0, "Nord"}, {1, 1, "12 €"}} {
		require.NoError(t, b.Cell(c.row, c.col))
		require.NoError(t, b.AddText(c.text, builder.TextOptions{}))
	}
	require.NoError(t, b.EndTable())
	require.NoError(t, b.AddText("Appendix", builder.TextOptions{}))
	require.NoError(t, b.AddFile("data.csv", bytes.Repeat([]byte("1,2\n"), 3000)))
	data, err := b.Finalize()
	require.NoError(t, err)
	return data
}

func TestPlainText(t *testing.T) {
	stream, err := Decode(sample(t), cd.KindComposite)
	require.NoError(t, err)

	assert.Equal(t, "Quarterly report\nDraft\nRegion\tTotal\nNord\t12 €\nAppendix", PlainText(stream))
	assert.Empty(t, PlainText(nil))
}

func TestEncodeReproducesInput(t *testing.T) {
	data := sample(t)
	stream, err := Decode(data, cd.KindComposite)
	require.NoError(t, err)

	out, err := Encode(stream)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestWalkAndTables(t *testing.T) {
	data := sample(t)

	var cells []table.Cell
	require.NoError(t, Walk(data, cd.KindComposite, table.Funcs{
		OnCell: func(c table.Cell) error {
			cells = append(cells, c)
			return nil
		},
	}))
	assert.Len(t, cells, 4)

	tables, err := Tables(data, cd.KindComposite)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Len(t, tables[0].Rows, 2)
	assert.Equal(t, 2, tables[0].Columns())

	err = Walk(data, cd.KindAction, table.Funcs{})
	assert.ErrorIs(t, err, cd.ErrUsage)
}

func TestResources(t *testing.T) {
	stream, err := Decode(sample(t), cd.KindComposite)
	require.NoError(t, err)

	resources, err := Resources(stream)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "data.csv", resources[0].Name())
	assert.Len(t, resources[0].Data, 12000)
}

func TestSummarize(t *testing.T) {
	data := sample(t)

	s, err := Summarize(data, cd.KindComposite)
	require.NoError(t, err)
	assert.Equal(t, "composite", s.Kind)
	assert.Equal(t, len(data), s.Bytes)
	assert.Equal(t, 1, s.Tables)
	assert.Equal(t, 1, s.Resources)
	assert.Zero(t, s.Unknown)
	assert.Equal(t, 4, s.Names["CDTABLECELL"])
	assert.Equal(t, 2, s.Names["CDFILESEGMENT"])
	assert.Equal(t, []string{"CDPARAGRAPH", "CDTEXT"}, s.TopNames()[:2])

	total := 0
	for _, n := range s.Names {
		total += n
	}
	assert.Equal(t, s.Records, total)
}

func TestSummarize_PartialOnError(t *testing.T) {
	data := sample(t)
	truncated := data[:len(data)-100]

	s, err := Summarize(truncated, cd.KindComposite)
	assert.ErrorIs(t, err, cd.ErrTruncatedRecord)
	assert.Positive(t, s.Records)
	assert.Zero(t, s.Tables)
}
