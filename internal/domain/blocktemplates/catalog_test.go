package blocktemplates

import (
	"encoding/json"
	"testing"

	"amma-cms/internal/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDeclarationOrder(t *testing.T) {
	summaries := List()
	require.Len(t, summaries, 6)

	keys := make([]string, 0, len(summaries))
	for _, s := range summaries {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{
		"outdoor_advertising",
		"environmental_health",
		"waste_management",
		"3_step_process",
		"requirements_list",
		"fees_table",
	}, keys)

	// Stable across calls.
	again := List()
	assert.Equal(t, summaries, again)
}

func TestGetUnknownKey(t *testing.T) {
	_, ok := Get("no_such_template")
	assert.False(t, ok)
}

func TestFeesTableTemplate(t *testing.T) {
	tmpl, ok := Get("fees_table")
	require.True(t, ok)
	require.Len(t, tmpl.Blocks, 1)

	block := tmpl.Blocks[0]
	assert.Equal(t, "table", block.BlockType)

	var table services.TableData
	require.NoError(t, json.Unmarshal(block.Data, &table))
	assert.Equal(t, []string{"Service", "Fee (GHS)", "Processing Time"}, table.Headers)
	assert.Len(t, table.Rows, 3)
	for _, row := range table.Rows {
		assert.Len(t, row, len(table.Headers))
	}
}

func TestCatalogBlocksStartValid(t *testing.T) {
	for _, s := range List() {
		tmpl, ok := Get(s.Key)
		require.True(t, ok, s.Key)
		require.NotEmpty(t, tmpl.Blocks, s.Key)

		for i, b := range tmpl.Blocks {
			n := b.Normalize()
			// Template bodies are hand-written; normalizing must not change them.
			assert.Equal(t, b.BlockType, n.BlockType, "%s block %d", s.Key, i)
			assert.True(t, json.Valid(n.Data), "%s block %d", s.Key, i)
		}
	}
}
