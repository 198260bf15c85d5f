package jsonoutput

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/file-renamer/go/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPlanKeepsSelectionOrder(t *testing.T) {
	dir := filepath.Join("/", "books")
	plan := &types.RenamePlan{
		Files: []*types.FileInfo{
			{OriginalPath: filepath.Join(dir, "z.txt")},
			{OriginalPath: filepath.Join(dir, "a.txt")},
		},
		Names: []string{"first", "second"},
	}

	output := FromPlan(plan, "*I{1}*", "2,1", dir)
	assert.Equal(t, "*I{1}*", output.Format)
	assert.Equal(t, "2,1", output.Selection)
	assert.Equal(t, []types.RenameOperation{
		{From: "z.txt", To: "first"},
		{From: "a.txt", To: "second"},
	}, output.Renames)
}

func TestToJSON(t *testing.T) {
	output := FromPlan(&types.RenamePlan{}, "*O*", "*", "/")
	jsonStr, err := ToJSON(output)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &decoded))
	assert.Equal(t, []any{}, decoded["renames"])
	assert.Equal(t, "*O*", decoded["format"])
}

func TestMakeRelativePath(t *testing.T) {
	dir := filepath.Join("/", "a")
	assert.Equal(t, "b/c.txt", makeRelativePath(filepath.Join(dir, "b", "c.txt"), dir))
	assert.Equal(t, "", makeRelativePath(dir, dir))
}
