// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package searchindex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIndex = `{
  "docnames": ["sections/api/apidocs/solids", "sections/api/apidocs/pipeline"],
  "objects": {
    "dagster": {
      "solid": [0, 1, 1, ""],
      "SolidDefinition": [0, 0, 1, ""],
      "execute_pipeline": [1, 1, 1, "dagster.execute_pipeline"]
    },
    "dagster.utils": {
      "file_relative_path": [1, 1, null, ""]
    }
  },
  "objnames": {"0": ["py", "class", "Python class"], "1": ["py", "function", "Python function"]},
  "titles": ["Solids", "Pipelines"]
}`

func TestParse(t *testing.T) {
	idx, err := Parse([]byte(sampleIndex))
	require.NoError(t, err)

	assert.Equal(t, []string{"sections/api/apidocs/solids", "sections/api/apidocs/pipeline"}, idx.Docnames)
	require.Len(t, idx.Modules, 2)

	assert.Equal(t, "dagster", idx.Modules[0].Name)
	var names []string
	for _, o := range idx.Modules[0].Objects {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"solid", "SolidDefinition", "execute_pipeline"}, names, "source order is kept")

	exec := idx.Modules[0].Objects[2].Entry
	assert.Equal(t, 1, exec.DocIndex)
	assert.Equal(t, 1, exec.TypeIndex)
	assert.Equal(t, "dagster.execute_pipeline", exec.Alias)

	assert.Equal(t, "dagster.utils", idx.Modules[1].Name)
	assert.Equal(t, "null", string(idx.Modules[1].Objects[0].Entry.Priority))
	assert.Equal(t, 4, idx.ObjectCount())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed", data: `{"objects":`},
		{name: "module not an object", data: `{"objects":{"pkg":[1,2]}}`},
		{name: "short tuple", data: `{"objects":{"pkg":{"Obj":[0,1]}}}`},
		{name: "string docname index", data: `{"objects":{"pkg":{"Obj":["a",1,null,""]}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestParse_NoObjects(t *testing.T) {
	idx, err := Parse([]byte(`{"docnames":["a"]}`))
	require.NoError(t, err)
	assert.Empty(t, idx.Modules)
	assert.Zero(t, idx.ObjectCount())
}

func TestLookups(t *testing.T) {
	idx, err := Parse([]byte(sampleIndex))
	require.NoError(t, err)

	doc, err := idx.Docname(1)
	require.NoError(t, err)
	assert.Equal(t, "sections/api/apidocs/pipeline", doc)

	_, err = idx.Docname(5)
	assert.Error(t, err)
	_, err = idx.Docname(-1)
	assert.Error(t, err)

	typ, err := idx.TypeName(0)
	require.NoError(t, err)
	assert.Equal(t, "class", typ)

	_, err = idx.TypeName(9)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchindex.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleIndex), 0o644))

	idx, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, idx.Modules, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
