package report

import (
	"testing"

	"github.com/blackcoderx/postman-merge/pkg/collection"
	"github.com/blackcoderx/postman-merge/pkg/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetsMarkdown(t *testing.T) {
	var sets []*sections.Set
	for _, name := range sections.Names() {
		set, err := sections.Load(name)
		require.NoError(t, err)
		sets = append(sets, set)
	}

	md, err := SetsMarkdown(sets)
	require.NoError(t, err)

	for _, want := range []string{
		"# Section sets",
		"## common",
		"## modules",
		"### Common",
		"### Transacciones",
		"### Valoraciones",
		"### Mensajes",
		"| GET | Get Provincias - Obtener Provincias | `{{base_url}}/getProvincias` |",
	} {
		assert.Contains(t, md, want)
	}
}

func TestCollectionMarkdown(t *testing.T) {
	doc, err := collection.Parse([]byte(`{
		"info": {"name": "Proyecto DAW API"},
		"item": [
			{
				"name": "Common",
				"item": [
					{"name": "Ping", "request": {"method": "GET", "url": {"raw": "{{base_url}}/ping"}}},
					{"name": "A|B", "request": {"method": "POST", "url": {"raw": "{{base_url}}/a"}}}
				]
			},
			{"name": "Empty", "item": []},
			{"item": []},
			{"name": "Broken", "item": "not a list"}
		],
		"variable": [{"key": "base_url", "value": "http://localhost:8000/api"}]
	}`))
	require.NoError(t, err)

	md := CollectionMarkdown("/tmp/api.json", doc)

	for _, want := range []string{
		"# Proyecto DAW API",
		"`/tmp/api.json`, 4 sections",
		"| GET | Ping | `http://localhost:8000/api/ping` |",
		`| POST | A\|B | ` + "`http://localhost:8000/api/a`" + ` |`,
		"### Empty\n\n_no requests_",
		"### (unnamed section 3)",
		"### Broken\n\n_not a folder:",
	} {
		assert.Contains(t, md, want)
	}
}

func TestCollectionMarkdown_TitleFallsBackToFileName(t *testing.T) {
	doc, err := collection.Parse([]byte(`{"item": []}`))
	require.NoError(t, err)

	md := CollectionMarkdown("/tmp/api.postman_collection.json", doc)
	assert.Contains(t, md, "# api.postman_collection.json\n")
}
