package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML_MatchesEquivalentJSON(t *testing.T) {
	yamlDoc := `
name: Transacciones
item:
  - name: Create Transaccion
    request:
      method: POST
      header:
        - key: Content-Type
          value: application/json
      body:
        mode: raw
        raw: |-
          {
              "horas": 2
          }
      url:
        raw: "{{base_url}}/transaccion"
        host: ["{{base_url}}"]
        path: [transaccion, "1"]
    response: []
    enabled: true
    weight: 1.5
    retries: 3
    note: null
`
	jsonDoc := `{
  "name": "Transacciones",
  "item": [{
    "name": "Create Transaccion",
    "request": {
      "method": "POST",
      "header": [{"key": "Content-Type", "value": "application/json"}],
      "body": {"mode": "raw", "raw": "{\n    \"horas\": 2\n}"},
      "url": {"raw": "{{base_url}}/transaccion", "host": ["{{base_url}}"], "path": ["transaccion", "1"]}
    },
    "response": [],
    "enabled": true,
    "weight": 1.5,
    "retries": 3,
    "note": null
  }]
}`

	fromYAML, err := FromYAML([]byte(yamlDoc))
	require.NoError(t, err)
	fromJSON, err := Decode([]byte(jsonDoc))
	require.NoError(t, err)

	assert.True(t, fromYAML.Equal(fromJSON), "YAML and JSON trees differ")
}

func TestFromYAML_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Value
	}{
		{name: "quoted number stays string", in: `"1"`, want: String("1")},
		{name: "plain int", in: `42`, want: Number("42")},
		{name: "hex int", in: `0x1F`, want: Number("31")},
		{name: "leading dot float", in: `.5`, want: Number("0.5")},
		{name: "bool", in: `false`, want: Bool(false)},
		{name: "tilde null", in: `~`, want: Null()},
		{name: "empty document", in: ``, want: Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromYAML([]byte(tt.in))
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got kind %s", got.Kind())
		})
	}
}

func TestFromYAML_Aliases(t *testing.T) {
	got, err := FromYAML([]byte("base: &h [\"{{base_url}}\"]\ncopy: *h\n"))
	require.NoError(t, err)

	base, _ := got.Get("base")
	copied, _ := got.Get("copy")
	assert.True(t, base.Equal(copied))
}

func TestFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "infinity", in: `.inf`},
		{name: "not a number", in: `.nan`},
		{name: "complex key", in: "? [a, b]\n: value\n"},
		{name: "unclosed flow sequence", in: "a: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromYAML([]byte(tt.in))
			assert.Error(t, err)
		})
	}
}
