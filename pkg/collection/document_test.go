package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Shape(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: `{"info": {}, "item": []}`},
		{name: "array root", input: `[]`, wantErr: "expected object"},
		{name: "missing item", input: `{"info": {}}`, wantErr: `missing top-level "item"`},
		{name: "item not a list", input: `{"item": {}}`, wantErr: "expected array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDocument_SectionNames(t *testing.T) {
	doc, err := Parse([]byte(`{"item": [{"name": "Auth"}, {"item": []}, "stray", {"name": 7}, {"name": "Users"}]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Auth", "Users"}, doc.SectionNames())
	assert.True(t, doc.HasSection("Users"))
	assert.False(t, doc.HasSection("Common"))
	assert.Len(t, doc.Sections(), 5)
}

func TestDocument_AppendSectionKeepsOtherMembers(t *testing.T) {
	doc, err := Parse([]byte(`{"info": {"name": "API"}, "item": [{"name": "Auth"}], "variable": []}`))
	require.NoError(t, err)

	section := Object(Member{Key: "name", Value: String("Common")})
	doc.AppendSection(section)

	out, err := doc.Encode("")
	require.NoError(t, err)
	assert.Equal(t, `{"info":{"name":"API"},"item":[{"name":"Auth"},{"name":"Common"}],"variable":[]}`, string(out))
}

func TestDocument_AppendSectionCopies(t *testing.T) {
	first, err := Parse([]byte(`{"item": []}`))
	require.NoError(t, err)
	second, err := Parse([]byte(`{"item": []}`))
	require.NoError(t, err)

	section := Object(
		Member{Key: "name", Value: String("Common")},
		Member{Key: "item", Value: Array()},
	)
	first.AppendSection(section)
	second.AppendSection(section)

	// Mutating one document's copy must not leak into the other
	appended := first.Sections()[0]
	appended.Set("name", String("Changed"))
	first.Sections()[0] = appended

	assert.Equal(t, []string{"Changed"}, first.SectionNames())
	assert.Equal(t, []string{"Common"}, second.SectionNames())
}
