package collection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_SetKeepsPosition(t *testing.T) {
	v := Object(
		Member{Key: "a", Value: Number("1")},
		Member{Key: "b", Value: Number("2")},
	)

	v.Set("a", String("replaced"))
	v.Set("c", Bool(true))

	var keys []string
	for _, m := range v.Members() {
		keys = append(keys, m.Key)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("member order mismatch (-want +got):\n%s", diff)
	}

	a, _ := v.Get("a")
	s, ok := a.AsString()
	require.True(t, ok)
	assert.Equal(t, "replaced", s)
}

func TestValue_SetPanicsOnNonObject(t *testing.T) {
	v := Array()
	assert.Panics(t, func() { v.Set("a", Null()) })
}

func TestValue_Name(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   string
		wantOK bool
	}{
		{name: "named object", value: Object(Member{Key: "name", Value: String("Common")}), want: "Common", wantOK: true},
		{name: "numeric name", value: Object(Member{Key: "name", Value: Number("3")})},
		{name: "no name", value: Object(Member{Key: "item", Value: Array()})},
		{name: "not an object", value: String("Common")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Name()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_Equal(t *testing.T) {
	a := Object(Member{Key: "x", Value: Array(Number("1"), String("s"))})

	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(Object(Member{Key: "x", Value: Array(Number("1.0"), String("s"))})))
	assert.False(t, a.Equal(Object(Member{Key: "y", Value: Array(Number("1"), String("s"))})))
	assert.False(t, Null().Equal(Bool(false)))
}

func TestValue_CloneIsDeep(t *testing.T) {
	original := Object(Member{Key: "item", Value: Array(String("a"))})
	clone := original.Clone()

	clone.Set("extra", Null())
	item, _ := clone.Get("item")
	item.Append(String("b"))
	clone.Set("item", item)

	assert.Equal(t, 1, original.Len())
	got, _ := original.Get("item")
	assert.Equal(t, 1, got.Len())
}
