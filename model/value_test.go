package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
)

func TestValue_RoundTripKeepsOrderAndNumbers(t *testing.T) {
	in := `{"z":1,"a":[true,null,"x"],"n":21.50,"big":12345678901234567890}`
	v, err := model.Parse([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, model.KindObject, v.Kind())
	assert.Equal(t, []string{"z", "a", "n", "big"}, v.Keys())
	assert.Equal(t, in, v.String())
}

func TestValue_ParseRejectsTrailingData(t *testing.T) {
	_, err := model.Parse([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)

	_, err = model.Parse([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestValue_Accessors(t *testing.T) {
	v := model.MustParse(`{"location":{"latitude":48.1,"name":"office"},"on":true,"tags":["a","b"]}`)

	lat, ok := v.Lookup("location", "latitude")
	require.True(t, ok)
	f, ok := lat.Float64()
	require.True(t, ok)
	assert.Equal(t, 48.1, f)

	name, _ := v.Lookup("location", "name")
	s, ok := name.StringValue()
	assert.True(t, ok)
	assert.Equal(t, "office", s)

	on, _ := v.Get("on")
	b, ok := on.BoolValue()
	assert.True(t, ok)
	assert.True(t, b)

	tags, _ := v.Get("tags")
	assert.Equal(t, 2, tags.Len())
	assert.Equal(t, model.String("b"), tags.Items()[1])

	_, ok = v.Lookup("location", "missing")
	assert.False(t, ok)
	_, ok = v.Lookup("on", "deeper")
	assert.False(t, ok)
}

func TestValue_SetAndDelete(t *testing.T) {
	var v model.Value
	assert.True(t, v.IsNull())

	v.Set("b", model.Int(1))
	v.Set("a", model.Number(2.5))
	v.Set("b", model.String("replaced"))
	assert.Equal(t, `{"b":"replaced","a":2.5}`, v.String())

	assert.True(t, v.Delete("b"))
	assert.False(t, v.Delete("b"))
	assert.Equal(t, `{"a":2.5}`, v.String())

	arr := model.Array(model.Int(1))
	arr.Set("x", model.Null())
	assert.Equal(t, `[1]`, arr.String())
}

func TestValue_MutatingCopyLeavesOriginal(t *testing.T) {
	original := model.MustParse(`{"a":1,"b":2,"c":3}`)

	deleted := original
	assert.True(t, deleted.Delete("a"))
	assert.Equal(t, `{"b":2,"c":3}`, deleted.String())
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, original.String())

	replaced := original
	replaced.Set("b", model.String("x"))
	replaced.Set("d", model.Bool(true))
	assert.Equal(t, `{"a":1,"b":"x","c":3,"d":true}`, replaced.String())
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, original.String())
}

func TestValue_Equal(t *testing.T) {
	a := model.MustParse(`{"x":1.0,"y":[1,2]}`)
	b := model.MustParse(`{"y":[1,2],"x":1}`)
	assert.True(t, a.Equal(b))

	c := model.MustParse(`{"x":1,"y":[2,1]}`)
	assert.False(t, a.Equal(c))
	assert.False(t, model.Null().Equal(model.Bool(false)))
}

func TestValue_EmbeddedInStruct(t *testing.T) {
	type holder struct {
		Value *model.Value `json:"value,omitempty"`
	}
	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"value":{"k":[1,{"n":null}]}}`), &h))
	require.NotNil(t, h.Value)

	out, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":{"k":[1,{"n":null}]}}`, string(out))
}
