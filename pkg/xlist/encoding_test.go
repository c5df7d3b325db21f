package xlist

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Of("a", "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))

	data, err = json.Marshal(New[int]())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	l := Of(9)
	require.NoError(t, json.Unmarshal([]byte(`[1,2,3]`), l))
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	checkChain(t, l)

	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), l))
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice(), "failed decode leaves the list alone")
}

func TestJSON_Nested(t *testing.T) {
	t.Parallel()

	res := Combine(Of(Of(1, 2), Of(3)))
	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,3],[2,3]]`, string(data))

	var back List[*List[int]]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(res))
}

func TestYAML(t *testing.T) {
	t.Parallel()

	type doc struct {
		Words *List[string] `yaml:"words"`
	}

	out, err := yaml.Marshal(doc{Words: Of("the", "fox")})
	require.NoError(t, err)
	assert.Equal(t, "words:\n    - the\n    - fox\n", string(out))

	var back doc
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.NotNil(t, back.Words)
	assert.Equal(t, []string{"the", "fox"}, back.Words.ToSlice())
}

func TestUnsupported(t *testing.T) {
	t.Parallel()

	l := Of(1, 2, 3)
	var errs []error

	_, err := l.RetainAll(l.All())
	errs = append(errs, err)
	_, err = l.ContainsAll(l.All())
	errs = append(errs, err)
	_, err = l.InsertAllAt(0, l.All())
	errs = append(errs, err)
	errs = append(errs, l.Clear())
	idx, err := l.IndexOf(2)
	assert.Equal(t, -1, idx)
	errs = append(errs, err)
	_, err = l.LastIndexOf(2)
	errs = append(errs, err)
	_, err = l.Backward()
	errs = append(errs, err)
	_, err = l.SubList(0, 1)
	errs = append(errs, err)

	for _, err := range errs {
		assert.ErrorIs(t, err, errors.ErrUnsupported)
		var ue *UnsupportedError
		assert.ErrorAs(t, err, &ue)
	}
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}
