package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags,omitempty"`
}

func TestRoundTrip(t *testing.T) {
	in := sample{Name: "trace", Count: 3, Tags: []string{"a", "b"}}

	s, err := ToString(in)
	require.NoError(t, err)
	assert.Contains(t, s, `"name":"trace"`)

	out, err := FromString[sample](s)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(sample{Name: "x"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"name\"")
}

func TestUnmarshalInvalid(t *testing.T) {
	var v sample
	assert.Error(t, Unmarshal([]byte("{not json"), &v))

	_, err := FromString[sample]("{")
	assert.Error(t, err)
}
