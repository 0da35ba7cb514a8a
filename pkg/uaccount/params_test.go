package uaccount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_SetReplacesInPlace(t *testing.T) {
	var p Params
	p.Set("Action", "CreateProject")
	p.Set("ProjectName", "a")
	p.Set("Action", "TerminateProject")

	assert.Equal(t, Params{
		{Key: "Action", Value: "TerminateProject"},
		{Key: "ProjectName", Value: "a"},
	}, p)
}

func TestParams_GetAndDel(t *testing.T) {
	p := NewParams(Param{Key: "a", Value: "1"}, Param{Key: "b", Value: "2"})

	v, ok := p.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	p.Del("a")
	_, ok = p.Get("a")
	assert.False(t, ok)
	assert.Len(t, p, 1)

	// Deleting a missing key is a no-op.
	p.Del("missing")
	assert.Len(t, p, 1)
}

func TestParams_Sorted(t *testing.T) {
	p := NewParams(
		Param{Key: "ProjectName", Value: "x"},
		Param{Key: "Action", Value: "CreateProject"},
		Param{Key: "PublicKey", Value: "pub"},
		Param{Key: "Limit", Value: "200"},
	)

	sorted := p.Sorted()

	var keys []string
	for _, pair := range sorted {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"Action", "Limit", "ProjectName", "PublicKey"}, keys)
	assert.Equal(t, "ProjectName", p[0].Key, "insertion order must be kept")
}

func TestParams_SortedIsByteOrder(t *testing.T) {
	// Uppercase sorts before lowercase in plain string ordering.
	p := NewParams(Param{Key: "a", Value: "1"}, Param{Key: "B", Value: "2"})
	assert.Equal(t, "B", p.Sorted()[0].Key)
}

func TestParams_Values(t *testing.T) {
	p := NewParams(
		Param{Key: "Action", Value: "CreateProject"},
		Param{Key: "ProjectName", Value: "a b&c"},
	)

	assert.Equal(t, "Action=CreateProject&ProjectName=a+b%26c", p.Values().Encode())
}
