package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValString(t *testing.T) {
	assert.Equal(t, "hello", StringVal("hello").String())
	assert.Equal(t, "42", CountVal(42).String())

	var v *Val
	assert.Equal(t, "<nil>", v.String())
}

func TestValListString(t *testing.T) {
	assert.Equal(t, "[]", ValList{}.String())
	assert.Equal(t, "[a, 7]", ValList{StringVal("a"), CountVal(7)}.String())
}

func TestValConstructors(t *testing.T) {
	s := StringVal("x")
	assert.Equal(t, "string", s.Type)
	assert.Equal(t, "x", s.Data)

	c := CountVal(9)
	assert.Equal(t, "count", c.Type)
	assert.Equal(t, uint64(9), c.Data)
}
