package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberString_IntegralVsFractional(t *testing.T) {
	assert.Equal(t, "7", Number{Value: 7}.String())
	assert.Equal(t, "3.14", Number{Value: 3.14}.String())
	assert.Equal(t, "-2", Number{Value: -2}.String())
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(NilValue))
	assert.False(t, Truthy(False))
	assert.True(t, Truthy(True))
	assert.True(t, Truthy(Number{Value: 0}))
	assert.True(t, Truthy(String{Value: ""}))
}

func TestEqual_KindMismatchNeverEqual(t *testing.T) {
	assert.False(t, Equal(Number{Value: 0}, False))
	assert.False(t, Equal(String{Value: "1"}, Number{Value: 1}))
}

func TestEqual_NumberNaNNeverEqualToItself(t *testing.T) {
	nan := Number{Value: math.NaN()}
	assert.False(t, Equal(nan, nan))
}

func TestEqual_SameKindSameValue(t *testing.T) {
	assert.True(t, Equal(String{Value: "a"}, String{Value: "a"}))
	assert.True(t, Equal(Number{Value: 2}, Number{Value: 2}))
	assert.True(t, Equal(NilValue, NilValue))
}
