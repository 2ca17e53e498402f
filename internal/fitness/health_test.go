package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMR(t *testing.T) {
	male := Profile{Age: 28, Weight: 69.1, Height: 175, Gender: "male"}
	assert.InDelta(t, 1649.75, BMR(male), 1e-9)

	female := Profile{Age: 30, Weight: 60, Height: 165, Gender: "female"}
	assert.InDelta(t, 1320.25, BMR(female), 1e-9)
}

func TestTDEE(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, 2557, TDEE(p))
}

func TestMacrosFor(t *testing.T) {
	m := MacrosFor(2557)
	assert.Equal(t, Macros{Carbs: 256, Protein: 192, Fat: 85}, m)

	zero := MacrosFor(0)
	assert.Equal(t, Macros{}, zero)
}
