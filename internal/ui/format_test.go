package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFuncPassesTextThrough(t *testing.T) {
	f := colorFunc("red")
	assert.Contains(t, f("hello"), "hello")
}

func TestShowFunctionsDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		ShowHeader("Test")
		ShowSuccess("done")
		ShowStep(1, "step one")
		ShowError(assert.AnError)
	})
}
