package uictl_test

import (
	"testing"

	"github.com/alkime/selector/pkg/uictl"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, uictl.Wrap(3, 3))
	assert.Equal(t, 1, uictl.Wrap(4, 3))
	assert.Equal(t, 2, uictl.Wrap(-1, 3))
	assert.Equal(t, 0, uictl.Wrap(-3, 3))
	assert.Equal(t, 0, uictl.Wrap(5, 0), "zero count never panics")
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, uictl.Clamp(-4, 0, 2))
	assert.Equal(t, 2, uictl.Clamp(9, 0, 2))
	assert.Equal(t, 1, uictl.Clamp(1, 0, 2))
	assert.InDelta(t, 0.5, uictl.Clamp(0.5, 0.0, 1.0), 1e-9)
}
