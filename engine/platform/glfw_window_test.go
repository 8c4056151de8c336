package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/STBoyden/ptgui/engine/core"
)

func TestTranslateButton(t *testing.T) {
	b, ok := translateButton(glfw.MouseButtonLeft)
	assert.True(t, ok)
	assert.Equal(t, core.MouseLeft, b)

	_, ok = translateButton(glfw.MouseButton4)
	assert.False(t, ok)
}

func TestTranslateKeyAndMods(t *testing.T) {
	assert.Equal(t, core.KeyQ, translateKey(glfw.KeyQ))
	assert.Equal(t, core.KeyUnknown, translateKey(glfw.KeyZ))
	assert.Equal(t, core.ModShift|core.ModCtrl, translateMods(glfw.ModShift|glfw.ModControl))
	assert.Equal(t, core.ModNone, translateMods(0))
}
