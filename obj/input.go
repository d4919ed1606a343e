package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the polled input state for one tick.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float32
	// RestartPressed is true on the frame the restart key is pressed.
	RestartPressed bool
	// QuitPressed is true on the frame the quit key is pressed.
	QuitPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and gamepad.
func (i *Input) Update() {
	var moveX float32
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}

	restart := inpututil.IsKeyJustPressed(ebiten.KeyR)
	quit := inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	// Gamepad: left stick X or d-pad, primary button to restart.
	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			moveX = -1
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			moveX = 1
		}
		restart = restart || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}

	i.MoveX = moveX
	i.RestartPressed = restart
	i.QuitPressed = quit
}
