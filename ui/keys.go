package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game/types"
)

type binding struct {
	key int32
	cmd types.Command
}

// Checked in order, so a frame yields commands in a stable order.
var bindings = []binding{
	{rl.KeyW, types.CommandUp},
	{rl.KeyUp, types.CommandUp},
	{rl.KeyS, types.CommandDown},
	{rl.KeyDown, types.CommandDown},
	{rl.KeyA, types.CommandLeft},
	{rl.KeyLeft, types.CommandLeft},
	{rl.KeyD, types.CommandRight},
	{rl.KeyRight, types.CommandRight},
	{rl.KeyP, types.CommandTogglePause},
	{rl.KeySpace, types.CommandReset},
	{rl.KeyEscape, types.CommandQuit},
	{rl.KeyQ, types.CommandQuit},
}

// PollCommands returns the commands for keys pressed since the last frame.
func PollCommands() []types.Command {
	var cmds []types.Command
	for _, b := range bindings {
		if rl.IsKeyPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
