package ui

import "lightsout/internal/core"

// WinMessage is centered over the grid once it is solved.
const WinMessage = "You won!"

// Frame carries what the overlay shows on top of the grid for one frame.
type Frame struct {
	State       core.State
	Width       int
	Height      int
	PromptLabel string
	PromptInput string
	Notice      string
}
