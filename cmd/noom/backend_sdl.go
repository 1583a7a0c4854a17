//go:build sdl

package main

import sdlrender "chosenoffset.com/noom/internal/render/sdl"

func init() {
	backends["sdl"] = sdlrender.NewBackend
}
