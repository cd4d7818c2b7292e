package main

import (
	"fmt"

	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/scene"
)

// loadScene reads and compiles the scene at path, wrapping both steps'
// errors with which stage failed.
func loadScene(path string) (*bsp.CollisionBSP, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading scene: %w", err)
	}
	b, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("compiling scene: %w", err)
	}
	return b, nil
}
