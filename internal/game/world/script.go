package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/arena/internal/engine/character"
	"github.com/Faultbox/arena/pkg/math"
)

// Script is a timed input timeline for headless runs. Steps play back to
// back; after the last step the input is empty.
type Script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptStep holds one input for a number of frames. Jump fires on the
// step's first frame only.
type ScriptStep struct {
	Frames  int     `yaml:"frames"`
	Forward bool    `yaml:"forward"`
	Back    bool    `yaml:"back"`
	Left    bool    `yaml:"left"`
	Right   bool    `yaml:"right"`
	Jump    bool    `yaml:"jump"`
	Look    float32 `yaml:"look"` // horizontal pointer delta per frame
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for i, step := range s.Steps {
		if step.Frames < 1 {
			return nil, fmt.Errorf("step %d: frames must be at least 1, got %d", i, step.Frames)
		}
	}
	return &s, nil
}

// Frames returns the total length of the script.
func (s *Script) Frames() int {
	n := 0
	for _, step := range s.Steps {
		n += step.Frames
	}
	return n
}

// InputAt returns the input for the given zero-based frame.
func (s *Script) InputAt(frame int) character.Input {
	if s == nil || frame < 0 {
		return character.Input{}
	}
	start := 0
	for _, step := range s.Steps {
		if frame < start+step.Frames {
			return step.input(frame == start)
		}
		start += step.Frames
	}
	return character.Input{}
}

func (st ScriptStep) input(first bool) character.Input {
	return character.Input{
		Forward:   st.Forward,
		Back:      st.Back,
		Left:      st.Left,
		Right:     st.Right,
		Jump:      st.Jump && first,
		Look:      st.Look != 0,
		LookDelta: math.Vec2{X: st.Look},
	}
}
