package hover

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// scriptStep is a single action in a pointer script.
type scriptStep struct {
	Action    string     `json:"action"`
	X         float64    `json:"x,omitempty"`
	Y         float64    `json:"y,omitempty"`
	FromX     float64    `json:"fromX,omitempty"`
	FromY     float64    `json:"fromY,omitempty"`
	ToX       float64    `json:"toX,omitempty"`
	ToY       float64    `json:"toY,omitempty"`
	Origin    [3]float64 `json:"origin,omitempty"`
	Direction [3]float64 `json:"direction,omitempty"`
	Frames    int        `json:"frames,omitempty"`
}

type pointerScript struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner feeds a scripted sequence of pointer frames into a Pointer for
// automated hover tests. Call Step once per tick before Pointer.Poll.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON pointer script:
//
//	{"steps": [
//	  {"action": "move", "x": 320, "y": 240},
//	  {"action": "wait", "frames": 3},
//	  {"action": "click", "x": 320, "y": 240},
//	  {"action": "sweep", "fromX": 0, "fromY": 240, "toX": 640, "toY": 240, "frames": 30},
//	  {"action": "ray", "origin": [0, 1, 5], "direction": [0, 0, -1]}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script pointerScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("hover: parse pointer script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("hover: parse pointer script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "click", "sweep", "wait":
		case "ray":
			if mgl64.Vec3(st.Direction).Len() == 0 {
				return nil, fmt.Errorf("hover: parse pointer script: step %d: zero ray direction", i)
			}
		default:
			return nil, fmt.Errorf("hover: parse pointer script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed and consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame, queuing injected events on p.
func (r *TestRunner) Step(p *Pointer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if p.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		p.InjectMove(st.X, st.Y)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "sweep":
		p.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "ray":
		p.InjectRay(Ray{Origin: mgl64.Vec3(st.Origin), Direction: mgl64.Vec3(st.Direction).Normalize()})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && p.Pending() == 0 {
		r.done = true
	}
}
