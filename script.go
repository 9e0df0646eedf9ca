package chisel

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// scriptStep represents a single action in a run script.
type scriptStep struct {
	Action string `json:"action"`
	Frames int    `json:"frames,omitempty"`
	Label  string `json:"label,omitempty"`
}

// runScript is the top-level JSON structure for a run script.
type runScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences frame advances, grid dumps, and assertions over
// a simulation for deterministic headless runs: replay a recorded
// scenario with a fixed seed and check it against expectations without a
// renderer.
//
// Supported actions: "advance" (run Frames frames), "advanceUntilComplete"
// (run up to Frames frames, stopping early once the run completes),
// "dump" (write an ASCII grid snapshot, with an optional Label), and
// "assertComplete" / "assertIslandsDone".
type ScriptRunner struct {
	// Output receives grid dumps and labels. Defaults to stderr.
	Output io.Writer

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadScript parses a JSON run script and returns a ScriptRunner ready to
// drive a simulation.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script runScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse run script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse run script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Failures returns the assertion failures collected so far.
func (r *ScriptRunner) Failures() []string {
	return r.failures
}

// Run drives the script to completion and returns an error when any
// assertion failed.
func (r *ScriptRunner) Run(s *Simulation) error {
	for !r.done {
		r.Step(s)
	}
	if len(r.failures) > 0 {
		return fmt.Errorf("run script: %s", strings.Join(r.failures, "; "))
	}
	return nil
}

// Step advances the script by one frame. Pending "advance" frames are
// consumed one per call; other actions execute immediately.
func (r *ScriptRunner) Step(s *Simulation) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		s.AdvanceFrame()
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "advance":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		r.waitCount = frames - 1
		s.AdvanceFrame()
	case "advanceUntilComplete":
		budget := st.Frames
		if budget < 1 {
			budget = 1
		}
		for i := 0; i < budget && !s.IsComplete(); i++ {
			s.AdvanceFrame()
		}
		if !s.IsComplete() {
			r.fail("not complete after %d frames", budget)
		}
	case "dump":
		out := r.Output
		if out == nil {
			out = os.Stderr
		}
		if st.Label != "" {
			fmt.Fprintf(out, "[chisel] %s (frame %d)\n", st.Label, s.Frame())
		}
		DumpGrid(out, s.Grid())
	case "assertComplete":
		if !s.IsComplete() {
			r.fail("assertComplete at frame %d: %d carveable cells remain",
				s.Frame(), s.Grid().CarveableCount())
		}
	case "assertIslandsDone":
		for i, il := range s.Islands() {
			if !il.Completed {
				r.fail("assertIslandsDone at frame %d: island %d not completed", s.Frame(), i)
			}
		}
	default:
		r.fail("unknown action %q", st.Action)
	}
	r.checkDone()
}

func (r *ScriptRunner) fail(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *ScriptRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
