package tuning

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Curve computes the meteor spawn interval in ticks. Implementations may
// return any value; the spawner clamps the result so the effective interval
// is monotonically non-increasing and never drops below the tuned minimum.
type Curve interface {
	Interval(elapsedTicks, score int) (float64, error)
}

// RampCurve is the builtin difficulty ramp: the interval shrinks linearly
// with score down to Min.
type RampCurve struct {
	Start    float64
	Min      float64
	PerDodge float64
}

// Interval returns Start - PerDodge*score, floored at Min.
func (c RampCurve) Interval(elapsedTicks, score int) (float64, error) {
	v := c.Start - c.PerDodge*float64(score)
	if v < c.Min {
		v = c.Min
	}
	return v, nil
}

// Ramp builds the builtin curve from a spawn spec.
func (s SpawnSpec) Ramp() RampCurve {
	return RampCurve{Start: s.StartIntervalTicks, Min: s.MinIntervalTicks, PerDodge: s.RampPerDodge}
}

const curveDispatchScript = `
__interval = interval(__elapsed, __score)
`

// ScriptCurve evaluates a tengo script that defines
// interval(elapsed, score).
type ScriptCurve struct {
	compiled *tengo.Compiled
}

// LoadScriptCurve compiles the difficulty script at path.
func LoadScriptCurve(path string) (*ScriptCurve, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: read script %s: %w", path, err)
	}
	return NewScriptCurve(src)
}

// NewScriptCurve compiles difficulty script source.
func NewScriptCurve(src []byte) (*ScriptCurve, error) {
	full := string(src) + "\n" + curveDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__elapsed", 0)
	_ = script.Add("__score", 0)
	_ = script.Add("__interval", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("tuning: compile difficulty script: %w", err)
	}
	return &ScriptCurve{compiled: compiled}, nil
}

// Interval runs the script for the given elapsed ticks and score.
func (c *ScriptCurve) Interval(elapsedTicks, score int) (float64, error) {
	if c == nil || c.compiled == nil {
		return 0, fmt.Errorf("tuning: nil script curve")
	}
	if err := c.compiled.Set("__elapsed", elapsedTicks); err != nil {
		return 0, err
	}
	if err := c.compiled.Set("__score", score); err != nil {
		return 0, err
	}
	if err := c.compiled.Run(); err != nil {
		return 0, fmt.Errorf("tuning: difficulty script: %w", err)
	}
	switch v := c.compiled.Get("__interval").Value().(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("tuning: difficulty script returned %T, want number", v)
	}
}
