package ease

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrScriptNoOut = errors.New("ease: curve script must assign out")

// CompileCurve compiles a tengo script into a Curve. The script reads
// the progress variable `t` and must assign the eased progress to
// `out`, e.g.
//
//	out := t * t * (3 - 2*t)
//
// The script is compiled once; each evaluation runs a clone, so a
// compiled curve is safe to share between runs. Scripts get the tengo
// math stdlib module.
func CompileCurve(src []byte) (Curve, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("ease: add curve input: %w", err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ease: compile curve script: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("ease: dry-run curve script: %w", err)
	}
	if !compiled.IsDefined("out") {
		return nil, ErrScriptNoOut
	}

	return func(t float64) float64 {
		c := compiled.Clone()
		if err := c.Set("t", t); err != nil {
			return t
		}
		if err := c.Run(); err != nil {
			// A curve has no error channel; fall back to linear so a
			// bad script degrades instead of freezing the run.
			return t
		}
		return c.Get("out").Float()
	}, nil
}
