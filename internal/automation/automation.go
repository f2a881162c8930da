// Package automation evaluates Lua control scripts. A script defines a
// global function automate(t) that returns the filter controls at time t
// in seconds:
//
//	function automate(t)
//	  return 12 + 24 * math.sin(t), 0.7
//	end
//
// The results are cutoff A, resonance A, cutoff B and resonance B. Missing
// or nil results keep the defaults passed to At.
package automation

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
)

const (
	entryPoint = "automate"
	numResults = 4
)

// Controls are the automated filter parameters.
type Controls struct {
	CutoffA, ResoA float64
	CutoffB, ResoB float64
}

// Script is a loaded automation script. It is not safe for concurrent
// use.
type Script struct {
	state *lua.LState
	fn    lua.LValue
}

// Load runs the Lua file at path and resolves its automate function.
func Load(path string) (*Script, error) {
	return load(func(l *lua.LState) error { return l.DoFile(path) })
}

// LoadString is Load for in-memory source.
func LoadString(src string) (*Script, error) {
	return load(func(l *lua.LState) error { return l.DoString(src) })
}

func load(run func(*lua.LState) error) (*Script, error) {
	l := lua.NewState()

	if err := run(l); err != nil {
		l.Close()
		return nil, fmt.Errorf("automation: %w", err)
	}

	fn := l.GetGlobal(entryPoint)
	if fn.Type() != lua.LTFunction {
		l.Close()
		return nil, fmt.Errorf("automation: script does not define %s(t)", entryPoint)
	}

	return &Script{state: l, fn: fn}, nil
}

// At calls automate(t). Non-numeric or non-finite results keep the
// corresponding field of def.
func (s *Script) At(t float64, def Controls) (Controls, error) {
	err := s.state.CallByParam(lua.P{Fn: s.fn, NRet: numResults, Protect: true}, lua.LNumber(t))
	if err != nil {
		return def, fmt.Errorf("automation: %s(%g): %w", entryPoint, t, err)
	}

	out := def
	fields := [numResults]*float64{&out.CutoffA, &out.ResoA, &out.CutoffB, &out.ResoB}

	for i, dst := range fields {
		v, ok := s.state.Get(i - numResults).(lua.LNumber)
		if ok && !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0) {
			*dst = float64(v)
		}
	}

	s.state.Pop(numResults)

	return out, nil
}

// Close releases the interpreter.
func (s *Script) Close() {
	s.state.Close()
}
