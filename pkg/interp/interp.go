// Package interp resolves which Python interpreter command to use,
// following the same preference order the generated launcher scripts
// embed: earlier candidates win, the probe is a PATH lookup.
package interp

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrNoInterpreter is returned when none of the candidates is on PATH.
var ErrNoInterpreter = errors.New("no interpreter found on PATH")

// Interpreter is a resolved interpreter command.
type Interpreter struct {
	Name string
	Path string
}

// Resolver probes candidate command names in priority order. LookPath is
// injectable so tests run without touching the real PATH.
type Resolver struct {
	Candidates []string
	LookPath   func(name string) (string, error)
}

// NewResolver returns a Resolver over the given candidates using the
// real PATH lookup.
func NewResolver(candidates []string) *Resolver {
	return &Resolver{
		Candidates: candidates,
		LookPath:   exec.LookPath,
	}
}

// Detect returns the first candidate found on PATH.
func (r *Resolver) Detect() (*Interpreter, error) {
	for _, name := range r.Candidates {
		path, err := r.LookPath(name)
		if err != nil {
			continue
		}
		return &Interpreter{Name: name, Path: path}, nil
	}
	return nil, fmt.Errorf("%w (tried %v)", ErrNoInterpreter, r.Candidates)
}
