package module

import (
	"github.com/modu-ai/modular/pkg/models"
)

// StepKind identifies what a generation step acted on.
type StepKind string

const (
	StepModule      StepKind = "module"
	StepDirectories StepKind = "directories"
	StepFile        StepKind = "file"
)

// StepStatus is the outcome of a single generation step.
type StepStatus string

const (
	StatusCreated       StepStatus = "created"
	StatusAlreadyExists StepStatus = "already-exists"
	StatusWriteFailed   StepStatus = "write-failed"
)

// Step records the outcome of one generation step.
type Step struct {
	Kind     StepKind
	Artifact models.ArtifactKind // set when Kind is StepFile
	Name     string              // class name for files, module name otherwise
	Path     string              // relative to the filesystem root
	Paths    []string            // directories created by a StepDirectories step
	Status   StepStatus
	Err      error
}

// Report aggregates the steps of one Generate invocation.
type Report struct {
	Module     models.ModuleIdentity
	ModuleDir  string
	Steps      []Step
	RolledBack bool
}

func (r *Report) add(s Step) {
	r.Steps = append(r.Steps, s)
}

// Created returns the steps that completed.
func (r *Report) Created() []Step {
	return r.filter(StatusCreated)
}

// Conflicts returns the steps skipped because their target already existed.
func (r *Report) Conflicts() []Step {
	return r.filter(StatusAlreadyExists)
}

// Failures returns the steps that could not be written.
func (r *Report) Failures() []Step {
	return r.filter(StatusWriteFailed)
}

// OK reports whether every step completed.
func (r *Report) OK() bool {
	return len(r.Conflicts()) == 0 && len(r.Failures()) == 0
}

// File returns the step for an artifact kind, if it was attempted.
func (r *Report) File(kind models.ArtifactKind) (Step, bool) {
	for _, s := range r.Steps {
		if s.Kind == StepFile && s.Artifact == kind {
			return s, true
		}
	}
	return Step{}, false
}

// Files returns the paths of the files written.
func (r *Report) Files() []string {
	var paths []string
	for _, s := range r.Steps {
		if s.Kind == StepFile && s.Status == StatusCreated {
			paths = append(paths, s.Path)
		}
	}
	return paths
}

func (r *Report) filter(status StepStatus) []Step {
	var out []Step
	for _, s := range r.Steps {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}
