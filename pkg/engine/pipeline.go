package engine

import "fmt"

// Stage is one named transform in the post-match pipeline. Run must treat
// its input as the full span list for one sentence and may drop, reorder
// or rewrite spans.
type Stage struct {
	Name string
	Run  func([]*Span) []*Span
}

// Position places a stage when adding it to a pipeline. Exactly one field
// must be set.
type Position struct {
	First  bool
	Last   bool
	Before string
	After  string
}

func (p Position) count() int {
	n := 0
	if p.First {
		n++
	}
	if p.Last {
		n++
	}
	if p.Before != "" {
		n++
	}
	if p.After != "" {
		n++
	}
	return n
}

// Pipeline is the ordered stage list spans flow through after matching.
// It is not safe to mutate while a Run is in flight.
type Pipeline struct {
	stages []Stage
}

// NewPipeline builds a pipeline from stages in order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// AddStage inserts a named stage at the given position. A position that is
// empty or over-specified, a duplicate name, and an unknown Before/After
// anchor are all configuration errors.
func (p *Pipeline) AddStage(stage Stage, pos Position) error {
	if stage.Name == "" {
		return fmt.Errorf("pipeline stage needs a name")
	}
	if pos.count() != 1 {
		return fmt.Errorf("stage %q: exactly one of first, last, before, after must be set", stage.Name)
	}
	if p.index(stage.Name) >= 0 {
		return fmt.Errorf("stage %q already in the pipeline", stage.Name)
	}

	at := len(p.stages)
	switch {
	case pos.First:
		at = 0
	case pos.Last:
		at = len(p.stages)
	case pos.Before != "":
		at = p.index(pos.Before)
		if at < 0 {
			return fmt.Errorf("stage %q: no stage named %q to insert before", stage.Name, pos.Before)
		}
	case pos.After != "":
		at = p.index(pos.After)
		if at < 0 {
			return fmt.Errorf("stage %q: no stage named %q to insert after", stage.Name, pos.After)
		}
		at++
	}

	p.stages = append(p.stages, Stage{})
	copy(p.stages[at+1:], p.stages[at:])
	p.stages[at] = stage
	return nil
}

// RemoveStage deletes the named stage.
func (p *Pipeline) RemoveStage(name string) error {
	at := p.index(name)
	if at < 0 {
		return fmt.Errorf("no stage named %q", name)
	}
	p.stages = append(p.stages[:at], p.stages[at+1:]...)
	return nil
}

// StageNames returns the stage names in run order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run feeds spans through every stage in order.
func (p *Pipeline) Run(spans []*Span) []*Span {
	for _, s := range p.stages {
		spans = s.Run(spans)
	}
	return spans
}

func (p *Pipeline) index(name string) int {
	for i, s := range p.stages {
		if s.Name == name {
			return i
		}
	}
	return -1
}
