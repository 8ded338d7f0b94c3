// Package scene holds the state behind a modviz window: the parameters the
// user has typed, the last generated result and the animation revealing it.
//
// A Scene is mutated only by discrete input events (field edits, mode
// changes, Generate) and by AdvanceFrame. Front ends read it through
// Snapshot and never touch its fields.
//
// Scene instances are NOT safe for concurrent use; the host loop owns them.
package scene

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/san-kum/modviz/internal/modarith"
	"github.com/san-kum/modviz/internal/timeline"
)

type Mode int

const (
	ModeReduction Mode = iota
	ModeCycle
)

func (m Mode) String() string {
	switch m {
	case ModeReduction:
		return "reduction"
	case ModeCycle:
		return "cycle"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "reduction", "reduce":
		return ModeReduction, nil
	case "cycle":
		return ModeCycle, nil
	}
	return 0, fmt.Errorf("mode %q: %w", s, modarith.ErrInvalidInput)
}

// Field names accepted by SetField.
const (
	FieldOperand   = "operand"
	FieldModulus   = "modulus"
	FieldGenerator = "generator"
)

type Params struct {
	Operand   int
	Modulus   int
	Generator int
}

// Result is the last generated outcome, tagged by Mode. Only the member
// matching Mode is meaningful.
type Result struct {
	Mode      Mode
	Params    Params
	Reduction modarith.ReductionResult
	Cycle     modarith.CycleSequence
}

type Options struct {
	Params     Params
	Mode       Mode
	Ticks      int
	MaxModulus int
	MaxValue   int
	Logger     *log.Logger
}

type Scene struct {
	params    Params
	mode      Mode
	result    Result
	hasResult bool
	timeline  *timeline.Timeline
	ticks     int
	message   string

	maxModulus int
	maxValue   int
	log        *log.Logger
}

// New creates a scene from opts. Zero limits mean unbounded, zero ticks
// mean timeline.DefaultTicks, and a nil logger discards output. Initial
// parameters that fail validation fall back to operand 0, modulus 1,
// generator 0.
func New(opts Options) *Scene {
	s := &Scene{
		params:     Params{Modulus: 1},
		mode:       opts.Mode,
		timeline:   timeline.New(),
		ticks:      opts.Ticks,
		maxModulus: opts.MaxModulus,
		maxValue:   opts.MaxValue,
		log:        opts.Logger,
	}
	if s.ticks <= 0 {
		s.ticks = timeline.DefaultTicks
	}
	if s.log == nil {
		s.log = log.New(io.Discard, "", 0)
	}

	s.SetModulus(opts.Params.Modulus)
	s.SetOperand(opts.Params.Operand)
	s.SetGenerator(opts.Params.Generator)
	return s
}

func (s *Scene) Params() Params { return s.params }

func (s *Scene) Mode() Mode { return s.mode }

func (s *Scene) SetMode(m Mode) {
	if m != ModeReduction && m != ModeCycle {
		s.reject(fmt.Errorf("%v: %w", m, modarith.ErrInvalidInput))
		return
	}
	s.mode = m
}

// Message is the most recent validation message, or "".
func (s *Scene) Message() string { return s.message }

// SetOperand accepts 0..MaxValue.
func (s *Scene) SetOperand(v int) bool {
	if err := s.checkValue(FieldOperand, v); err != nil {
		s.reject(err)
		return false
	}
	s.params.Operand = v
	s.message = ""
	return true
}

// SetModulus accepts 1..MaxModulus.
func (s *Scene) SetModulus(v int) bool {
	if v < 1 {
		s.reject(&modarith.InputError{Field: FieldModulus, Value: fmt.Sprint(v), Wrapped: modarith.ErrInvalidModulus})
		return false
	}
	if s.maxModulus > 0 && v > s.maxModulus {
		s.reject(fmt.Errorf("modulus %d exceeds %d: %w", v, s.maxModulus, modarith.ErrInvalidInput))
		return false
	}
	s.params.Modulus = v
	s.message = ""
	return true
}

// SetGenerator accepts 0..MaxValue.
func (s *Scene) SetGenerator(v int) bool {
	if err := s.checkValue(FieldGenerator, v); err != nil {
		s.reject(err)
		return false
	}
	s.params.Generator = v
	s.message = ""
	return true
}

// SetField parses raw text typed into a widget and assigns it.
func (s *Scene) SetField(field, raw string) bool {
	n, err := modarith.ParseNatural(field, raw)
	if err != nil {
		s.reject(err)
		return false
	}
	switch field {
	case FieldOperand:
		return s.SetOperand(n)
	case FieldModulus:
		return s.SetModulus(n)
	case FieldGenerator:
		return s.SetGenerator(n)
	}
	s.reject(fmt.Errorf("unknown field %q: %w", field, modarith.ErrInvalidInput))
	return false
}

func (s *Scene) checkValue(field string, v int) error {
	if v < 0 {
		return &modarith.InputError{Field: field, Value: fmt.Sprint(v), Wrapped: modarith.ErrInvalidInput}
	}
	if s.maxValue > 0 && v > s.maxValue {
		return fmt.Errorf("%s %d exceeds %d: %w", field, v, s.maxValue, modarith.ErrInvalidInput)
	}
	return nil
}

func (s *Scene) reject(err error) {
	s.message = validationMessage(err)
	s.log.Printf("rejected input: %v", err)
}

func validationMessage(err error) string {
	var inErr *modarith.InputError
	switch {
	case errors.Is(err, modarith.ErrInvalidModulus):
		return "modulus must be at least 1"
	case errors.As(err, &inErr):
		return inErr.Error()
	default:
		return err.Error()
	}
}

// OnGenerate recomputes the result for the current mode.
func (s *Scene) OnGenerate() error {
	return s.OnGenerateMode(s.mode)
}

// OnGenerateMode switches to mode, recomputes the result from the current
// parameters and restarts the animation. On error the previous result and
// animation are left untouched.
func (s *Scene) OnGenerateMode(mode Mode) error {
	res := Result{Mode: mode, Params: s.params}

	var err error
	switch mode {
	case ModeReduction:
		res.Reduction, err = modarith.Reduce(s.params.Operand, s.params.Modulus)
	case ModeCycle:
		res.Cycle, err = modarith.GenerateCycle(s.params.Generator, s.params.Modulus)
	default:
		err = fmt.Errorf("%v: %w", mode, modarith.ErrInvalidInput)
	}
	if err != nil {
		s.reject(err)
		return err
	}

	s.mode = mode
	s.result = res
	s.hasResult = true
	s.message = ""
	s.timeline.Start(s.ticks)

	switch mode {
	case ModeReduction:
		s.log.Printf("generate: %v", res.Reduction)
	case ModeCycle:
		s.log.Printf("generate: %v", res.Cycle)
	}
	return nil
}

// AdvanceFrame moves the animation one tick forward; idle scenes ignore it.
func (s *Scene) AdvanceFrame() {
	s.timeline.Tick()
}

func (s *Scene) CurrentProgress() float64 {
	return s.timeline.Progress()
}

func (s *Scene) Animation() timeline.State {
	return s.timeline.State()
}

// Result returns the last generated result. ok is false before the first
// successful Generate.
func (s *Scene) Result() (Result, bool) {
	r := s.result
	r.Cycle.Residues = append([]int(nil), s.result.Cycle.Residues...)
	return r, s.hasResult
}
