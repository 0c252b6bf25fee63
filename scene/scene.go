package scene

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/lixenwraith/consolegui/render"
	"github.com/lixenwraith/consolegui/terminal"
)

// noActive marks the absence of an active element
const noActive = -1

// Scene composes elements into a shared frame buffer and routes input
// Paint order is insertion order, later elements occlude earlier ones
type Scene struct {
	fb         *render.FrameBuffer
	out        terminal.Output
	background terminal.Color
	elements   []Element
	active     int
	logger     *log.Logger
}

// Option configures a Scene
type Option func(*Scene)

// WithLogger reports element lifecycle and interaction failures to l
func WithLogger(l *log.Logger) Option {
	return func(s *Scene) {
		s.logger = l
	}
}

// New creates an empty scene painting fb onto out over background
func New(fb *render.FrameBuffer, out terminal.Output, background terminal.Color, opts ...Option) *Scene {
	s := &Scene{
		fb:         fb,
		out:        out,
		background: background,
		elements:   make([]Element, 0, 8),
		active:     noActive,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scene) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Add appends an element, optionally making it active, and returns its index
func (s *Scene) Add(el Element, makeActive bool) int {
	s.elements = append(s.elements, el)
	idx := len(s.elements) - 1
	if makeActive {
		s.active = idx
	}
	s.logf("scene: added element %d (%T) active=%v", idx, el, makeActive)
	return idx
}

// Len returns the number of elements
func (s *Scene) Len() int {
	return len(s.elements)
}

// Element returns the element at index i
func (s *Scene) Element(i int) (Element, bool) {
	if i < 0 || i >= len(s.elements) {
		return nil, false
	}
	return s.elements[i], true
}

// Background returns the screen color used to clear between frames
func (s *Scene) Background() terminal.Color {
	return s.background
}

// SetBackground changes the screen color, effective from the next flush
func (s *Scene) SetBackground(bg terminal.Color) {
	s.background = bg
}

// Paint draws every element in insertion order and flushes the frame diff
func (s *Scene) Paint() error {
	for _, el := range s.elements {
		el.Draw(s.fb)
	}
	if _, err := s.fb.Flush(s.out, s.background); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// Update advances every element once, in insertion order
func (s *Scene) Update() {
	for _, el := range s.elements {
		el.Update()
	}
}

// Active returns the active element and its index
func (s *Scene) Active() (Element, int) {
	if s.active < 0 || s.active >= len(s.elements) {
		return nil, noActive
	}
	return s.elements[s.active], s.active
}

// SetActive selects the element receiving input, -1 clears the selection
func (s *Scene) SetActive(i int) error {
	if i == noActive {
		s.active = noActive
		return nil
	}
	if i < 0 || i >= len(s.elements) {
		return fmt.Errorf("set active %d of %d elements: %w", i, len(s.elements), ErrInvalidState)
	}
	s.active = i
	return nil
}

// CycleActive moves input focus to the next element, wrapping around
func (s *Scene) CycleActive() error {
	if len(s.elements) == 0 {
		return fmt.Errorf("cycle active: %w", ErrInvalidState)
	}
	s.active = (s.active + 1) % len(s.elements)
	return nil
}

// activeElement resolves the active element or fails with ErrInvalidState
func (s *Scene) activeElement(op string) (Element, error) {
	if s.active < 0 || s.active >= len(s.elements) {
		return nil, fmt.Errorf("%s: active index %d of %d elements: %w", op, s.active, len(s.elements), ErrInvalidState)
	}
	return s.elements[s.active], nil
}

// Interact hands key to the active element and returns its result
func (s *Scene) Interact(key string) (string, error) {
	el, err := s.activeElement("interact")
	if err != nil {
		s.logf("scene: %v", err)
		return "", err
	}
	res, err := el.Interact(key)
	if err != nil {
		s.logf("scene: element %d interact %q: %v", s.active, key, err)
		return "", err
	}
	return res, nil
}

// Pan scrolls the active element when it is a Viewport
func (s *Scene) Pan(dx, dy int) error {
	el, err := s.activeElement("pan")
	if err != nil {
		return err
	}
	vp, ok := el.(Viewport)
	if !ok {
		return fmt.Errorf("pan %T: %w", el, ErrUnsupported)
	}
	vp.Pan(dx, dy)
	return nil
}

// Zoom changes the active element's zoom when it is a Viewport
func (s *Scene) Zoom(delta int) error {
	el, err := s.activeElement("zoom")
	if err != nil {
		return err
	}
	vp, ok := el.(Viewport)
	if !ok {
		return fmt.Errorf("zoom %T: %w", el, ErrUnsupported)
	}
	vp.Zoom(delta)
	return nil
}

// Remove disposes and drops the element at index i
// The active index follows its element; removing the active element clears it
func (s *Scene) Remove(i int) error {
	if i < 0 || i >= len(s.elements) {
		return fmt.Errorf("remove %d of %d elements: %w", i, len(s.elements), ErrInvalidState)
	}
	el := s.elements[i]
	s.elements = slices.Delete(s.elements, i, i+1)

	switch {
	case s.active == i:
		s.active = noActive
	case s.active > i:
		s.active--
	}

	s.logf("scene: removed element %d (%T)", i, el)
	if err := el.Dispose(); err != nil {
		return fmt.Errorf("dispose element %d: %w", i, err)
	}
	return nil
}

// Close disposes every element and empties the scene
func (s *Scene) Close() error {
	var errs []error
	for i, el := range s.elements {
		if err := el.Dispose(); err != nil {
			errs = append(errs, fmt.Errorf("dispose element %d: %w", i, err))
		}
	}
	s.elements = s.elements[:0]
	s.active = noActive
	return errors.Join(errs...)
}
