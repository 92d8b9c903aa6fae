// Package axtest provides an in-memory accessibility service for tests.
package axtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/mado-cli/internal/ax"
	"github.com/yourusername/mado-cli/internal/types"
)

// Command is one recorded write against the fake
type Command struct {
	Kind      string // "set" or "activate"
	Element   ax.Element
	Attribute ax.Attribute
	Value     ax.Value
	PID       int
	Options   ax.ActivationOptions
}

// Fake is an in-memory ax.Service. Writes are applied to the stored
// attributes so later reads observe them.
type Fake struct {
	mu        sync.Mutex
	apps      map[int]ax.Application
	attrs     map[ax.Element]map[ax.Attribute]ax.Value
	frontmost int
	commands  []Command

	// GetErr and SetErr force failures for specific attributes
	GetErr map[ax.Attribute]error
	SetErr map[ax.Attribute]error
}

// NewFake returns an empty fake with no frontmost application
func NewFake() *Fake {
	return &Fake{
		apps:   make(map[int]ax.Application),
		attrs:  make(map[ax.Element]map[ax.Attribute]ax.Value),
		GetErr: make(map[ax.Attribute]error),
		SetErr: make(map[ax.Attribute]error),
	}
}

// AddWindow registers an application with one focused window at the given
// flipped-global frame and makes it frontmost. It returns the window element.
func (f *Fake) AddWindow(pid int, appName, windowTitle string, frame types.Rect) ax.Element {
	f.mu.Lock()
	defer f.mu.Unlock()

	appEl := ax.Element(fmt.Sprintf("app-%d", pid))
	winEl := ax.Element(fmt.Sprintf("win-%d", pid))

	f.apps[pid] = ax.Application{PID: pid, Name: appName, Element: appEl}
	f.attrs[appEl] = map[ax.Attribute]ax.Value{
		ax.AttrTitle:         ax.StringValue(appName),
		ax.AttrFocusedWindow: ax.ElementValue(winEl),
	}
	f.attrs[winEl] = map[ax.Attribute]ax.Value{
		ax.AttrTitle:    ax.StringValue(windowTitle),
		ax.AttrPosition: ax.PointValue(frame.Origin()),
		ax.AttrSize:     ax.SizeValue(frame.Size()),
	}
	f.frontmost = pid
	return winEl
}

// SetFrontmost changes the frontmost application; 0 means none
func (f *Fake) SetFrontmost(pid int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frontmost = pid
}

// SetValue stores an attribute value without recording a command
func (f *Fake) SetValue(el ax.Element, attr ax.Attribute, v ax.Value) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attrs[el] == nil {
		f.attrs[el] = make(map[ax.Attribute]ax.Value)
	}
	f.attrs[el][attr] = v
}

// DeleteValue removes an attribute so reads report it unsupported
func (f *Fake) DeleteValue(el ax.Element, attr ax.Attribute) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.attrs[el], attr)
}

// RemoveElement drops an element, as if its window closed
func (f *Fake) RemoveElement(el ax.Element) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.attrs, el)
}

// Frame reads back the flipped-global frame of a window element
func (f *Fake) Frame(el ax.Element) types.Rect {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := f.attrs[el]
	return types.NewRect(a[ax.AttrPosition].Point, a[ax.AttrSize].Size)
}

// Commands returns all recorded writes in order
func (f *Fake) Commands() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Command(nil), f.commands...)
}

// ResetCommands clears the recorded writes
func (f *Fake) ResetCommands() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = nil
}

// FrontmostApplication implements ax.Service
func (f *Fake) FrontmostApplication(ctx context.Context) (ax.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[f.frontmost]
	if !ok {
		return ax.Application{}, ax.ErrNoApplication
	}
	return app, nil
}

// Application implements ax.Service
func (f *Fake) Application(ctx context.Context, pid int) (ax.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[pid]
	if !ok {
		return ax.Application{}, fmt.Errorf("%w: pid %d", ax.ErrNoApplication, pid)
	}
	return app, nil
}

// GetAttribute implements ax.Service
func (f *Fake) GetAttribute(ctx context.Context, el ax.Element, attr ax.Attribute) (ax.Value, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.GetErr[attr]; err != nil {
		return ax.Value{}, err
	}
	attrs, ok := f.attrs[el]
	if !ok {
		return ax.Value{}, ax.ErrInvalidElement
	}
	v, ok := attrs[attr]
	if !ok {
		return ax.Value{}, ax.ErrAttributeUnsupported
	}
	return v, nil
}

// SetAttribute implements ax.Service
func (f *Fake) SetAttribute(ctx context.Context, el ax.Element, attr ax.Attribute, v ax.Value) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, Command{Kind: "set", Element: el, Attribute: attr, Value: v})
	if err := f.SetErr[attr]; err != nil {
		return err
	}
	attrs, ok := f.attrs[el]
	if !ok {
		return ax.ErrInvalidElement
	}
	attrs[attr] = v
	return nil
}

// Activate implements ax.Service
func (f *Fake) Activate(ctx context.Context, pid int, opts ax.ActivationOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, Command{Kind: "activate", PID: pid, Options: opts})
	if _, ok := f.apps[pid]; !ok {
		return ax.ErrNoApplication
	}
	f.frontmost = pid
	return nil
}

var _ ax.Service = (*Fake)(nil)
