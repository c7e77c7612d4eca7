package preference

import "sync"

// Applier pushes the dark flag into the presentation layer, e.g. the root
// element's class list or a terminal style set.
type Applier interface {
	Apply(dark bool)
}

// ApplyFunc adapts a function to Applier.
type ApplyFunc func(dark bool)

// Apply calls f(dark).
func (f ApplyFunc) Apply(dark bool) { f(dark) }

// Theme is the single owner of the dark-mode flag. Pages receive it rather
// than reading storage themselves.
//
// Init loads and applies once. Every Set saves and applies, even when the
// value is unchanged.
type Theme struct {
	mu     sync.Mutex
	store  *Store
	apply  Applier
	once   sync.Once
	dark   bool
	loaded bool
}

// NewTheme returns a Theme over store. A nil applier is allowed.
func NewTheme(store *Store, apply Applier) *Theme {
	if apply == nil {
		apply = ApplyFunc(func(bool) {})
	}
	return &Theme{store: store, apply: apply}
}

// Init loads the stored preference and applies it. Later calls return the
// current value without reapplying.
func (t *Theme) Init() bool {
	t.once.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.dark = t.store.Load()
		t.loaded = true
		t.apply.Apply(t.dark)
	})
	return t.Dark()
}

// Dark returns the current value.
func (t *Theme) Dark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// Set persists v and applies it. The presentation follows v even when the
// write fails; the write error is returned.
func (t *Theme) Set(v bool) error {
	t.Init()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = v
	err := t.store.Save(v)
	t.apply.Apply(v)
	return err
}

// Toggle flips the current value and returns the new one.
func (t *Theme) Toggle() (bool, error) {
	next := !t.Init()
	return next, t.Set(next)
}
