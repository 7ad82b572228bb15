package format

import "sync"

// Selection supplies the user's current currency choice. An empty code means
// no choice has been made yet.
type Selection interface {
	CurrencyCode() string
}

// Fixed is a Selection that never changes.
type Fixed string

func (f Fixed) CurrencyCode() string { return string(f) }

// SelectionFunc adapts a function to Selection.
type SelectionFunc func() string

func (f SelectionFunc) CurrencyCode() string { return f() }

// Preference is a Selection the caller updates as the user changes currency.
// It is safe for concurrent use; the zero value has no selection.
type Preference struct {
	mu   sync.RWMutex
	code string
}

// Set records the selected code.
func (p *Preference) Set(code string) {
	p.mu.Lock()
	p.code = code
	p.mu.Unlock()
}

// Clear drops the selection.
func (p *Preference) Clear() { p.Set("") }

func (p *Preference) CurrencyCode() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.code
}
