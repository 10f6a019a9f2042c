package tui

import "sync"

// languageSelection is the language open in the editor. The autosave job
// reads it from its own goroutine while the editor changes it.
type languageSelection struct {
	mu   sync.RWMutex
	name string
}

func (s *languageSelection) set(name string) {
	s.mu.Lock()
	s.name = name
	s.mu.Unlock()
}

// Name satisfies service.LanguageResolver.
func (s *languageSelection) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}
