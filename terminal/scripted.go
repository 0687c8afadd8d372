package terminal

import "sync"

// NoKey marks a poll with nothing pending in a ScriptedInput script
const NoKey rune = -1

// ScriptedInput replays a fixed key sequence, one entry per Poll
// Entries equal to NoKey, and every poll past the end, report nothing pending
type ScriptedInput struct {
	mu     sync.Mutex
	script []rune
	pos    int
	polls  int
	closed int
}

// NewScriptedInput creates a scripted device
func NewScriptedInput(script ...rune) *ScriptedInput {
	return &ScriptedInput{script: script}
}

// Poll returns the next scripted entry
func (s *ScriptedInput) Poll() (rune, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.polls++
	if s.pos >= len(s.script) {
		return 0, false
	}
	key := s.script[s.pos]
	s.pos++
	if key == NoKey {
		return 0, false
	}
	return key, true
}

// Close records the release
func (s *ScriptedInput) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
	return nil
}

// Polls returns how many times Poll was called
func (s *ScriptedInput) Polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polls
}

// Closed returns how many times Close was called
func (s *ScriptedInput) Closed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Opener returns an Opener handing out this device
func (s *ScriptedInput) Opener() Opener {
	return func() (InputDevice, error) {
		return s, nil
	}
}
