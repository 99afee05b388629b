package page

import (
	"strings"

	"github.com/villagehq/village/internal/utils"
)

// DefaultContext is the label reported when the stack is empty.
const DefaultContext = "main"

// Stack is the request-scoped context stack. The top label selects alternate
// rendering behavior for the same content type (e.g. "blog" vs "widget").
// Not safe for concurrent use; each request owns its own instance.
type Stack struct {
	entries      []string
	defaultLabel string
}

// NewStack creates an empty stack. defaultLabel is reported by Get when the
// stack is empty; "" means DefaultContext.
func NewStack(defaultLabel string) *Stack {
	if defaultLabel == "" {
		defaultLabel = DefaultContext
	}
	return &Stack{defaultLabel: defaultLabel}
}

// Set trims and lowercases label, then replaces the top entry with it.
// Returns false without mutating when the normalized label is empty.
func (s *Stack) Set(label string) bool {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return false
	}

	if n := len(s.entries); n > 0 {
		s.entries = s.entries[:n-1]
	}
	s.entries = append(s.entries, label)
	return true
}

// Get returns the top entry without removing it, or the default label when
// the stack is empty.
func (s *Stack) Get() string {
	if n := len(s.entries); n > 0 {
		return s.entries[n-1]
	}
	return s.defaultLabel
}

// Push appends label verbatim as a new top entry.
func (s *Stack) Push(label string) {
	s.entries = append(s.entries, label)
}

// Pop removes and returns the top entry; ("", false) when the stack is empty.
func (s *Stack) Pop() (string, bool) {
	n := len(s.entries)
	if n == 0 {
		return "", false
	}
	label := s.entries[n-1]
	s.entries = s.entries[:n-1]
	return label, true
}

// In reports whether label appears anywhere in the stack.
func (s *Stack) In(label string) bool {
	return utils.SliceContains(s.entries, label)
}

// Depth returns the number of entries on the stack.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// seed assigns the initial slot directly, bypassing Set's normalization.
// Overwrites the bottom entry if one exists.
func (s *Stack) seed(label string) {
	if len(s.entries) == 0 {
		s.entries = append(s.entries, label)
		return
	}
	s.entries[0] = label
}
