package session

import (
	"sort"
	"sync"

	"github.com/sgphoto/photoreview-api/internal/domain/review"
)

// Session tracks one browser tab's place in the workflow: the folder
// it is looking at, how many photos the last scan returned, and which
// of them are marked. All of it is in memory; a restart simply starts
// everyone with a clean slate. Every field behind the mutex is read
// through Snapshot so concurrent navigations never race reads.
type Session struct {
	ID string

	mu         sync.Mutex
	folder     string
	role       review.Role
	photoCount int
	marked     map[int]struct{}
}

// Snapshot is a consistent view of the mutable session state
type Snapshot struct {
	Folder     string
	Role       review.Role
	PhotoCount int
	Marked     []int
}

// Snapshot returns the current state, marked indices in ascending
// order.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	marked := make([]int, 0, len(s.marked))
	for i := range s.marked {
		marked = append(marked, i)
	}
	sort.Ints(marked)
	return Snapshot{
		Folder:     s.folder,
		Role:       s.role,
		PhotoCount: s.photoCount,
		Marked:     marked,
	}
}

// Navigate points the session at a folder and clears the selection.
// Marks are indices into a specific scan result and mean nothing in
// another folder.
func (s *Session) Navigate(folder string, role review.Role, photoCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folder = folder
	s.role = role
	s.photoCount = photoCount
	s.marked = make(map[int]struct{})
}

// Mark marks the photo at index
func (s *Session) Mark(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= s.photoCount {
		return ErrIndexOutOfRange
	}
	s.marked[index] = struct{}{}
	return nil
}

// Unmark clears the mark at index. Unmarking an unmarked photo is a
// no-op.
func (s *Session) Unmark(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= s.photoCount {
		return ErrIndexOutOfRange
	}
	delete(s.marked, index)
	return nil
}

// Toggle flips the mark at index and reports the new state
func (s *Session) Toggle(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= s.photoCount {
		return false, ErrIndexOutOfRange
	}
	if _, ok := s.marked[index]; ok {
		delete(s.marked, index)
		return false, nil
	}
	s.marked[index] = struct{}{}
	return true, nil
}

// MarkRange marks every photo between the two anchors inclusive. The
// anchors may come in either order, shift-click works both ways.
func (s *Session) MarkRange(a, b int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 || hi >= s.photoCount {
		return ErrIndexOutOfRange
	}
	for i := lo; i <= hi; i++ {
		s.marked[i] = struct{}{}
	}
	return nil
}

// Clear drops the whole selection
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = make(map[int]struct{})
}
