package task

import (
	"sync"

	"github.com/pkg/errors"
)

type Role int

const (
	RoleStart Role = iota
	RoleTurnpoint
	RoleFinish
)

func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleTurnpoint:
		return "turnpoint"
	case RoleFinish:
		return "finish"
	}
	return "unknown"
}

// Store is the shared task: an ordered list of sectors and the index of the
// active one. The task editor and the tracker both go through its mutex.
// Methods with a Fast suffix expect the caller to hold the lock.
type Store struct {
	mu      sync.Mutex
	name    string
	sectors []Sector
	active  int
	version uint64
}

func NewStore(name string, sectors []Sector) *Store {
	s := &Store{}
	s.Replace(name, sectors)
	return s
}

func (s *Store) Lock() {
	s.mu.Lock()
}

func (s *Store) Unlock() {
	s.mu.Unlock()
}

func (s *Store) ValidTaskPointFast(i int) bool {
	return i >= 0 && i < len(s.sectors)
}

func (s *Store) SectorFast(i int) *Sector {
	if !s.ValidTaskPointFast(i) {
		return nil
	}
	return &s.sectors[i]
}

func (s *Store) LenFast() int {
	return len(s.sectors)
}

func (s *Store) ActiveIndexFast() int {
	return s.active
}

func (s *Store) SetActiveFast(i int) {
	s.active = i
}

func (s *Store) VersionFast() uint64 {
	return s.version
}

func (s *Store) RoleFast(i int) Role {
	switch {
	case i == 0:
		return RoleStart
	case i == len(s.sectors)-1:
		return RoleFinish
	}
	return RoleTurnpoint
}

// ValidActive reports whether the active index points at a sector.
func (s *Store) ValidActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ValidTaskPointFast(s.active)
}

func (s *Store) ActiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Store) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sectors)
}

// Sectors returns a copy of the task.
func (s *Store) Sectors() []Sector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sector(nil), s.sectors...)
}

func (s *Store) SetActive(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ValidTaskPointFast(i) {
		return errors.Errorf("task point %d out of range", i)
	}
	s.active = i
	return nil
}

// Replace swaps in a whole new task and activates its first point.
func (s *Store) Replace(name string, sectors []Sector) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.sectors = append([]Sector(nil), sectors...)
	s.active = 0
	s.version++
}

func (s *Store) Insert(i int, sector Sector) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i > len(s.sectors) {
		return errors.Errorf("cannot insert task point at %d", i)
	}
	s.sectors = append(s.sectors, Sector{})
	copy(s.sectors[i+1:], s.sectors[i:])
	s.sectors[i] = sector
	if i <= s.active && len(s.sectors) > 1 {
		s.active++
	}
	s.version++
	return nil
}

func (s *Store) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ValidTaskPointFast(i) {
		return errors.Errorf("cannot remove task point %d", i)
	}
	s.sectors = append(s.sectors[:i], s.sectors[i+1:]...)
	if i < s.active {
		s.active--
	}
	if s.active >= len(s.sectors) {
		s.active = max(0, len(s.sectors)-1)
	}
	s.version++
	return nil
}

// Move reorders a task point, keeping the active sector active.
func (s *Store) Move(from int, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ValidTaskPointFast(from) || !s.ValidTaskPointFast(to) {
		return errors.Errorf("cannot move task point %d to %d", from, to)
	}
	if from == to {
		return nil
	}
	activeSector := s.active
	sector := s.sectors[from]
	s.sectors = append(s.sectors[:from], s.sectors[from+1:]...)
	s.sectors = append(s.sectors[:to], append([]Sector{sector}, s.sectors[to:]...)...)

	switch {
	case activeSector == from:
		s.active = to
	case from < activeSector && to >= activeSector:
		s.active--
	case from > activeSector && to <= activeSector:
		s.active++
	}
	s.version++
	return nil
}
