package records

import (
	"fmt"
	"strings"
)

// MemStore keeps student records in memory, in insertion order.
type MemStore struct {
	students []Student
}

func NewMemStore() *MemStore {
	return &MemStore{students: []Student{}}
}

func (m *MemStore) Add(s Student) error {
	if err := validate(s); err != nil {
		return err
	}
	for _, existing := range m.students {
		if existing.Roll == s.Roll {
			return fmt.Errorf("%w: %s", ErrDuplicateRoll, s.Roll)
		}
	}
	m.students = append(m.students, s)
	return nil
}

func (m *MemStore) List() ([]Student, error) {
	out := make([]Student, len(m.students))
	copy(out, m.students)
	return out, nil
}

func (m *MemStore) FindByRoll(roll string) (Student, error) {
	for _, s := range m.students {
		if s.Roll == roll {
			return s, nil
		}
	}
	return Student{}, fmt.Errorf("%w: roll %s", ErrNotFound, roll)
}

func (m *MemStore) SearchByLastName(name string) ([]Student, error) {
	matches := []Student{}
	for _, s := range m.students {
		if strings.EqualFold(s.LastName, name) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

func (m *MemStore) Delete(roll string) error {
	for i, s := range m.students {
		if s.Roll == roll {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: roll %s", ErrNotFound, roll)
}
