package records

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// PGStore keeps student records in a Postgres table.
type PGStore struct {
	db *sql.DB
}

func OpenPGStore(connectionString string) (*PGStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return &PGStore{db: db}, nil
}

func (p *PGStore) Close() error {
	return p.db.Close()
}

// EnsureSchema creates the students table if it does not exist yet. The
// serial id preserves insertion order for List.
func (p *PGStore) EnsureSchema() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			roll VARCHAR(7) UNIQUE NOT NULL,
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL
		)`)
	return err
}

func (p *PGStore) Add(s Student) error {
	if err := validate(s); err != nil {
		return err
	}
	if _, err := p.FindByRoll(s.Roll); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateRoll, s.Roll)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	_, err := p.db.Exec(
		"INSERT INTO students (roll, first_name, last_name) VALUES ($1, $2, $3)",
		s.Roll, s.FirstName, s.LastName)
	return err
}

func (p *PGStore) List() ([]Student, error) {
	rows, err := p.db.Query("SELECT roll, first_name, last_name FROM students ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStudents(rows)
}

func (p *PGStore) FindByRoll(roll string) (Student, error) {
	var s Student
	err := p.db.QueryRow(
		"SELECT roll, first_name, last_name FROM students WHERE roll = $1",
		roll).Scan(&s.Roll, &s.FirstName, &s.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return Student{}, fmt.Errorf("%w: roll %s", ErrNotFound, roll)
	}
	if err != nil {
		return Student{}, err
	}
	return s, nil
}

func (p *PGStore) SearchByLastName(name string) ([]Student, error) {
	rows, err := p.db.Query(
		"SELECT roll, first_name, last_name FROM students WHERE LOWER(last_name) = LOWER($1) ORDER BY id",
		name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStudents(rows)
}

func (p *PGStore) Delete(roll string) error {
	result, err := p.db.Exec("DELETE FROM students WHERE roll = $1", roll)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: roll %s", ErrNotFound, roll)
	}
	return nil
}

func scanStudents(rows *sql.Rows) ([]Student, error) {
	students := []Student{}
	for rows.Next() {
		var s Student
		if err := rows.Scan(&s.Roll, &s.FirstName, &s.LastName); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
