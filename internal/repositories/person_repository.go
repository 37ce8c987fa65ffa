package repositories

import (
	"database/sql"
	"strings"

	"github.com/peoplebook/peoplebook/internal/models"
)

type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create inserts a new person. Email uniqueness is enforced by the store.
func (r *PersonRepository) Create(person *models.Person) error {
	query := `
		INSERT INTO people (
			id, name, email, age, image_url
		) VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, person.ID, person.Name, person.Email, person.Age, person.ImageURL)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.ErrDuplicateEmail
		}
		return err
	}

	return nil
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(id string) (*models.Person, error) {
	query := `
		SELECT id, name, email, age, image_url, created_at
		FROM people WHERE id = ?
	`

	person := &models.Person{}
	err := r.db.QueryRow(query, id).Scan(
		&person.ID, &person.Name, &person.Email, &person.Age, &person.ImageURL, &person.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return person, nil
}

// GetAll retrieves all people ordered by creation time
func (r *PersonRepository) GetAll() ([]*models.Person, error) {
	query := `
		SELECT id, name, email, age, image_url, created_at
		FROM people ORDER BY created_at
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		person := &models.Person{}
		err := rows.Scan(
			&person.ID, &person.Name, &person.Email, &person.Age, &person.ImageURL, &person.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return people, rows.Err()
}

// Update overwrites name, email and age. The image column is only written
// when replaceImage is set, otherwise the stored value is kept.
func (r *PersonRepository) Update(person *models.Person, replaceImage bool) (*models.Person, error) {
	var res sql.Result
	var err error

	if replaceImage {
		query := `
			UPDATE people SET
				name = ?, email = ?, age = ?, image_url = ?
			WHERE id = ?
		`
		res, err = r.db.Exec(query, person.Name, person.Email, person.Age, person.ImageURL, person.ID)
	} else {
		query := `
			UPDATE people SET
				name = ?, email = ?, age = ?
			WHERE id = ?
		`
		res, err = r.db.Exec(query, person.Name, person.Email, person.Age, person.ID)
	}

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, models.ErrDuplicateEmail
		}
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, models.ErrNotFound
	}

	return r.GetByID(person.ID)
}

// Delete removes a person by ID and returns the removed record
func (r *PersonRepository) Delete(id string) (*models.Person, error) {
	person, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.Exec(`DELETE FROM people WHERE id = ?`, id); err != nil {
		return nil, err
	}

	return person, nil
}
