package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/peoplebook/peoplebook/internal/models"
	"github.com/peoplebook/peoplebook/internal/repositories"
)

type PersonService struct {
	personRepo *repositories.PersonRepository
}

func NewPersonService(personRepo *repositories.PersonRepository) *PersonService {
	return &PersonService{
		personRepo: personRepo,
	}
}

// CreatePerson creates a new person record. imageURL may be empty when no
// image was uploaded.
func (s *PersonService) CreatePerson(name, email string, age *int, imageURL string) (*models.Person, error) {
	person := models.NewPerson(strings.TrimSpace(name), strings.TrimSpace(email), age)
	if imageURL != "" {
		person.ImageURL = &imageURL
	}

	if err := s.personRepo.Create(person); err != nil {
		return nil, err
	}

	return s.personRepo.GetByID(person.ID)
}

// GetPerson retrieves a person by ID. A malformed id is treated as not found.
func (s *PersonService) GetPerson(id string) (*models.Person, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrNotFound
	}
	return s.personRepo.GetByID(id)
}

// GetAllPeople retrieves all person records
func (s *PersonService) GetAllPeople() ([]*models.Person, error) {
	return s.personRepo.GetAll()
}

// UpdatePerson overwrites name, email and age. The stored image is replaced
// only when imageURL is non-empty, otherwise the prior value is preserved.
func (s *PersonService) UpdatePerson(id, name, email string, age *int, imageURL string) (*models.Person, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrNotFound
	}

	person := &models.Person{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Age:   age,
	}

	replaceImage := imageURL != ""
	if replaceImage {
		person.ImageURL = &imageURL
	}

	return s.personRepo.Update(person, replaceImage)
}

// DeletePerson removes a person by ID and returns the removed record
func (s *PersonService) DeletePerson(id string) (*models.Person, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrNotFound
	}
	return s.personRepo.Delete(id)
}
