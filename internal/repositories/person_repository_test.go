package repositories

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/peoplebook/peoplebook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../migrations/001_create_people.sql")
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return db
}

func TestCreateAndGetByID(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	age := 30
	person := models.NewPerson("Ann", "a@x.com", &age)
	require.NoError(t, repo.Create(person))

	got, err := repo.GetByID(person.ID)
	require.NoError(t, err)
	assert.Equal(t, person.ID, got.ID)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
	require.NotNil(t, got.Age)
	assert.Equal(t, 30, *got.Age)
	assert.Nil(t, got.ImageURL)
	assert.False(t, got.CreatedAt.IsZero(), "store should assign created_at")
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	_, err := repo.GetByID("2e9c0694-0c18-4f5d-a2a7-33c91e35dbd0")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	require.NoError(t, repo.Create(models.NewPerson("Ann", "a@x.com", nil)))

	err := repo.Create(models.NewPerson("Other Ann", "a@x.com", nil))
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	// The failed insert must not leave a record behind
	people, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, people, 1)
}

func TestGetAll(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	people, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, people)

	require.NoError(t, repo.Create(models.NewPerson("Ann", "a@x.com", nil)))
	require.NoError(t, repo.Create(models.NewPerson("Ben", "b@x.com", nil)))

	people, err = repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, people, 2)
}

func TestUpdateOverwritesFields(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	person := models.NewPerson("Ann", "a@x.com", nil)
	require.NoError(t, repo.Create(person))

	age := 31
	updated, err := repo.Update(&models.Person{
		ID:    person.ID,
		Name:  "Ann Updated",
		Email: "ann@x.com",
		Age:   &age,
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "Ann Updated", updated.Name)
	assert.Equal(t, "ann@x.com", updated.Email)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 31, *updated.Age)
}

func TestUpdatePreservesImageWhenNotReplaced(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	url := "https://storage.googleapis.com/bucket/ann.png"
	person := models.NewPerson("Ann", "a@x.com", nil)
	person.ImageURL = &url
	require.NoError(t, repo.Create(person))

	updated, err := repo.Update(&models.Person{
		ID:    person.ID,
		Name:  "Ann",
		Email: "a@x.com",
	}, false)
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, url, *updated.ImageURL)
}

func TestUpdateReplacesImage(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	oldURL := "https://storage.googleapis.com/bucket/old.png"
	person := models.NewPerson("Ann", "a@x.com", nil)
	person.ImageURL = &oldURL
	require.NoError(t, repo.Create(person))

	newURL := "https://storage.googleapis.com/bucket/new.png"
	updated, err := repo.Update(&models.Person{
		ID:       person.ID,
		Name:     "Ann",
		Email:    "a@x.com",
		ImageURL: &newURL,
	}, true)
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, newURL, *updated.ImageURL)
}

func TestUpdateUnknownID(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	_, err := repo.Update(&models.Person{
		ID:    "2e9c0694-0c18-4f5d-a2a7-33c91e35dbd0",
		Name:  "Ghost",
		Email: "ghost@x.com",
	}, false)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteReturnsRemovedRecord(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	person := models.NewPerson("Ann", "a@x.com", nil)
	require.NoError(t, repo.Create(person))

	removed, err := repo.Delete(person.ID)
	require.NoError(t, err)
	assert.Equal(t, person.ID, removed.ID)

	_, err = repo.GetByID(person.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteUnknownID(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	_, err := repo.Delete("2e9c0694-0c18-4f5d-a2a7-33c91e35dbd0")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
