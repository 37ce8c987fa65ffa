package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/peoplebook/peoplebook/internal/flash"
	"github.com/peoplebook/peoplebook/internal/models"
	"github.com/peoplebook/peoplebook/internal/services"
	"github.com/peoplebook/peoplebook/pkg/logger"
	"github.com/peoplebook/peoplebook/pkg/uploader"
	"github.com/peoplebook/peoplebook/pkg/validation"
)

type PersonHandler struct {
	personService *services.PersonService
	flashStore    flash.Store
	uploader      uploader.Uploader
}

func NewPersonHandler(personService *services.PersonService, flashStore flash.Store, up uploader.Uploader) *PersonHandler {
	return &PersonHandler{
		personService: personService,
		flashStore:    flashStore,
		uploader:      up,
	}
}

// personForm carries the create/update form fields. Required means
// present, nothing more.
type personForm struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required"`
	Age   string `form:"age" binding:"required"`
}

// Home displays all people
func (h *PersonHandler) Home(c *gin.Context) {
	people, err := h.personService.GetAllPeople()
	if err != nil {
		logger.WithError(err).Error("Error fetching people")
		c.String(http.StatusInternalServerError, "Error fetching people")
		return
	}

	data := templateData(c, h.flashStore, gin.H{
		"Title":  "Home",
		"People": people,
	})

	c.HTML(http.StatusOK, "home", data)
}

// Show displays a single person
func (h *PersonHandler) Show(c *gin.Context) {
	id := c.Param("id")

	person, err := h.personService.GetPerson(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			setFlash(c, h.flashStore, flash.Error, "Person not found.")
		} else {
			logger.WithError(err).WithField("id", id).Error("Error fetching person")
			setFlash(c, h.flashStore, flash.Error, "Failed to fetch person details.")
		}
		c.Redirect(http.StatusFound, "/home")
		return
	}

	data := templateData(c, h.flashStore, gin.H{
		"Title":  person.Name,
		"Person": person,
	})

	c.HTML(http.StatusOK, "show", data)
}

// CreateForm displays the empty create form
func (h *PersonHandler) CreateForm(c *gin.Context) {
	data := templateData(c, h.flashStore, gin.H{
		"Title": "Create Person",
	})

	c.HTML(http.StatusOK, "create", data)
}

// Create handles person creation
func (h *PersonHandler) Create(c *gin.Context) {
	var form personForm
	if err := c.ShouldBind(&form); err != nil {
		logger.WithField("missing", validation.MissingFields(err)).Info("Create form rejected")
		setFlash(c, h.flashStore, flash.Error, "All fields are required.")
		c.Redirect(http.StatusFound, "/create_user")
		return
	}

	imageURL, err := h.uploadImage(c)
	if err != nil {
		logger.WithError(err).Error("Error uploading image")
		setFlash(c, h.flashStore, flash.Error, "Failed to create person.")
		c.Redirect(http.StatusFound, "/create_user")
		return
	}

	if _, err := h.personService.CreatePerson(form.Name, form.Email, parseAge(form.Age), imageURL); err != nil {
		logger.WithError(err).Error("Error creating person")
		if errors.Is(err, models.ErrDuplicateEmail) {
			setFlash(c, h.flashStore, flash.Error, "Email is already in use.")
		} else {
			setFlash(c, h.flashStore, flash.Error, "Failed to create person.")
		}
		c.Redirect(http.StatusFound, "/create_user")
		return
	}

	setFlash(c, h.flashStore, flash.Success, "Person created successfully!")
	c.Redirect(http.StatusFound, "/home")
}

// UpdateForm displays the pre-filled edit form
func (h *PersonHandler) UpdateForm(c *gin.Context) {
	id := c.Param("id")

	person, err := h.personService.GetPerson(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			setFlash(c, h.flashStore, flash.Error, "Person not found.")
		} else {
			logger.WithError(err).WithField("id", id).Error("Error fetching person for update")
			setFlash(c, h.flashStore, flash.Error, "Failed to fetch person for update.")
		}
		c.Redirect(http.StatusFound, "/home")
		return
	}

	data := templateData(c, h.flashStore, gin.H{
		"Title":  "Update " + person.Name,
		"Person": person,
	})

	c.HTML(http.StatusOK, "update", data)
}

// Update handles person updates. The stored image is only replaced when a
// new file was uploaded.
func (h *PersonHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var form personForm
	if err := c.ShouldBind(&form); err != nil {
		logger.WithField("missing", validation.MissingFields(err)).Info("Update form rejected")
		setFlash(c, h.flashStore, flash.Error, "All fields are required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/update_user/%s", id))
		return
	}

	imageURL, err := h.uploadImage(c)
	if err != nil {
		logger.WithError(err).Error("Error uploading image")
		setFlash(c, h.flashStore, flash.Error, "Failed to update person.")
		c.Redirect(http.StatusFound, "/home")
		return
	}

	person, err := h.personService.UpdatePerson(id, form.Name, form.Email, parseAge(form.Age), imageURL)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			setFlash(c, h.flashStore, flash.Error, "Person not found.")
		} else if errors.Is(err, models.ErrDuplicateEmail) {
			setFlash(c, h.flashStore, flash.Error, "Email is already in use.")
			c.Redirect(http.StatusFound, fmt.Sprintf("/update_user/%s", id))
			return
		} else {
			logger.WithError(err).WithField("id", id).Error("Error updating person")
			setFlash(c, h.flashStore, flash.Error, "Failed to update person.")
		}
		c.Redirect(http.StatusFound, "/home")
		return
	}

	setFlash(c, h.flashStore, flash.Success, "Person updated successfully!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/show/%s", person.ID))
}

// Delete handles person deletion
func (h *PersonHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.personService.DeletePerson(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			setFlash(c, h.flashStore, flash.Error, "Person not found.")
		} else {
			logger.WithError(err).WithField("id", id).Error("Error deleting person")
			setFlash(c, h.flashStore, flash.Error, "Failed to delete person.")
		}
		c.Redirect(http.StatusFound, "/home")
		return
	}

	setFlash(c, h.flashStore, flash.Success, "Person deleted successfully!")
	c.Redirect(http.StatusFound, "/home")
}

// uploadImage stores the optional image file and returns its URL, or ""
// when no file was sent.
func (h *PersonHandler) uploadImage(c *gin.Context) (string, error) {
	// Both a multipart form without the file field and a plain form
	// body mean the same thing here: no image was sent.
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	return h.uploader.Upload(c.Request.Context(), file.Filename, contentType, src)
}

// parseAge converts the age field. Validation is presence-only, so a
// non-numeric value simply yields no age.
func parseAge(value string) *int {
	age, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &age
}
