package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peoplebook/peoplebook/internal/flash"
	"github.com/peoplebook/peoplebook/internal/services"
	"github.com/peoplebook/peoplebook/pkg/logger"
	"github.com/xuri/excelize/v2"
)

type ExportHandler struct {
	personService *services.PersonService
	flashStore    flash.Store
}

func NewExportHandler(personService *services.PersonService, flashStore flash.Store) *ExportHandler {
	return &ExportHandler{
		personService: personService,
		flashStore:    flashStore,
	}
}

// Export downloads the full people list as a spreadsheet
func (h *ExportHandler) Export(c *gin.Context) {
	people, err := h.personService.GetAllPeople()
	if err != nil {
		logger.WithError(err).Error("Error exporting people")
		setFlash(c, h.flashStore, flash.Error, "Failed to export people.")
		c.Redirect(http.StatusFound, "/home")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "People"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Email", "Age", "Image", "Created At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, person := range people {
		values := []interface{}{
			person.ID,
			person.Name,
			person.Email,
			"",
			"",
			person.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if person.Age != nil {
			values[3] = *person.Age
		}
		if person.ImageURL != nil {
			values[4] = *person.ImageURL
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="people.xlsx"`)

	if err := f.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Error writing export")
	}
}
