package competitions

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"contesthub/services"
	"contesthub/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportCompetitionsExcel writes every competition into an Excel workbook
// @Summary Export competitions to Excel
// @Description Download all competitions as an .xlsx workbook
// @Tags Competitions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /admin/competitions/export [get]
// @Security Bearer
func ExportCompetitionsExcel(c *gin.Context) {
	competitions, err := services.ListCompetitions()
	if err != nil {
		log.Printf("Error fetching competitions for export: %v", err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing export workbook: %v", err)
		}
	}()

	sheet := "Competitions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Title", "Category", "Difficulty", "Deadline", "Prize", "Entry Fee", "Status", "Display Status", "Created By", "Created At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	now := time.Now()
	for row, comp := range competitions {
		values := []interface{}{
			comp.ID,
			comp.Title,
			comp.Category,
			comp.Difficulty,
			comp.Deadline.Format(time.RFC3339),
			fmt.Sprintf("%s %s", comp.PrizeValue, comp.PrizeCurrency),
			comp.EntryFee,
			comp.Status,
			utils.DisplayStatus(comp, now),
			comp.CreatedBy,
			comp.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("competitions_%s.xlsx", now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Printf("Error writing export workbook: %v", err)
	}
}
