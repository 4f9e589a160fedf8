package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB     *gorm.DB
	DBPath string
}

func NewReportController(db *gorm.DB, dbPath string) *ReportController {
	return &ReportController{DB: db, DBPath: dbPath}
}

// ExportInspections writes the inspection register to an Excel workbook,
// optionally limited to a date range.
// GET /api/reports/inspections?from=&to=
func (rc *ReportController) ExportInspections(c *fiber.Ctx) error {
	query := rc.DB.Model(&Models.Inspection{}).
		Select("inspections.*, users.name AS inspector_name").
		Joins("LEFT JOIN users ON inspections.inspector_id = users.id")

	if from := c.Query("from"); from != "" {
		query = query.Where("inspections.created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("inspections.created_at <= ?", to)
	}

	inspections := []Models.Inspection{}
	if err := query.Order("inspections.created_at DESC").Scan(&inspections).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب الكشوفات",
		})
	}

	buf, err := buildInspectionWorkbook(inspections)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Failed to build Excel file: %v", err),
		})
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("inspections_export_%s.xlsx", timestamp)

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Set("Content-Length", fmt.Sprintf("%d", buf.Len()))

	return c.Send(buf.Bytes())
}

func buildInspectionWorkbook(inspections []Models.Inspection) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheetName := "Inspections"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"ID", "Date", "Inspector", "Customer Name", "Customer Phone",
		"Car Type", "Car Model", "Plate Number", "Odometer", "Status",
		"Total Amount", "VAT Amount", "Final Amount", "Paid Amount", "Remaining Amount",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, inspection := range inspections {
		row := rowIndex + 2

		values := []interface{}{
			inspection.ID,
			inspection.CreatedAt.Format("2006-01-02 15:04:05"),
			inspection.InspectorName,
			inspection.CustomerName,
			inspection.CustomerPhone,
			inspection.CarType,
			inspection.CarModel,
			inspection.PlateNumber,
			inspection.OdometerReading,
			inspection.Status,
			inspection.TotalAmount,
			inspection.VATAmount,
			inspection.FinalAmount,
			inspection.PaidAmount,
			inspection.RemainingAmount,
		}

		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 15)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}

	return &buf, nil
}

// DownloadBackup streams the SQLite database file.
// GET /api/backup
func (rc *ReportController) DownloadBackup(c *fiber.Ctx) error {
	filename := fmt.Sprintf("backup_%s.db", time.Now().Format("20060102_150405"))
	return c.Download(rc.DBPath, filename)
}
