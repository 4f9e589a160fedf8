package Models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInspectorRequired marks a create request with no owning employee.
var ErrInspectorRequired = errors.New("inspector_id is required")

// SearchLimit caps every search result set.
const SearchLimit = 20

// InspectionStore owns all reads and writes of inspection headers and their
// line items. Multi-row writes run in one transaction so a failed item insert
// never leaves a header without its items (or a half-replaced item set).
type InspectionStore struct {
	DB *gorm.DB
}

func NewInspectionStore(db *gorm.DB) *InspectionStore {
	return &InspectionStore{DB: db}
}

// Create inserts the header, its items and the term vocabulary entries
// atomically and returns the stored inspection.
func (s *InspectionStore) Create(req *InspectionRequest) (*Inspection, error) {
	if req.InspectorID == 0 {
		return nil, ErrInspectorRequired
	}

	inspection := &Inspection{
		InspectorID:       req.InspectorID,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		CarType:           req.CarType,
		CarColor:          req.CarColor,
		CarModel:          req.CarModel,
		PlateNumber:       req.PlateNumber,
		OdometerReading:   req.OdometerReading,
		VIN:               req.VIN,
		TotalAmount:       req.TotalAmount,
		VATAmount:         req.VATAmount,
		FinalAmount:       req.FinalAmount,
		PaidAmount:        req.PaidAmount,
		RemainingAmount:   req.RemainingAmount,
		Status:            req.Status,
		JobOrderNotes:     req.JobOrderNotes,
		CarDefectsDiagram: req.CarDefectsDiagram,
	}
	if inspection.Status == "" {
		inspection.Status = "new"
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inspection).Error; err != nil {
			return err
		}
		if err := insertItems(tx, inspection.ID, req.Items); err != nil {
			return err
		}
		if err := replaceTechnicians(tx, inspection.ID, req.TechnicianIDs); err != nil {
			return err
		}
		return upsertTerms(tx, req.Items)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(inspection.ID)
}

// Update overwrites the header in place and replaces the item set wholesale:
// delete everything for the id, re-insert what the client sent. Items are
// never patched individually.
func (s *InspectionStore) Update(id uint, req *InspectionRequest) (*Inspection, error) {
	var inspection Inspection
	if err := s.DB.First(&inspection, id).Error; err != nil {
		return nil, err
	}

	inspection.InspectorID = req.InspectorID
	inspection.CustomerName = req.CustomerName
	inspection.CustomerPhone = req.CustomerPhone
	inspection.CarType = req.CarType
	inspection.CarColor = req.CarColor
	inspection.CarModel = req.CarModel
	inspection.PlateNumber = req.PlateNumber
	inspection.OdometerReading = req.OdometerReading
	inspection.VIN = req.VIN
	inspection.TotalAmount = req.TotalAmount
	inspection.VATAmount = req.VATAmount
	inspection.FinalAmount = req.FinalAmount
	inspection.PaidAmount = req.PaidAmount
	inspection.RemainingAmount = req.RemainingAmount
	inspection.JobOrderNotes = req.JobOrderNotes
	if req.Status != "" {
		inspection.Status = req.Status
	}
	if req.CarDefectsDiagram != nil {
		inspection.CarDefectsDiagram = req.CarDefectsDiagram
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&inspection).Error; err != nil {
			return err
		}
		if err := tx.Where("inspection_id = ?", inspection.ID).Delete(&InspectionItem{}).Error; err != nil {
			return err
		}
		if err := insertItems(tx, inspection.ID, req.Items); err != nil {
			return err
		}
		if err := replaceTechnicians(tx, inspection.ID, req.TechnicianIDs); err != nil {
			return err
		}
		return upsertTerms(tx, req.Items)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(inspection.ID)
}

// Get returns the header with its current item list, or gorm.ErrRecordNotFound.
func (s *InspectionStore) Get(id uint) (*Inspection, error) {
	var inspection Inspection
	err := s.DB.Preload("Items").Preload("Technicians").First(&inspection, id).Error
	if err != nil {
		return nil, err
	}
	return &inspection, nil
}

// Search matches the query as a substring against the textual id, the customer
// phone and the plate number, newest first, capped at SearchLimit rows. An
// empty query returns an empty list, never the full table.
func (s *InspectionStore) Search(query string) ([]Inspection, error) {
	inspections := []Inspection{}
	if query == "" {
		return inspections, nil
	}

	pattern := "%" + query + "%"
	err := s.DB.
		Where("CAST(id AS TEXT) LIKE ? OR customer_phone LIKE ? OR plate_number LIKE ?",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Limit(SearchLimit).
		Find(&inspections).Error
	return inspections, err
}

// ByInspector lists an inspector's inspections newest first, items included.
func (s *InspectionStore) ByInspector(inspectorID uint) ([]Inspection, error) {
	inspections := []Inspection{}
	err := s.DB.Where("inspector_id = ?", inspectorID).
		Preload("Items").
		Order("created_at DESC").
		Find(&inspections).Error
	return inspections, err
}

// MonthlyCount counts the inspector's inspections since the first day of the
// current calendar month.
func (s *InspectionStore) MonthlyCount(inspectorID uint) (int64, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var count int64
	err := s.DB.Model(&Inspection{}).
		Where("inspector_id = ? AND created_at >= ?", inspectorID, monthStart).
		Count(&count).Error
	return count, err
}

// List returns a page of inspections with items, newest first, plus the total.
func (s *InspectionStore) List(offset, limit int) ([]Inspection, int64, error) {
	var total int64
	if err := s.DB.Model(&Inspection{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	inspections := []Inspection{}
	err := s.DB.Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&inspections).Error
	return inspections, total, err
}

// Terms returns the full autocomplete vocabulary.
func (s *InspectionStore) Terms() ([]string, error) {
	terms := []string{}
	err := s.DB.Model(&InspectionTerm{}).Order("term").Pluck("term", &terms).Error
	return terms, err
}

func insertItems(tx *gorm.DB, inspectionID uint, items []InspectionItemRequest) error {
	for _, item := range items {
		if item.ServiceDescription == "" && item.Category == "" {
			continue
		}
		row := InspectionItem{
			InspectionID:       inspectionID,
			Category:           item.Category,
			ServiceDescription: item.ServiceDescription,
			Quantity:           item.Quantity,
			Price:              item.Price,
			Total:              item.Total,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceTechnicians(tx *gorm.DB, inspectionID uint, technicianIDs []uint) error {
	if err := tx.Where("inspection_id = ?", inspectionID).Delete(&InspectionTechnician{}).Error; err != nil {
		return err
	}
	for _, techID := range technicianIDs {
		link := InspectionTechnician{InspectionID: inspectionID, TechnicianID: techID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// upsertTerms grows the vocabulary with every item description; duplicates are
// ignored so the table holds each term exactly once.
func upsertTerms(tx *gorm.DB, items []InspectionItemRequest) error {
	for _, item := range items {
		if item.ServiceDescription == "" {
			continue
		}
		term := InspectionTerm{Term: item.ServiceDescription}
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&term).Error
		if err != nil {
			return err
		}
	}
	return nil
}
