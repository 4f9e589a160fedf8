package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Inspection is one vehicle visit: customer and vehicle descriptors plus the
// financial summary as the front desk entered it. Monetary fields are stored
// exactly as submitted and never recomputed on the server.
type Inspection struct {
	gorm.Model
	InspectorID     uint    `json:"inspector_id" gorm:"not null;index"`
	CustomerName    string  `json:"customer_name" gorm:"size:255"`
	CustomerPhone   string  `json:"customer_phone" gorm:"size:50;index"`
	CarType         string  `json:"car_type" gorm:"size:255"`
	CarColor        string  `json:"car_color" gorm:"size:50"`
	CarModel        string  `json:"car_model" gorm:"size:255"`
	PlateNumber     string  `json:"plate_number" gorm:"size:50;index"`
	OdometerReading int64   `json:"odometer_reading"`
	VIN             string  `json:"vin" gorm:"size:50"`
	TotalAmount     float64 `json:"total_amount"`
	VATAmount       float64 `json:"vat_amount"`
	FinalAmount     float64 `json:"final_amount"`
	PaidAmount      float64 `json:"paid_amount"`
	RemainingAmount float64 `json:"remaining_amount"`

	Status            string         `json:"status" gorm:"size:50;default:new"`
	JobOrderNotes     string         `json:"job_order_notes" gorm:"type:text"`
	CarDefectsDiagram datatypes.JSON `json:"car_defects_diagram"`

	// Relationships
	Items       []InspectionItem       `json:"items,omitempty" gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE"`
	Technicians []InspectionTechnician `json:"technicians,omitempty" gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE"`

	InspectorName string `json:"inspector_name,omitempty" gorm:"->;-:migration"`
}

// InspectionItem is a quoted line. The total is the client's number, not a
// server-side product of quantity and price.
type InspectionItem struct {
	gorm.Model
	InspectionID       uint    `json:"inspection_id" gorm:"not null;index"`
	Category           string  `json:"category" gorm:"size:255"`
	ServiceDescription string  `json:"service_description" gorm:"size:500"`
	Quantity           float64 `json:"quantity"`
	Price              float64 `json:"price"`
	Total              float64 `json:"total"`
}

// InspectionTechnician links an inspection to the employees working it.
type InspectionTechnician struct {
	gorm.Model
	InspectionID uint `json:"inspection_id" gorm:"not null;index"`
	TechnicianID uint `json:"technician_id" gorm:"not null;index"`
}

// InspectionTerm is the autocomplete vocabulary. Append-only: every service
// description ever saved stays here even after its inspection is edited.
type InspectionTerm struct {
	gorm.Model
	Term string `json:"term" gorm:"size:500;uniqueIndex;not null"`
}

// Service is a priced catalog entry, unique per (category, name).
type Service struct {
	gorm.Model
	Category string  `json:"category" gorm:"size:255;not null;uniqueIndex:idx_services_category_name"`
	Name     string  `json:"name" gorm:"size:255;not null;uniqueIndex:idx_services_category_name"`
	Price    float64 `json:"price"`
}

// InspectionBundle is a named template whose items pre-fill a draft inspection.
type InspectionBundle struct {
	gorm.Model
	Name string `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Icon string `json:"icon" gorm:"size:50"`

	Items []InspectionBundleItem `json:"items,omitempty" gorm:"foreignKey:BundleID;constraint:OnDelete:CASCADE"`
}

type InspectionBundleItem struct {
	gorm.Model
	BundleID           uint   `json:"bundle_id" gorm:"not null;index"`
	ServiceDescription string `json:"service_description" gorm:"size:500;not null"`
	Category           string `json:"category" gorm:"size:255"`
}

type InspectionRequest struct {
	InspectorID       uint                     `json:"inspector_id" validate:"required"`
	CustomerName      string                   `json:"customer_name"`
	CustomerPhone     string                   `json:"customer_phone"`
	CarType           string                   `json:"car_type"`
	CarColor          string                   `json:"car_color"`
	CarModel          string                   `json:"car_model"`
	PlateNumber       string                   `json:"plate_number"`
	OdometerReading   int64                    `json:"odometer_reading"`
	VIN               string                   `json:"vin"`
	TotalAmount       float64                  `json:"total_amount"`
	VATAmount         float64                  `json:"vat_amount"`
	FinalAmount       float64                  `json:"final_amount"`
	PaidAmount        float64                  `json:"paid_amount"`
	RemainingAmount   float64                  `json:"remaining_amount"`
	Status            string                   `json:"status"`
	JobOrderNotes     string                   `json:"job_order_notes"`
	CarDefectsDiagram datatypes.JSON           `json:"car_defects_diagram"`
	TechnicianIDs     []uint                   `json:"technician_ids"`
	Items             []InspectionItemRequest  `json:"items"`
}

type InspectionItemRequest struct {
	Category           string  `json:"category"`
	ServiceDescription string  `json:"service_description"`
	Quantity           float64 `json:"quantity"`
	Price              float64 `json:"price"`
	Total              float64 `json:"total"`
}

type BundleRequest struct {
	Name  string              `json:"name" validate:"required"`
	Icon  string              `json:"icon"`
	Items []BundleItemRequest `json:"items"`
}

type BundleItemRequest struct {
	ServiceDescription string `json:"service_description"`
	Category           string `json:"category"`
}
