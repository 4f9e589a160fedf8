package Models

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the file-backed store, migrates the schema and seeds the
// default records. The handle is returned to the caller and passed down to
// controllers explicitly; nothing holds it as package state.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	// Seeding failures are logged, never fatal: the server still serves
	// whatever data is already there.
	if err := SeedDefaults(db); err != nil {
		log.Printf("Error seeding default data: %v", err)
	}

	return db, nil
}

// Migrate creates the schema in dependency order.
func Migrate(db *gorm.DB) error {
	// 1. Tables without foreign keys
	if err := db.AutoMigrate(
		&User{},
		&Section{},
		&InspectionTerm{},
		&Service{},
		&InspectionBundle{},
	); err != nil {
		return err
	}

	// 2. Tables referencing the base ones
	if err := db.AutoMigrate(
		&Employee{},
		&InspectionBundleItem{},
		&Lift{},
	); err != nil {
		return err
	}

	// 3. Everything hanging off employees
	return db.AutoMigrate(
		&Entry{},
		&Withdrawal{},
		&Absence{},
		&LeaveRequest{},
		&Attendance{},
		&Message{},
		&Inspection{},
		&InspectionItem{},
		&InspectionTechnician{},
	)
}

// SeedDefaults inserts the admin account, the four workshop sections, the five
// lifts and the standard contract terms. Every insert is skip-if-present so
// re-running is harmless.
func SeedDefaults(db *gorm.DB) error {
	var adminCount int64
	if err := db.Model(&User{}).Where("username = ?", "admin").Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		passwordByte, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := User{
			Name:       "admin",
			Username:   "admin",
			Password:   passwordByte,
			Permission: 3,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{"مكانيكا", "كهرباء", "كشف", "ادارة"} {
		section := Section{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&section).Error; err != nil {
			return err
		}
	}

	for _, id := range []string{"A", "B", "C", "D", "E"} {
		lift := Lift{ID: id, Name: "رافعة " + id, Status: LiftIdle}
		if err := db.Where("id = ?", id).FirstOrCreate(&lift).Error; err != nil {
			return err
		}
	}

	return seedContractTerms(db)
}

// seedContractTerms loads the standard quote footer clauses into the term
// vocabulary so fresh installs offer them immediately.
func seedContractTerms(db *gorm.DB) error {
	contractTerms := []string{
		"يتم دفع كامل المبلغ قبل استلام السيارة.",
		"في حالة احتياج لقطع الغيار يبلغ صاحبها بما يحتاج ويعطي مهلة خمسة أيام لتأمين القطع، وفي حالة تأخره عن تأمين القطع أو في حالة تم تجهيز السيارة ولم يستلمها العميل لأكثر من 3 أيام فإن المركز غير مسؤول عن السيارة أو عن أي مخالفات تصدر عليها.",
		"المركز لا يتحمل مسؤولية تغيير زيت الجيربكس أو تزويد ((لا يوجد ضمان)).",
		"المركز غير مسؤول عن القطع التي تم تغييرها وتركها في المركز عن مدة تزيد عن 3 أيام.",
		"المركز غير مسؤول عن الأعطال التي تظهر والتي لم يتم الاتفاق على إصلاحها.",
		"المركز غير مسؤول عن كشف السيارة بعد 7 أيام من تاريخ الكشف.",
	}

	for _, text := range contractTerms {
		term := InspectionTerm{Term: text}
		if err := db.Where("term = ?", text).FirstOrCreate(&term).Error; err != nil {
			return err
		}
	}
	return nil
}
