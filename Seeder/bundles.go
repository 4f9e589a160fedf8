package Seeder

import (
	"fmt"
	"strconv"

	"Warsha/Models"

	"gorm.io/gorm"
)

// Periodic maintenance covers odometer readings from 10,000 to 160,000 km in
// 10,000 km steps. Bundle names follow this pattern; regeneration keys on it.
const (
	IntervalStep  = 10000
	IntervalFirst = 10000
	IntervalLast  = 160000

	periodicNamePattern = "صيانة % كم"
	bundleIcon          = "🚗"
)

// Action codes on a rule row decide the label prefix of the generated item.
const (
	ActionInspect   = "I"
	ActionClean     = "C"
	ActionRetighten = "T"
	ActionReplace   = "R"
	ActionAdd       = "F"
)

type ruleItem struct {
	Name     string
	Code     string
	Category string
}

// commonItems are included at every interval.
var commonItems = []ruleItem{
	{"تلييس المقاعد والأرضيات", ActionInspect, "عام"},
	{"أحزمة الأمان وأقفالها", ActionInspect, "كشف"},
	{"الإنارة والمساحات والسوائل", ActionInspect, "كشف"},
	{"السيور", ActionInspect, "كشف"},
	{"زيت الماكينة", ActionReplace, "مكانيكا"},
	{"فلتر زيت الماكينة", ActionReplace, "مكانيكا"},
	{"نظام التبريد", ActionInspect, "كشف"},
	{"مواسير البنزين", ActionInspect, "كشف"},
	{"مستوى سائل البطارية", ActionInspect, "كشف"},
	{"خطوط الفرامل والخراطيم", ActionInspect, "كشف"},
	{"فرامل اليد", ActionInspect, "كشف"},
	{"وحدة كبح معززة", ActionInspect, "كشف"},
	{"هوبات وأقمشة الفرامل", ActionInspect, "كشف"},
	{"عجلة القيادة", ActionInspect, "كشف"},
	{"نظام التعليق", ActionInspect, "كشف"},
	{"جلود العكوس", ActionInspect, "كشف"},
	{"نظام العادم", ActionInspect, "كشف"},
	{"الاطارات", ActionInspect, "كشف"},
	{"منظف الرواسب (بخاخات)", ActionAdd, "خدمة سريعة"},
	{"عكس الاطارات", ActionReplace, "خدمة سريعة"},
}

// ActionPrefix maps a rule code to the human-readable verb of the generated
// label. Unknown codes fall back to an empty prefix rather than failing.
func ActionPrefix(code string) string {
	switch code {
	case ActionInspect:
		return "كشف على"
	case ActionClean:
		return "تنظيف"
	case ActionRetighten:
		return "تربيط"
	case ActionReplace:
		return "غيار"
	case ActionAdd:
		return "إضافة"
	default:
		return ""
	}
}

// intervalItems evaluates the rule table for one odometer interval.
func intervalItems(km int) []ruleItem {
	items := make([]ruleItem, len(commonItems))
	copy(items, commonItems)

	// فلتر الهواء: غيار كل 20,000 كم وإلا تنظيف
	if km%20000 == 0 {
		items = append(items, ruleItem{"فلتر الهواء", ActionReplace, "مكانيكا"})
	} else {
		items = append(items, ruleItem{"فلتر الهواء", ActionClean, "خدمة سريعة"})
	}

	// البواجي كل 60,000 كم
	if km%60000 == 0 {
		items = append(items, ruleItem{"البواجي", ActionReplace, "مكانيكا"})
	}

	// سائل الفرامل: غيار كل 40,000 كم وإلا كشف
	if km%40000 == 0 {
		items = append(items, ruleItem{"سائل الفرامل", ActionReplace, "مكانيكا"})
	} else {
		items = append(items, ruleItem{"سائل الفرامل", ActionInspect, "كشف"})
	}

	if km%20000 == 0 {
		items = append(items, ruleItem{"المزاليج والصواميل (أسفل السيارة)", ActionRetighten, "مكانيكا"})
		items = append(items, ruleItem{"فلتر المكيف", ActionReplace, "تكييف"})
	}

	// فلتر البنزين كل 60,000 كم
	if km%60000 == 0 {
		items = append(items, ruleItem{"فلتر البنزين", ActionReplace, "مكانيكا"})
	}

	return items
}

// BuildBundle produces the named bundle for one odometer interval with its
// computed item list. Generation is deterministic: the same km always yields
// the same labels in the same order.
func BuildBundle(km int) Models.InspectionBundle {
	bundle := Models.InspectionBundle{
		Name: BundleName(km),
		Icon: bundleIcon,
	}
	for _, item := range intervalItems(km) {
		label := item.Name
		if prefix := ActionPrefix(item.Code); prefix != "" {
			label = prefix + " " + item.Name
		}
		bundle.Items = append(bundle.Items, Models.InspectionBundleItem{
			ServiceDescription: label,
			Category:           item.Category,
		})
	}
	return bundle
}

// BuildPeriodicBundles builds every bundle of the 10,000–160,000 km range.
func BuildPeriodicBundles() []Models.InspectionBundle {
	var bundles []Models.InspectionBundle
	for km := IntervalFirst; km <= IntervalLast; km += IntervalStep {
		bundles = append(bundles, BuildBundle(km))
	}
	return bundles
}

// BundleName renders the canonical periodic bundle name for an interval.
func BundleName(km int) string {
	return fmt.Sprintf("صيانة %s كم", formatThousands(km))
}

func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	out := ""
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(digit)
	}
	return out
}

// RegeneratePeriodicBundles drops every bundle matching the periodic naming
// pattern and rebuilds the full range, atomically. Custom bundles with other
// names are untouched. This is the explicit "regenerate" operation; it is
// never triggered implicitly at startup.
func RegeneratePeriodicBundles(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing []Models.InspectionBundle
		if err := tx.Where("name LIKE ?", periodicNamePattern).Find(&existing).Error; err != nil {
			return err
		}
		for _, bundle := range existing {
			// Hard delete: the unique name index must be free for the rebuild.
			if err := tx.Unscoped().Where("bundle_id = ?", bundle.ID).Delete(&Models.InspectionBundleItem{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&Models.InspectionBundle{}, bundle.ID).Error; err != nil {
				return err
			}
		}
		return insertPeriodicBundles(tx)
	})
}

// SeedPeriodicBundles generates the periodic range only when none of it exists
// yet. Existing bundles, periodic or not, are left exactly as they are; use
// RegeneratePeriodicBundles to rebuild.
func SeedPeriodicBundles(db *gorm.DB) error {
	var count int64
	err := db.Model(&Models.InspectionBundle{}).
		Where("name LIKE ?", periodicNamePattern).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(insertPeriodicBundles)
}

func insertPeriodicBundles(tx *gorm.DB) error {
	for _, bundle := range BuildPeriodicBundles() {
		b := bundle
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
	}
	return nil
}
