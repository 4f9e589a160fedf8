package Seeder

import (
	"fmt"
	"testing"

	"Warsha/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))
	return db
}

func bundleLabels(bundle Models.InspectionBundle) []string {
	labels := make([]string, 0, len(bundle.Items))
	for _, item := range bundle.Items {
		labels = append(labels, item.ServiceDescription)
	}
	return labels
}

func TestBuildPeriodicBundlesCoversFullRange(t *testing.T) {
	bundles := BuildPeriodicBundles()
	require.Len(t, bundles, 16)

	assert.Equal(t, "صيانة 10,000 كم", bundles[0].Name)
	assert.Equal(t, "صيانة 160,000 كم", bundles[15].Name)
	for _, bundle := range bundles {
		assert.Equal(t, "🚗", bundle.Icon)
		assert.NotEmpty(t, bundle.Items)
	}
}

func TestBuildBundleAppliesIntervalRules(t *testing.T) {
	at60k := bundleLabels(BuildBundle(60000))
	assert.Contains(t, at60k, "غيار فلتر الهواء")
	assert.Contains(t, at60k, "غيار البواجي")
	assert.Contains(t, at60k, "غيار فلتر البنزين")
	assert.Contains(t, at60k, "تربيط المزاليج والصواميل (أسفل السيارة)")
	assert.Contains(t, at60k, "غيار فلتر المكيف")
	assert.NotContains(t, at60k, "غيار سائل الفرامل")
	assert.Contains(t, at60k, "كشف على سائل الفرامل")

	at50k := bundleLabels(BuildBundle(50000))
	assert.Contains(t, at50k, "تنظيف فلتر الهواء")
	assert.NotContains(t, at50k, "غيار فلتر الهواء")
	assert.NotContains(t, at50k, "غيار البواجي")
	assert.NotContains(t, at50k, "غيار فلتر البنزين")
	assert.NotContains(t, at50k, "غيار فلتر المكيف")

	at40k := bundleLabels(BuildBundle(40000))
	assert.Contains(t, at40k, "غيار سائل الفرامل")
	assert.Contains(t, at40k, "غيار فلتر الهواء")
}

func TestBuildBundleIncludesCommonItemsEverywhere(t *testing.T) {
	for km := IntervalFirst; km <= IntervalLast; km += IntervalStep {
		labels := bundleLabels(BuildBundle(km))
		assert.Contains(t, labels, "غيار زيت الماكينة", "km=%d", km)
		assert.Contains(t, labels, "غيار فلتر زيت الماكينة", "km=%d", km)
		assert.Contains(t, labels, "كشف على الاطارات", "km=%d", km)
	}
}

func TestBuildBundleIsDeterministic(t *testing.T) {
	first := BuildBundle(80000)
	second := BuildBundle(80000)
	assert.Equal(t, first, second)
}

func TestActionPrefix(t *testing.T) {
	assert.Equal(t, "كشف على", ActionPrefix(ActionInspect))
	assert.Equal(t, "تنظيف", ActionPrefix(ActionClean))
	assert.Equal(t, "تربيط", ActionPrefix(ActionRetighten))
	assert.Equal(t, "غيار", ActionPrefix(ActionReplace))
	assert.Equal(t, "إضافة", ActionPrefix(ActionAdd))
	assert.Equal(t, "", ActionPrefix("X"))
}

func TestSeedPeriodicBundlesSkipsWhenPresent(t *testing.T) {
	db := openTestDB(t, "seed_bundles")

	require.NoError(t, SeedPeriodicBundles(db))

	var count int64
	require.NoError(t, db.Model(&Models.InspectionBundle{}).Count(&count).Error)
	assert.EqualValues(t, 16, count)

	// Second run must leave the table untouched.
	require.NoError(t, SeedPeriodicBundles(db))
	require.NoError(t, db.Model(&Models.InspectionBundle{}).Count(&count).Error)
	assert.EqualValues(t, 16, count)
}

func TestRegeneratePreservesCustomBundles(t *testing.T) {
	db := openTestDB(t, "regen_bundles")

	require.NoError(t, SeedPeriodicBundles(db))

	custom := Models.InspectionBundle{
		Name: "باقة الفحص الشامل",
		Icon: "🔧",
		Items: []Models.InspectionBundleItem{
			{ServiceDescription: "فحص كمبيوتر", Category: "كشف"},
		},
	}
	require.NoError(t, db.Create(&custom).Error)

	require.NoError(t, RegeneratePeriodicBundles(db))

	var count int64
	require.NoError(t, db.Model(&Models.InspectionBundle{}).Count(&count).Error)
	assert.EqualValues(t, 17, count)

	var kept Models.InspectionBundle
	require.NoError(t, db.Preload("Items").Where("name = ?", custom.Name).First(&kept).Error)
	require.Len(t, kept.Items, 1)

	// Regenerated bundles carry the computed item lists.
	var rebuilt Models.InspectionBundle
	require.NoError(t, db.Preload("Items").Where("name = ?", BundleName(60000)).First(&rebuilt).Error)
	assert.Contains(t, bundleLabels(rebuilt), "غيار البواجي")
}
