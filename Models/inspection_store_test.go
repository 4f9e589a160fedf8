package Models

import (
	"fmt"
	"testing"

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
	require.NoError(t, Migrate(db))
	return db
}

func sampleRequest() *InspectionRequest {
	return &InspectionRequest{
		InspectorID:     1,
		CustomerName:    "أحمد محمد",
		CustomerPhone:   "0501234567",
		CarType:         "تويوتا",
		CarModel:        "كامري 2020",
		PlateNumber:     "أ ب ج 1234",
		OdometerReading: 60000,
		TotalAmount:     500,
		VATAmount:       75,
		FinalAmount:     575,
		PaidAmount:      575,
		Items: []InspectionItemRequest{
			{Category: "مكانيكا", ServiceDescription: "غيار زيت الماكينة", Quantity: 1, Price: 200, Total: 200},
			{Category: "كشف", ServiceDescription: "كشف على الفرامل", Quantity: 1, Price: 300, Total: 300},
		},
	}
}

func TestInspectionStoreCreateAndGet(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_create"))

	created, err := store.Create(sampleRequest())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "new", created.Status)

	fetched, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "أحمد محمد", fetched.CustomerName)
	assert.EqualValues(t, 575, fetched.FinalAmount)
	require.Len(t, fetched.Items, 2)

	descriptions := []string{fetched.Items[0].ServiceDescription, fetched.Items[1].ServiceDescription}
	assert.Contains(t, descriptions, "غيار زيت الماكينة")
	assert.Contains(t, descriptions, "كشف على الفرامل")
}

func TestInspectionStoreRequiresInspector(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_inspector"))

	req := sampleRequest()
	req.InspectorID = 0
	_, err := store.Create(req)
	assert.ErrorIs(t, err, ErrInspectorRequired)
}

func TestInspectionStoreSkipsBlankItems(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_blank"))

	req := sampleRequest()
	req.Items = append(req.Items, InspectionItemRequest{Quantity: 1})

	created, err := store.Create(req)
	require.NoError(t, err)
	assert.Len(t, created.Items, 2)
}

func TestInspectionStoreUpdateReplacesItems(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_update"))

	created, err := store.Create(sampleRequest())
	require.NoError(t, err)

	req := sampleRequest()
	req.Items = []InspectionItemRequest{
		{Category: "كهرباء", ServiceDescription: "غيار البطارية", Quantity: 1, Price: 450, Total: 450},
	}
	req.Status = "in_progress"

	updated, err := store.Update(created.ID, req)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "غيار البطارية", updated.Items[0].ServiceDescription)
	assert.Equal(t, "in_progress", updated.Status)
}

// blockItemInserts installs a trigger that rejects one specific line item, so
// tests can fail an item batch halfway through.
func blockItemInserts(t *testing.T, db *gorm.DB, description string) {
	t.Helper()
	err := db.Exec(fmt.Sprintf(`CREATE TRIGGER block_item BEFORE INSERT ON inspection_items
		WHEN NEW.service_description = '%s'
		BEGIN SELECT RAISE(ABORT, 'blocked'); END`, description)).Error
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Exec("DROP TRIGGER IF EXISTS block_item")
	})
}

func TestInspectionStoreUpdateRollsBackOnItemFailure(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_update_rollback"))

	created, err := store.Create(sampleRequest())
	require.NoError(t, err)
	require.Len(t, created.Items, 2)

	blockItemInserts(t, store.DB, "عنصر مرفوض")

	req := sampleRequest()
	req.CustomerName = "اسم جديد"
	req.Items = []InspectionItemRequest{
		{Category: "مكانيكا", ServiceDescription: "عنصر سليم", Quantity: 1},
		{Category: "مكانيكا", ServiceDescription: "عنصر مرفوض", Quantity: 1},
	}
	_, err = store.Update(created.ID, req)
	require.Error(t, err)

	// The failed write left nothing behind: header and item set are the
	// pre-update ones, and no term from the failed batch was recorded.
	current, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "أحمد محمد", current.CustomerName)
	require.Len(t, current.Items, 2)

	descriptions := []string{current.Items[0].ServiceDescription, current.Items[1].ServiceDescription}
	assert.Contains(t, descriptions, "غيار زيت الماكينة")
	assert.Contains(t, descriptions, "كشف على الفرامل")

	terms, err := store.Terms()
	require.NoError(t, err)
	assert.NotContains(t, terms, "عنصر سليم")
}

func TestInspectionStoreCreateRollsBackOnItemFailure(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_create_rollback"))

	blockItemInserts(t, store.DB, "عنصر مرفوض")

	req := sampleRequest()
	req.Items = append(req.Items, InspectionItemRequest{
		Category: "مكانيكا", ServiceDescription: "عنصر مرفوض", Quantity: 1,
	})
	_, err := store.Create(req)
	require.Error(t, err)

	var headers int64
	require.NoError(t, store.DB.Model(&Inspection{}).Count(&headers).Error)
	assert.Zero(t, headers)

	var items int64
	require.NoError(t, store.DB.Model(&InspectionItem{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestInspectionStoreUpdateUnknownID(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_update_missing"))

	_, err := store.Update(999, sampleRequest())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInspectionStoreTermsGrowWithoutDuplicates(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_terms"))

	_, err := store.Create(sampleRequest())
	require.NoError(t, err)

	// Same descriptions again, plus one new
	req := sampleRequest()
	req.Items = append(req.Items, InspectionItemRequest{
		Category: "تكييف", ServiceDescription: "غيار فلتر المكيف", Quantity: 1,
	})
	_, err = store.Create(req)
	require.NoError(t, err)

	terms, err := store.Terms()
	require.NoError(t, err)
	assert.Len(t, terms, 3)
	assert.Contains(t, terms, "غيار فلتر المكيف")
}

func TestInspectionStoreSearch(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_search"))

	first, err := store.Create(sampleRequest())
	require.NoError(t, err)

	other := sampleRequest()
	other.CustomerPhone = "0559876543"
	other.PlateNumber = "د هـ و 9999"
	_, err = store.Create(other)
	require.NoError(t, err)

	// Empty query returns nothing rather than the full table
	results, err := store.Search("")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = store.Search("050123")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, first.ID, results[0].ID)

	results, err = store.Search("9999")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "د هـ و 9999", results[0].PlateNumber)

	results, err = store.Search(fmt.Sprintf("%d", first.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestInspectionStoreSearchLimit(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_search_limit"))

	for i := 0; i < SearchLimit+5; i++ {
		req := sampleRequest()
		req.CustomerPhone = "0500000000"
		_, err := store.Create(req)
		require.NoError(t, err)
	}

	results, err := store.Search("0500000000")
	require.NoError(t, err)
	assert.Len(t, results, SearchLimit)
}

func TestInspectionStoreByInspectorAndMonthlyCount(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_inspector_stats"))

	_, err := store.Create(sampleRequest())
	require.NoError(t, err)

	other := sampleRequest()
	other.InspectorID = 2
	_, err = store.Create(other)
	require.NoError(t, err)

	mine, err := store.ByInspector(1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.NotEmpty(t, mine[0].Items)

	count, err := store.MonthlyCount(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestInspectionStoreList(t *testing.T) {
	store := NewInspectionStore(openTestDB(t, "store_list"))

	for i := 0; i < 3; i++ {
		_, err := store.Create(sampleRequest())
		require.NoError(t, err)
	}

	page, total, err := store.List(0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 2)
}
