package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/brewstation/backend/internal/models"
)

func TestExportService_ExportRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewExportService(db, nil)

	malt := models.Malt{Name: "Pilsen", Supplier: "Agraria", PricePerKg: 8.50, Active: true}
	require.NoError(t, db.Create(&malt).Error)
	hop := models.Hop{Name: "Citra", Supplier: "YCH", PricePerKg: 520, Active: true}
	require.NoError(t, db.Create(&hop).Error)
	yeast := models.Yeast{Name: "US-05", Supplier: "Fermentis", PricePerUnit: 28, Active: true}
	require.NoError(t, db.Create(&yeast).Error)

	data, filename, err := svc.ExportCatalog()
	require.NoError(t, err)
	assert.Contains(t, filename, "catalog_")
	assert.Contains(t, filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Malts")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Pilsen", rows[1][1])

	for _, sheet := range []string{"Hops", "Yeasts"} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	}

	// Feeding the export straight back in changes nothing but counts every row.
	summary, err := svc.ImportCatalog(data)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 3, summary.Updated)
	assert.Equal(t, 0, summary.Created)
}

func TestExportService_ImportUpdatesPriceByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewExportService(db, nil)

	malt := models.Malt{Name: "Vienna", Supplier: "Weyermann", PricePerKg: 12, Active: true}
	require.NoError(t, db.Create(&malt).Error)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", "name", "supplier", "type", "color_ebc", "price_per_kg", "active"}))
	_, err := f.NewSheet("Malts")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Malts", "A1", &[]interface{}{"id", "name", "supplier", "type", "color_ebc", "price_per_kg", "active"}))
	require.NoError(t, f.SetSheetRow("Malts", "A2", &[]interface{}{malt.ID.String(), "Vienna", "Weyermann", "", "", "13,90", "true"}))

	buf := &bytes.Buffer{}
	require.NoError(t, f.Write(buf))

	summary, err := svc.ImportCatalog(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)

	var reloaded models.Malt
	require.NoError(t, db.First(&reloaded, "id = ?", malt.ID).Error)
	assert.Equal(t, 13.90, reloaded.PricePerKg)
}

func TestExportService_ImportCreatesRowsWithoutID(t *testing.T) {
	db := newTestDB(t)
	svc := NewExportService(db, nil)

	f := excelize.NewFile()
	_, err := f.NewSheet("Hops")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Hops", "A1", &[]interface{}{"id", "name", "supplier", "form", "origin", "alpha_acid_percent", "price_per_kg", "active"}))
	require.NoError(t, f.SetSheetRow("Hops", "A2", &[]interface{}{"", "Saaz", "Bohemia Hop", "pellet", "CZ", "3.5", "410.00", "true"}))
	require.NoError(t, f.SetSheetRow("Hops", "A3", &[]interface{}{"", "Mosaic", "YCH", "pellet", "US", "11.5", "", "true"}))

	buf := &bytes.Buffer{}
	require.NoError(t, f.Write(buf))

	summary, err := svc.ImportCatalog(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Skipped)

	var hop models.Hop
	require.NoError(t, db.First(&hop, "name = ?", "Saaz").Error)
	assert.Equal(t, 410.00, hop.PricePerKg)
	assert.True(t, hop.Active)
}

func TestExportService_ImportRejectsBadPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewExportService(db, nil)

	f := excelize.NewFile()
	_, err := f.NewSheet("Yeasts")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Yeasts", "A1", &[]interface{}{"id", "name", "supplier", "form", "attenuation_percent", "price_per_unit", "active"}))
	require.NoError(t, f.SetSheetRow("Yeasts", "A2", &[]interface{}{"", "W-34/70", "Fermentis", "dry", "82", "cheap", "true"}))

	buf := &bytes.Buffer{}
	require.NoError(t, f.Write(buf))

	_, err = svc.ImportCatalog(buf.Bytes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid price")
}

func TestExportService_UploadWithoutStorage(t *testing.T) {
	db := newTestDB(t)
	svc := NewExportService(db, nil)

	_, err := svc.UploadExport(context.Background(), "catalog.xlsx", []byte("x"))
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
