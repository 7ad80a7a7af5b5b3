package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	appconfig "github.com/brewstation/backend/config"
	"github.com/brewstation/backend/internal/metrics"
	"github.com/brewstation/backend/internal/models"
)

const (
	sheetMalts  = "Malts"
	sheetHops   = "Hops"
	sheetYeasts = "Yeasts"
)

var ErrStorageDisabled = errors.New("object storage is not configured")

// ImportSummary reports the outcome of a catalog spreadsheet import.
type ImportSummary struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Created   int `json:"created"`
	Skipped   int `json:"skipped"`
}

// ExportService produces and consumes catalog spreadsheets. One sheet per
// ingredient category; the id column ties import rows back to catalog
// entries, rows without an id create new entries.
type ExportService struct {
	db *gorm.DB
	s3 *appconfig.S3Config
}

func NewExportService(db *gorm.DB, s3cfg *appconfig.S3Config) *ExportService {
	return &ExportService{db: db, s3: s3cfg}
}

// ExportCatalog renders the whole ingredient catalog as an xlsx workbook
// and returns the file bytes together with a timestamped filename.
func (s *ExportService) ExportCatalog() ([]byte, string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	var malts []models.Malt
	if err := s.db.Order("name asc").Find(&malts).Error; err != nil {
		return nil, "", err
	}
	maltRows := make([][]interface{}, 0, len(malts))
	for _, m := range malts {
		maltRows = append(maltRows, []interface{}{
			m.ID.String(), m.Name, m.Supplier, m.Type, m.ColorEBC, m.PricePerKg, m.Active,
		})
	}
	if err := writeSheet(f, sheetMalts,
		[]interface{}{"id", "name", "supplier", "type", "color_ebc", "price_per_kg", "active"},
		maltRows); err != nil {
		return nil, "", err
	}

	var hops []models.Hop
	if err := s.db.Order("name asc").Find(&hops).Error; err != nil {
		return nil, "", err
	}
	hopRows := make([][]interface{}, 0, len(hops))
	for _, h := range hops {
		hopRows = append(hopRows, []interface{}{
			h.ID.String(), h.Name, h.Supplier, h.Form, h.Origin, h.AlphaAcidPercent, h.PricePerKg, h.Active,
		})
	}
	if err := writeSheet(f, sheetHops,
		[]interface{}{"id", "name", "supplier", "form", "origin", "alpha_acid_percent", "price_per_kg", "active"},
		hopRows); err != nil {
		return nil, "", err
	}

	var yeasts []models.Yeast
	if err := s.db.Order("name asc").Find(&yeasts).Error; err != nil {
		return nil, "", err
	}
	yeastRows := make([][]interface{}, 0, len(yeasts))
	for _, y := range yeasts {
		yeastRows = append(yeastRows, []interface{}{
			y.ID.String(), y.Name, y.Supplier, y.Form, y.AttenuationPercent, y.PricePerUnit, y.Active,
		})
	}
	if err := writeSheet(f, sheetYeasts,
		[]interface{}{"id", "name", "supplier", "form", "attenuation_percent", "price_per_unit", "active"},
		yeastRows); err != nil {
		return nil, "", err
	}

	// Drop the default sheet so the workbook opens on the malt list.
	defaultSheet := f.GetSheetName(0)
	if defaultSheet != sheetMalts {
		_ = f.DeleteSheet(defaultSheet)
	}
	if idx, err := f.GetSheetIndex(sheetMalts); err == nil {
		f.SetActiveSheet(idx)
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", err
	}

	metrics.CatalogExportsTotal.WithLabelValues("export").Inc()
	filename := fmt.Sprintf("catalog_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func writeSheet(f *excelize.File, name string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(name, cell, &r); err != nil {
			return err
		}
	}
	return nil
}

// ImportCatalog reads an exported workbook back and applies price changes.
// Rows carrying an id update that entry's price; rows without an id create
// a new entry from the name/supplier/price columns. Empty price cells are
// skipped so a partial file leaves the rest of the catalog untouched.
func (s *ExportService) ImportCatalog(data []byte) (*ImportSummary, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	summary := &ImportSummary{}

	if err := s.importSheet(f, sheetMalts, 5, summary, func(name, supplier string, price float64) error {
		return s.db.Create(&models.Malt{Name: name, Supplier: supplier, PricePerKg: price, Active: true}).Error
	}, func(id string, price float64) (int64, error) {
		res := s.db.Model(&models.Malt{}).Where("id = ?", id).Update("price_per_kg", price)
		return res.RowsAffected, res.Error
	}); err != nil {
		return nil, err
	}

	if err := s.importSheet(f, sheetHops, 6, summary, func(name, supplier string, price float64) error {
		return s.db.Create(&models.Hop{Name: name, Supplier: supplier, PricePerKg: price, Active: true}).Error
	}, func(id string, price float64) (int64, error) {
		res := s.db.Model(&models.Hop{}).Where("id = ?", id).Update("price_per_kg", price)
		return res.RowsAffected, res.Error
	}); err != nil {
		return nil, err
	}

	if err := s.importSheet(f, sheetYeasts, 5, summary, func(name, supplier string, price float64) error {
		return s.db.Create(&models.Yeast{Name: name, Supplier: supplier, PricePerUnit: price, Active: true}).Error
	}, func(id string, price float64) (int64, error) {
		res := s.db.Model(&models.Yeast{}).Where("id = ?", id).Update("price_per_unit", price)
		return res.RowsAffected, res.Error
	}); err != nil {
		return nil, err
	}

	metrics.CatalogExportsTotal.WithLabelValues("import").Inc()
	return summary, nil
}

func (s *ExportService) importSheet(
	f *excelize.File,
	sheet string,
	priceCol int,
	summary *ImportSummary,
	create func(name, supplier string, price float64) error,
	update func(id string, price float64) (int64, error),
) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		// Missing sheet means the file covers other categories only.
		return nil
	}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= priceCol {
			continue
		}
		summary.Processed++

		id := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		supplier := ""
		if len(row) > 2 {
			supplier = strings.TrimSpace(row[2])
		}
		priceStr := strings.TrimSpace(row[priceCol])
		if priceStr == "" {
			summary.Skipped++
			continue
		}
		price, err := strconv.ParseFloat(strings.ReplaceAll(priceStr, ",", "."), 64)
		if err != nil || price < 0 {
			return fmt.Errorf("sheet %s row %d: invalid price %q", sheet, i+1, priceStr)
		}

		if id == "" {
			if name == "" {
				summary.Skipped++
				continue
			}
			if err := create(name, supplier, price); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
			}
			summary.Created++
			continue
		}

		affected, err := update(id, price)
		if err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
		if affected == 0 {
			summary.Skipped++
			continue
		}
		summary.Updated++
	}
	return nil
}

// UploadExport stores an exported workbook in the configured bucket and
// returns a presigned download URL.
func (s *ExportService) UploadExport(ctx context.Context, filename string, data []byte) (string, error) {
	if s.s3 == nil {
		return "", ErrStorageDisabled
	}

	key := "exports/" + filename
	_, err := s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),
	})
	if err != nil {
		return "", fmt.Errorf("uploading export: %w", err)
	}

	return s.s3.GeneratePresignedURL(ctx, key, 24*time.Hour)
}
