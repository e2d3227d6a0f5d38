// Package sheetio writes tabular results to Google Sheets. The client is
// an explicit object constructed once by the caller and passed in; there
// is no process-wide cached handle.
package sheetio

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewService builds an authenticated Sheets service from service-account
// or user credentials JSON.
func NewService(ctx context.Context, credentialsJSON []byte) (*sheets.Service, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return svc, nil
}

// Writer overwrites named sheet tabs with tabular data.
type Writer struct {
	svc *sheets.Service
}

// NewWriter wraps an authenticated Sheets service.
func NewWriter(svc *sheets.Service) *Writer {
	return &Writer{svc: svc}
}

// WriteTable overwrites sheetName in the spreadsheet with a header row
// plus data rows. The tab is created if absent and cleared before writing.
func (w *Writer) WriteTable(ctx context.Context, spreadsheetID, sheetName string, header []string, rows [][]any) error {
	if err := w.ensureSheet(ctx, spreadsheetID, sheetName); err != nil {
		return err
	}

	_, err := w.svc.Spreadsheets.Values.
		Clear(spreadsheetID, sheetName, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet %q: %w", sheetName, err)
	}

	values := make([][]any, 0, len(rows)+1)
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	values = append(values, headerRow)
	values = append(values, rows...)

	_, err = w.svc.Spreadsheets.Values.
		Update(spreadsheetID, sheetName+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write sheet %q: %w", sheetName, err)
	}
	return nil
}

// ensureSheet adds the named tab when the spreadsheet doesn't have it yet.
func (w *Writer) ensureSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	spreadsheet, err := w.svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to open spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetName {
			return nil
		}
	}

	_, err = w.svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: sheetName},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", sheetName, err)
	}
	return nil
}
