package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// WorkbookFilename is the knowledge-base export placed next to the
// dashboard.
const WorkbookFilename = "knowledge_base.xlsx"

// ExcelWriter exports the knowledge base and headline economics as a
// spreadsheet for readers who want the raw rows.
type ExcelWriter struct {
	log *logger.Logger
}

// NewExcelWriter creates an Excel workbook writer.
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{log: logger.NewDefault().WithComponent("excel")}
}

const (
	sheetKnowledge = "Knowledge Base"
	sheetPrices    = "Prices"
	sheetSummary   = "Summary"
)

// BuildWorkbook renders the workbook and returns the .xlsx bytes.
func (w *ExcelWriter) BuildWorkbook(m *schema.MetricSet, entries []schema.KnowledgeEntry) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("metric set cannot be nil")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetKnowledge); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0E7490"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := w.writeKnowledgeSheet(f, entries, headerStyle); err != nil {
		return nil, err
	}
	if err := w.writePricesSheet(f, m, headerStyle); err != nil {
		return nil, err
	}
	if err := w.writeSummarySheet(f, m, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	w.log.Info("Workbook built", map[string]interface{}{
		"entries": len(entries),
		"bytes":   buf.Len(),
	})
	return buf.Bytes(), nil
}

func (w *ExcelWriter) writeKnowledgeSheet(f *excelize.File, entries []schema.KnowledgeEntry, headerStyle int) error {
	headers := []string{
		"ID", "Name", "الاسم", "Category",
		"Design (t/y)", "Actual (t/y)", "Utilization %", "From", "To",
	}
	if err := w.writeRow(f, sheetKnowledge, 1, toCells(headers)); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetKnowledge, "A1", "I1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetKnowledge, "A", "I", 18); err != nil {
		return err
	}

	for i := range entries {
		e := &entries[i]
		row := []interface{}{
			e.ID,
			e.Name.EN,
			e.Name.AR,
			string(e.Category),
		}

		if e.Design != nil {
			row = append(row, e.Design.AnnualTonnes())
		} else {
			row = append(row, "")
		}
		if e.Actual != nil {
			row = append(row, e.Actual.AnnualTonnes())
		} else {
			row = append(row, "")
		}
		if util := e.Utilization(); util > 0 {
			row = append(row, util)
		} else {
			row = append(row, "")
		}
		if e.Routing != nil {
			row = append(row, e.Routing.From.EN, e.Routing.To.EN)
		} else {
			row = append(row, "", "")
		}

		if err := w.writeRow(f, sheetKnowledge, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *ExcelWriter) writePricesSheet(f *excelize.File, m *schema.MetricSet, headerStyle int) error {
	if _, err := f.NewSheet(sheetPrices); err != nil {
		return err
	}
	if err := w.writeRow(f, sheetPrices, 1, toCells([]string{"Product", "Price ($/tonne)"})); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetPrices, "A1", "B1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetPrices, "A", "B", 20); err != nil {
		return err
	}

	for i, p := range m.Prices {
		if err := w.writeRow(f, sheetPrices, i+2, []interface{}{p.Name, p.Price}); err != nil {
			return err
		}
	}
	return nil
}

func (w *ExcelWriter) writeSummarySheet(f *excelize.File, m *schema.MetricSet, headerStyle int) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}
	if err := w.writeRow(f, sheetSummary, 1, toCells([]string{"Item", "Value ($/year)"})); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "A1", "B1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetSummary, "A", "B", 32); err != nil {
		return err
	}

	rows := []struct {
		name  string
		value float64
	}{
		{"Phase 1+2 Gross Value", m.Summary.Phase12Gross},
		{"Phase 1+2 NG Makeup Cost", -m.Summary.Phase12NGCost},
		{"Phase 1+2 Net Value", m.Summary.Phase12Net},
		{"Phase 3+4 Net Value", m.Summary.Phase34Net},
		{"Total Net Value", m.Summary.TotalNet},
	}
	for i, row := range rows {
		if err := w.writeRow(f, sheetSummary, i+2, []interface{}{row.name, row.value}); err != nil {
			return err
		}
	}
	return nil
}

func (w *ExcelWriter) writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toCells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
