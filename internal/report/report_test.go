package report_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"upiscan/internal/domain"
	"upiscan/internal/report"
)

func sampleItems() []domain.BatchItem {
	return []domain.BatchItem{
		{Index: 0, Payload: "upi://pay?pa=merchant%40bank", Kind: domain.PayloadKindURL, PayeeAddress: "merchant@bank"},
		{Index: 1, Payload: "hello, world", Kind: domain.PayloadKindUnknown, Error: "invalid QR: payee address not found"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, sampleItems()))

	body := buf.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, report.BOM, body[:3])

	records, err := csv.NewReader(strings.NewReader(string(body[3:]))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Line", "Payload Kind", "Payee Address", "Status", "Error", "Payload"}, records[0])
	assert.Equal(t, []string{"1", "url", "merchant@bank", "found", "", "upi://pay?pa=merchant%40bank"}, records[1])
	assert.Equal(t, "invalid", records[2][3])
	assert.Equal(t, "hello, world", records[2][5])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, nil))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, sampleItems()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Payee Address", rows[0][2])
	assert.Equal(t, "merchant@bank", rows[1][2])
	assert.Equal(t, "invalid", rows[2][3])
}

func formulaItems() []domain.BatchItem {
	return []domain.BatchItem{
		{Index: 0, Payload: "=HYPERLINK(\"http://evil\")", Kind: domain.PayloadKindUnknown, Error: "invalid QR"},
		{Index: 1, Payload: "upi://pay?pa=%2Bcmd%40bank", Kind: domain.PayloadKindURL, PayeeAddress: "+cmd@bank"},
		{Index: 2, Payload: "@SUM(A1)", Kind: domain.PayloadKindUnknown, Error: "-1"},
	}
}

func TestWriteCSV_EscapesFormulas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, formulaItems()))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, `'=HYPERLINK("http://evil")`, records[1][5])
	assert.Equal(t, "'+cmd@bank", records[2][2])
	assert.Equal(t, "upi://pay?pa=%2Bcmd%40bank", records[2][5])
	assert.Equal(t, "'@SUM(A1)", records[3][5])
	assert.Equal(t, "'-1", records[3][4])
}

func TestWriteXLSX_EscapesFormulas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, formulaItems()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, `'=HYPERLINK("http://evil")`, rows[1][5])
	assert.Equal(t, "'+cmd@bank", rows[2][2])

	formula, err := f.GetCellFormula(report.SheetName, "F2")
	require.NoError(t, err)
	assert.Empty(t, formula)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, domain.ReportFormatJSON, sampleItems()))

	var items []domain.BatchItem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	assert.Equal(t, sampleItems(), items)
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := report.Write(&buf, domain.ReportFormat("pdf"), sampleItems())
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", report.ContentType(domain.ReportFormatCSV))
	assert.Contains(t, report.ContentType(domain.ReportFormatXLSX), "spreadsheetml")
	assert.Contains(t, report.ContentType(domain.ReportFormatJSON), "application/json")
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Shop QR codes", "Shop_QR_codes"},
		{"../etc/passwd", "etc_passwd"},
		{"a  --  b", "a_--_b"},
		{"___", ""},
		{strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, report.SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "counter_2_2026-03-14.csv", report.BuildFilename("counter #2", domain.ReportFormatCSV, now))
	assert.Equal(t, "scans_2026-03-14.xlsx", report.BuildFilename("", domain.ReportFormatXLSX, now))
}

func TestParseReportFormat(t *testing.T) {
	f, err := domain.ParseReportFormat("")
	require.NoError(t, err)
	assert.Equal(t, domain.ReportFormatJSON, f)

	f, err = domain.ParseReportFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, domain.ReportFormatXLSX, f)

	_, err = domain.ParseReportFormat("XML")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
