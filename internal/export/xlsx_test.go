package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/saipranav0521/student-attendance-analyzer/internal/attendance"
)

func testResult(t *testing.T) *attendance.Result {
	t.Helper()
	res, err := attendance.Analyze([]attendance.RawEntry{
		{Name: "Maths", Held: "20", Attended: "18"},
		{Name: "Physics", Held: "10", Attended: "6"},
	})
	require.NoError(t, err)
	return res
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testResult(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 6)

	assert.Equal(t, []string{"Subject", "Classes Held", "Classes Attended", "Percentage"}, rows[0])
	assert.Equal(t, []string{"MATHS", "20", "18", "90.00%"}, rows[1])
	assert.Equal(t, []string{"PHYSICS", "10", "6", "60.00%"}, rows[2])
	assert.Equal(t, []string{"TOTAL", "30", "24", "80.00%"}, rows[3])
}

func TestWriteXLSX_StatusAndAction(t *testing.T) {
	res := testResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, res))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	status, err := f.GetCellValue(SheetName, "B6")
	require.NoError(t, err)
	assert.Equal(t, "SAFE", status)

	action, err := f.GetCellValue(SheetName, "B7")
	require.NoError(t, err)
	// floor(24/0.75 - 30) = 2
	assert.Equal(t, "2 classes that may be skipped", action)
}
