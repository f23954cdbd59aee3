package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/donorkit/pkg/export"
)

var generated = time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)

func TestToHTMLTable(t *testing.T) {
	t.Parallel()

	table := export.Table{
		export.NewRecord("blood_group", "O+", "donor_name", "Ann"),
		export.NewRecord("blood_group", "AB-", "donor_name", "<b>Bob</b>"),
	}

	got, err := export.ToHTMLTable(table, "Donors & Co", generated)
	require.NoError(t, err)

	assert.Contains(t, got, "<title>Donors &amp; Co</title>")
	assert.Contains(t, got, "<th>BLOOD GROUP</th><th>DONOR NAME</th>")
	assert.Contains(t, got, "<td>O+</td><td>Ann</td>")
	assert.Contains(t, got, "&lt;b&gt;Bob&lt;/b&gt;")
	assert.NotContains(t, got, "<b>Bob</b>")
	assert.Contains(t, got, "Generated on: 6/1/2024, 9:30:00 AM")
	assert.Contains(t, got, "<strong>Total Records:</strong> 2")
	assert.Equal(t, 2, strings.Count(got, "<tr><td>"))
	assert.NotContains(t, got, "window.print()")
}

func TestToPrintHTML(t *testing.T) {
	t.Parallel()

	got, err := export.ToPrintHTML(export.Table{export.NewRecord("a", "1")}, "Report", generated)
	require.NoError(t, err)
	assert.Contains(t, got, `onload="window.print()"`)
	assert.Contains(t, got, "@media print")

	_, err = export.ToPrintHTML(nil, "Report", generated)
	require.ErrorIs(t, err, export.ErrNoData)
}

func TestToHTMLTable_Empty(t *testing.T) {
	t.Parallel()

	_, err := export.ToHTMLTable(export.Table{}, "x", generated)
	require.ErrorIs(t, err, export.ErrNoData)
}

func TestHeaderLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LAST DONATION DATE", export.HeaderLabel("last_donation_date"))
	assert.Equal(t, "DONOR ID", export.HeaderLabel("Donor ID"))
}
