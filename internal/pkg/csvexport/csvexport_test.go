package csvexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	title  string
	amount float64
	at     time.Time
}

func TestRenderQuotesAndFormats(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("IST", 19800))
	columns := []Column[row]{
		{Header: "Title", Value: func(r row) string { return r.title }},
		{Header: "Amount", Value: func(r row) string { return Amount(r.amount) }},
		{Header: "At", Value: func(r row) string { return Time(r.at) }},
	}

	out, err := Render(columns, []row{
		{title: "Plain", amount: 1500, at: at},
		{title: `Glow, "Kit"`, amount: 224.956, at: at},
	})
	require.NoError(t, err)

	expected := "Title,Amount,At\n" +
		"Plain,1500.00,2026-03-03T23:36:07Z\n" +
		"\"Glow, \"\"Kit\"\"\",224.96,2026-03-03T23:36:07Z\n"
	assert.Equal(t, expected, string(out))
}

func TestRenderEmptyHasHeaderOnly(t *testing.T) {
	out, err := Render([]Column[row]{{Header: "Title", Value: func(r row) string { return r.title }}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Title\n", string(out))
}

func TestFilename(t *testing.T) {
	name := Filename("campaigns", time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "campaigns-20261017.csv", name)
	assert.Equal(t, `attachment; filename="campaigns-20261017.csv"`, ContentDisposition(name))
}
