package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banner-rotator/internal/core/domain"
)

func TestWriteSingle(t *testing.T) {
	stat := domain.Statistic{
		BannerID:    7,
		BannerTitle: "Acme",
		BannerURL:   "https://acme.example",
		Impressions: 100,
		Clicks:      5,
	}
	stat.Recalculate(decimal.NewFromInt(20))

	var buf bytes.Buffer
	require.NoError(t, WriteSingle(&buf, stat))
	assert.False(t, strings.HasPrefix(buf.String(), BOM))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, singleHeader, records[0])
	assert.Equal(t, []string{"Acme", "https://acme.example", "100", "5", "5.00", "4.00"}, records[1])
}

func TestWriteAllThousandsSeparators(t *testing.T) {
	stats := []domain.Statistic{
		{BannerTitle: "Big", BannerURL: "https://big.example", Impressions: 1234567, Clicks: 1200, CTR: "0.10", PricePerClick: "0.01"},
		{BannerTitle: "Small", Impressions: 3, Clicks: 0, CTR: "0.00", PricePerClick: "0.00"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, stats))
	require.True(t, strings.HasPrefix(buf.String(), BOM))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, allHeader, records[0])
	assert.Equal(t, []string{"Big", "https://big.example", "1,234,567", "1,200", "0.10", "0.01"}, records[1])
	assert.Equal(t, []string{"Small", "", "3", "0", "0.00", "0.00"}, records[2])
}

func TestWriteAllEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, nil))
	assert.Equal(t, BOM+"Banner Name,URL,Impressions,Clicks,CTR (%),Price Per Click ($)\n", buf.String())
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0.00",
		"4":        "4.00",
		"1234.5":   "1,234.50",
		"-9876.54": "-9,876.54",
		"0.005":    "0.01",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestSingleFilename(t *testing.T) {
	assert.Equal(t, "banner-statistics-42.csv", SingleFilename(42))
}
