// Package export writes banner statistics as CSV attachments.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"banner-rotator/internal/core/domain"
)

// BOM is the UTF-8 byte order mark prepended to bulk exports for spreadsheet
// applications.
const BOM = "\xEF\xBB\xBF"

// AllFilename is the attachment name of the bulk export.
const AllFilename = "all-banner-statistics.csv"

var (
	singleHeader = []string{"Banner Title", "URL", "Impressions", "Clicks", "CTR (%)", "Price Per Click ($)"}
	allHeader    = []string{"Banner Name", "URL", "Impressions", "Clicks", "CTR (%)", "Price Per Click ($)"}
)

// SingleFilename is the attachment name of a single banner export.
func SingleFilename(bannerID int64) string {
	return fmt.Sprintf("banner-statistics-%d.csv", bannerID)
}

// WriteSingle writes the header and the row of one statistic.
func WriteSingle(w io.Writer, stat domain.Statistic) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(singleHeader); err != nil {
		return err
	}
	if err := cw.Write(row(stat)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteAll writes the BOM, the header and one row per statistic. An empty
// slice yields a header-only document.
func WriteAll(w io.Writer, stats []domain.Statistic) error {
	if _, err := io.WriteString(w, BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(allHeader); err != nil {
		return err
	}
	for _, s := range stats {
		if err := cw.Write(row(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(s domain.Statistic) []string {
	return []string{
		s.BannerTitle,
		s.BannerURL,
		FormatCount(s.Impressions),
		FormatCount(s.Clicks),
		s.CTR,
		s.PricePerClick,
	}
}
