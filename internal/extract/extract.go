// Package extract parses per-page report text into normalized specimen
// records. Page metadata (report number, date cast, pour location) is
// recognized by labeled field patterns; specimen lines are matched
// against a fixed set of layout cases and decomposed into mark
// components. Extraction is a pure pass over in-memory text: per-line
// failures drop the line and continue, and a run that yields no records
// is a valid empty result.
package extract

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wkcheung/cubereport/pkg/types"
)

// Summary holds counts from one extraction pass.
type Summary struct {
	Pages   int
	Records int
	Skipped int
}

// pageContext is the metadata accumulator threaded through the page
// fold. Report number and date cast carry forward from earlier pages
// when a page omits them; pour location never does, since different
// pages may legitimately describe different pours.
type pageContext struct {
	reportNumber string
	dateCast     string
}

// ExtractPages turns a sequence of page text blocks into a flat,
// ordered sequence of records. Output order matches source reading
// order exactly. Per-page progress and skipped lines are reported to w.
func ExtractPages(pages []string, w io.Writer) ([]types.Record, Summary) {
	var records []types.Record
	var ctx pageContext
	summary := Summary{Pages: len(pages)}

	for n, text := range pages {
		pageRecords, skipped := extractPage(text, &ctx, n+1, w)
		records = append(records, pageRecords...)
		summary.Records += len(pageRecords)
		summary.Skipped += skipped
		fmt.Fprintf(w, "page %d: %d records\n", n+1, len(pageRecords))
	}

	return records, summary
}

func extractPage(text string, ctx *pageContext, page int, w io.Writer) ([]types.Record, int) {
	if num, ok := FindReportNumber(text); ok {
		ctx.reportNumber = num
	}
	if date, ok := FindDateCast(text); ok {
		ctx.dateCast = date
	}
	location, _ := FindPourLocation(text)

	var records []types.Record
	skipped := 0

	for _, sl := range FindSpecimenLines(strings.Split(text, "\n")) {
		prefix, number, suffix, err := SplitMark(sl.Mark)
		if err != nil {
			fmt.Fprintf(w, "page %d: skipped line: %v\n", page, err)
			skipped++
			continue
		}

		strength, err := strconv.ParseFloat(sl.Strength, 64)
		if err != nil {
			fmt.Fprintf(w, "page %d: skipped line: unparsable strength %q for mark %s\n", page, sl.Strength, sl.Mark)
			skipped++
			continue
		}

		records = append(records, types.Record{
			MarkPrefix:   prefix,
			MarkNumber:   number,
			MarkSuffix:   suffix,
			ReportNumber: ctx.reportNumber,
			DateCast:     ctx.dateCast,
			StrengthMPa:  strength,
			PourLocation: location,
		})
	}

	return records, skipped
}
