package report

// https://godoc.org/github.com/jung-kurt/gofpdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

var pdfColWidths = []float64{24, 22, 38, 38, 42, 20, 20, 20}

// {{{ r.OutputAsPDF

// OutputAsPDF renders the match table plus the run metadata as a
// one-page-or-more summary, for mailing around.
func (r *Report)OutputAsPDF(w io.Writer) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(100, 8, "Fire overflight matches")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 8)
	pdf.Cell(100, 5, "Generated "+time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))
	pdf.Ln(5)
	if !r.Start.IsZero() {
		pdf.Cell(100, 5, fmt.Sprintf("Flight days considered: %s to %s",
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02")))
		pdf.Ln(5)
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 8)
	for i,h := range r.HeadersText {
		pdf.CellFormat(colWidth(i), 5, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _,row := range r.RowsText {
		for i,val := range row {
			pdf.CellFormat(colWidth(i), 5, val, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	for _,row := range r.MetadataTable() {
		pdf.CellFormat(50, 4, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 4, row[1], "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func colWidth(i int) float64 {
	if i < len(pdfColWidths) { return pdfColWidths[i] }
	return 24
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
