// Package export renders the trade history for external analysis.
package export

import (
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"reflectr/internal/models"
)

// csvRow is the export projection of a trade. gocsv handles quoting, so
// reflections with embedded commas stay intact.
type csvRow struct {
	Date       string `csv:"Date"`
	Symbol     string `csv:"Symbol"`
	Emotion    string `csv:"Emotion"`
	Impulse    int    `csv:"Impulse"`
	Outcome    string `csv:"Outcome"`
	Reflection string `csv:"Reflection"`
}

// WriteCSV writes the full trade history to w, one row per trade, in the
// order given. Dates are ISO-8601 instants; trades that were never
// debriefed report the literal Pending outcome.
func WriteCSV(w io.Writer, trades []models.Trade) error {
	rows := make([]csvRow, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, csvRow{
			Date:       t.Timestamp.UTC().Format(time.RFC3339),
			Symbol:     t.Symbol,
			Emotion:    string(t.EmotionalState),
			Impulse:    t.Impulsiveness,
			Outcome:    string(t.OutcomeOrPending()),
			Reflection: t.Reflection,
		})
	}
	return gocsv.Marshal(&rows, w)
}

// WriteCSVFile writes the trade history to the named file.
func WriteCSVFile(path string, trades []models.Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, trades)
}
