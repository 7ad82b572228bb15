package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one row per currency.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(rows []Row) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Code", "Name", "Symbol", "Decimals", "SymbolPosition", "Sample"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		row := []string{r.Code, r.Name, r.Symbol, strconv.Itoa(r.Decimals), r.SymbolPosition, r.Sample}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
