package output

import (
	"bytes"
	"fmt"
	"strconv"
	"text/tabwriter"
)

// ConsoleFormatter prints an aligned table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tSYMBOL\tDECIMALS\tPOSITION\tSAMPLE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Code, r.Name, r.Symbol, strconv.Itoa(r.Decimals), r.SymbolPosition, r.Sample)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
