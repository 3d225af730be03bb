package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/tslab/internal/stochastic"
)

// WriteCSV writes s as "time,value" rows under a header line.
func WriteCSV(w io.Writer, s stochastic.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "value"}); err != nil {
		return err
	}
	for _, p := range s {
		row := []string{
			strconv.Itoa(p.Time),
			strconv.FormatFloat(p.Value, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
