package lib

import (
	"Users2CSV/common"
	"bytes"
	"github.com/pkg/errors"
	"github.com/yukithm/json2csv"
	"io"
)

func (r Record) ToRow() []string {
	return []string{r.UserID, r.FirstName, r.LastName, r.Phone, r.Email, r.Flags}
}

// WriteCSV writes the header and one row per record. Fields are quoted only when necessary.
func WriteCSV(w io.Writer, records []Record, useCRLF bool) error {
	// NOTE: not using WriteCSV() of json2csv as it sorts the columns by key.
	wr := json2csv.NewCSVWriter(w)
	wr.UseCRLF = useCRLF
	if err := wr.Write(common.Header); err != nil {
		return errors.Wrap(err, "writing the header")
	}
	for i, r := range records {
		if err := wr.Write(r.ToRow()); err != nil {
			return errors.Wrapf(err, "writing row %d (user_ID: %s)", i+1, r.UserID)
		}
	}
	wr.Flush()
	return errors.Wrap(wr.Error(), "flushing CSV")
}

// ToCSV returns the whole CSV as bytes, so that nothing is written to the destination until it is complete.
func ToCSV(records []Record, useCRLF bool) ([]byte, error) {
	b := &bytes.Buffer{}
	if err := WriteCSV(b, records, useCRLF); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
