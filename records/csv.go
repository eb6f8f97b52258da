package records

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes students with the spreadsheet export header
// Roll,First Name,Last Name.
func WriteCSV(w io.Writer, students []Student) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Roll", "First Name", "Last Name"}); err != nil {
		return err
	}
	for _, s := range students {
		if err := cw.Write([]string{s.Roll, s.FirstName, s.LastName}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
