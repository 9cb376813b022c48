package interpreter

import (
	"fmt"
	"io"
)

// Report is the outcome of a walk. Duplicate is nil when no cell was entered twice.
type Report struct {
	Final     Position
	Duplicate *Position
}

// Display writes the four result lines.
func (rep Report) Display(w io.Writer) error {
	dup, dist := "none", "none"
	if rep.Duplicate != nil {
		dup = rep.Duplicate.String()
		dist = fmt.Sprint(rep.Duplicate.Distance())
	}
	_, err := fmt.Fprintf(w,
		"Final location coordinates are %s\n"+
			"The distance to the HQ is %d\n"+
			"The first location visited twice is %s\n"+
			"The distance to the first duplicated location is %s\n",
		rep.Final, rep.Final.Distance(), dup, dist)
	return err
}
