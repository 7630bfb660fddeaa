package mapper

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCategoryFile parses the category reference CSV into an ISSN to
// category-list index. The file carries ISSN and WoS Category columns;
// other columns are ignored.
func ReadCategoryFile(r io.Reader) (map[string][]string, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading category file header: %w", err)
	}

	issnCol, catCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "ISSN":
			issnCol = i
		case "WoS Category":
			catCol = i
		}
	}
	if issnCol < 0 || catCol < 0 {
		return nil, fmt.Errorf("category file missing ISSN or WoS Category column: %v", header)
	}

	out := make(map[string][]string)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading category file: %w", err)
		}
		issn := strings.TrimSpace(row[issnCol])
		cat := strings.TrimSpace(strings.Trim(row[catCol], "\""))
		if issn == "" || cat == "" {
			continue
		}
		out[issn] = append(out[issn], cat)
	}
	return out, nil
}
