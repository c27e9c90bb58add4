package dataset

import "fmt"

// Sources tells the loader where the two tables come from: a workbook
// with the summary on sheet 0 and the expenditure on sheet 1, or a pair
// of character-separated files.
type Sources struct {
	ExcelPath       string
	SummaryPath     string
	ExpenditurePath string
}

// Dataset holds the two cleaned tables of one session. Both are
// read-only after Load returns.
type Dataset struct {
	Summary     *Table
	Expenditure *Table
}

// Load runs the full pipeline: read both tables, normalize their
// headers, clean rows and types, then append the derived overall age
// rows to the summary. Any failure is terminal for the dataset.
func Load(src Sources) (*Dataset, error) {
	summary, expenditure, err := loadTables(src)
	if err != nil {
		return nil, err
	}

	for _, t := range []*Table{summary, expenditure} {
		NormalizeColumns(t)
		Clean(t)
	}
	if err := AppendOverallAge(summary); err != nil {
		return nil, fmt.Errorf("derive overall age: %w", err)
	}
	return &Dataset{Summary: summary, Expenditure: expenditure}, nil
}

func loadTables(src Sources) (*Table, *Table, error) {
	if src.ExcelPath != "" {
		summary, err := LoadExcel(src.ExcelPath, 0)
		if err != nil {
			return nil, nil, err
		}
		expenditure, err := LoadExcel(src.ExcelPath, 1)
		if err != nil {
			return nil, nil, err
		}
		return summary, expenditure, nil
	}
	summary, err := LoadCSV(src.SummaryPath)
	if err != nil {
		return nil, nil, err
	}
	expenditure, err := LoadCSV(src.ExpenditurePath)
	if err != nil {
		return nil, nil, err
	}
	return summary, expenditure, nil
}
