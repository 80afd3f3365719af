package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
)

func TestSheetToJSON(t *testing.T) {
	rows := [][]models.Value{
		{models.Text("Ana"), models.Number(30), models.Bool(true)},
		{models.Text("Bo"), models.Empty(), models.Date("2024-01-15")},
	}
	s := &models.SheetPreview{
		Name:        "People",
		Headers:     []string{"Name", "Age", "Active"},
		Rows:        rows[:1],
		Data:        rows,
		SourceRows:  []int{2, 4},
		RowCount:    2,
		ColumnCount: 3,
	}

	data, err := SheetToJSON(s, false)
	if err != nil {
		t.Fatalf("SheetToJSON failed: %v", err)
	}
	want := `{"name":"People","headers":["Name","Age","Active"],"row_count":2,"column_count":3,` +
		`"rows":[{"r":2,"c":["Ana",30,true]},{"r":4,"c":["Bo",null,"2024-01-15"]}]}`
	if string(data) != want {
		t.Errorf("SheetToJSON =\n%s\nwant\n%s", data, want)
	}
}

func TestToJSONPretty(t *testing.T) {
	doc := &models.PreviewDocument{FileName: "a.csv", Format: "csv", Sheets: []models.SheetPreview{}}
	data, err := ToJSON(doc, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"file_name\": \"a.csv\"") {
		t.Errorf("Expected indented output, got %s", data)
	}

	var back models.PreviewDocument
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if back.FileName != "a.csv" {
		t.Errorf("Expected file name a.csv, got %q", back.FileName)
	}
}
