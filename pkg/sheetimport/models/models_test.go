package models

import (
	"encoding/json"
	"testing"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Empty(), ""},
		{Number(42), "42"},
		{Number(-0.25), "-0.25"},
		{Bool(true), "TRUE"},
		{Bool(false), "FALSE"},
		{Date("2024-01-15"), "2024-01-15"},
		{Text("hi"), "hi"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
	if !Text("").IsEmpty() || Text(" ").IsEmpty() {
		t.Error("Only the empty string is an empty text value")
	}
}

func TestValueJSON(t *testing.T) {
	row := []Value{Empty(), Number(1.5), Bool(true), Text("x")}
	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `[null,1.5,true,"x"]` {
		t.Errorf("Unexpected JSON %s", data)
	}
}

func TestIssues(t *testing.T) {
	is := Issues{
		NewIssue(KindEmptyCell, "S", "warn").AtColumn("Email"),
		NewIssue(KindMissingHeader, "S", "err").AtColumn("Name"),
		NewIssue(KindPotentialDuplicate, "S", "dup").AtRow(4),
	}
	if !is.HasErrors() {
		t.Error("Expected HasErrors")
	}
	if len(is.Errors()) != 1 || len(is.Warnings()) != 2 {
		t.Errorf("Unexpected split %d/%d", len(is.Errors()), len(is.Warnings()))
	}
	if is[2].Row == nil || *is[2].Row != 4 || is[2].Column != nil {
		t.Errorf("Unexpected location %+v", is[2])
	}
	if (Issues{is[0], is[2]}).HasErrors() {
		t.Error("Warnings must not set HasErrors")
	}
}

func TestSheetHelpers(t *testing.T) {
	s := SheetPreview{
		Headers:  []string{"Name", " Email "},
		Rows:     [][]Value{{Text("a"), Text("b")}},
		RowCount: 3,
	}
	if s.HeaderIndex("email") != 1 || s.HeaderIndex("Phone") != -1 {
		t.Error("Unexpected header lookup")
	}
	if !s.Truncated() {
		t.Error("Expected truncated preview")
	}
	if s.RowNumber(0) != 2 {
		t.Errorf("Expected default row number 2, got %d", s.RowNumber(0))
	}
}

func TestSheetAllowed(t *testing.T) {
	if !(ImportConfiguration{}).SheetAllowed("any") {
		t.Error("Expected all sheets allowed by default")
	}
	cfg := ImportConfiguration{AllowedSheetNames: []string{"Data"}}
	if !cfg.SheetAllowed("Data") || cfg.SheetAllowed("Other") {
		t.Error("Unexpected allow list result")
	}
}

func TestRowKey(t *testing.T) {
	tests := []struct {
		name string
		a, b []Value
		same bool
	}{
		{"identical", []Value{Text("Ana"), Number(30)}, []Value{Text("Ana"), Number(30)}, true},
		{"trailing empty", []Value{Text("Ana"), Empty()}, []Value{Text("Ana")}, true},
		{"kind differs", []Value{Number(1)}, []Value{Text("1")}, false},
		{"cell boundary", []Value{Text("a"), Text("b")}, []Value{Text("a text 1:b")}, false},
		{"separator inside text", []Value{Text("a\x1fb")}, []Value{Text("a"), Text("b")}, false},
		{"empty inside", []Value{Empty(), Text("x")}, []Value{Text("x")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RowKey(tt.a) == RowKey(tt.b); got != tt.same {
				t.Errorf("RowKey(%v) == RowKey(%v) is %v, want %v", tt.a, tt.b, got, tt.same)
			}
		})
	}
}
