package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const studentFixture = `student_id,age,gender,study_hours_per_day,part_time_job,parental_education_level,exam_score,notes
S1000,23,Female,0.0,No,Master,56.2,
S1001,20,Female,6.9,No,High School,100.0,
S1002,21,Male,1.4,No,None,34.3,
S1003,23,Female,1.0,No,,26.8,
S1004,19,Other,5.0,Yes,Master,66.4,
S1005,24,Male,7.2,No,Bachelor,100,
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFile(t *testing.T) {
	p, err := File(context.Background(), writeFixture(t, studentFixture))
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}

	if p.RecordCount != 6 {
		t.Errorf("RecordCount = %d, want 6", p.RecordCount)
	}
	if p.RunID == "" {
		t.Error("RunID not set")
	}

	type summary struct {
		Name    string
		Type    ValueType
		Present int
		Missing int
	}
	var got []summary
	for _, f := range p.Fields {
		got = append(got, summary{f.Name, f.Type, f.Present, f.Missing})
	}
	want := []summary{
		{"student_id", StringType, 6, 0},
		{"age", IntType, 6, 0},
		{"gender", StringType, 6, 0},
		{"study_hours_per_day", FloatType, 6, 0},
		{"part_time_job", StringType, 6, 0},
		{"parental_education_level", StringType, 4, 2},
		{"exam_score", FloatType, 6, 0},
		{"notes", FloatType, 0, 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}

	edu := p.Fields[5]
	wantEdu := []string{"Master", "High School", MissingLabel, "Bachelor"}
	if diff := cmp.Diff(wantEdu, edu.Unique); diff != "" {
		t.Errorf("unique parental_education_level (-want +got):\n%s", diff)
	}
	if p.Fields[1].Unique != nil {
		t.Errorf("numeric field lists unique values: %v", p.Fields[1].Unique)
	}
}

func TestFile_GapsWidenTypes(t *testing.T) {
	const fixture = `student_id,passed,absences,retakes
S1,True,2,0
S2,,3,1
S3,False,,2
S4,True,1,0
`
	p, err := File(context.Background(), writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}

	tests := []struct {
		field int
		want  ValueType
	}{
		{1, StringType},
		{2, FloatType},
		{3, IntType},
	}
	for _, tt := range tests {
		if got := p.Fields[tt.field].Type; got != tt.want {
			t.Errorf("%s type = %v, want %v", p.Fields[tt.field].Name, got, tt.want)
		}
	}

	wantPassed := []string{"True", MissingLabel, "False"}
	if diff := cmp.Diff(wantPassed, p.Fields[1].Unique); diff != "" {
		t.Errorf("unique passed (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, p); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if !strings.Contains(buf.String(), `Unique values in "passed" (3):`) {
		t.Errorf("text report lacks passed values:\n%s", buf.String())
	}
}

func TestFile_MissingSource(t *testing.T) {
	_, err := File(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("File() error = %v, want not exist", err)
	}
}

func TestGeneralizeType(t *testing.T) {
	tests := []struct {
		a, b, want ValueType
	}{
		{IntType, FloatType, FloatType},
		{FloatType, IntType, FloatType},
		{NullType, IntType, IntType},
		{BoolType, NullType, BoolType},
		{IntType, BoolType, StringType},
		{StringType, BoolType, StringType},
		{FloatType, FloatType, FloatType},
	}

	for _, tt := range tests {
		if got := GeneralizeType(tt.a, tt.b); got != tt.want {
			t.Errorf("GeneralizeType(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		raw  string
		want ValueType
	}{
		{"23", IntType},
		{"-4", IntType},
		{"6.9", FloatType},
		{"1e3", FloatType},
		{"True", BoolType},
		{"false", BoolType},
		{"Yes", StringType},
		{"S1000", StringType},
	}

	for _, tt := range tests {
		if got := DetectType(tt.raw); got != tt.want {
			t.Errorf("DetectType(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	p, err := File(context.Background(), writeFixture(t, studentFixture))
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, p, "text"); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"6 records, 8 columns",
			`Unique values in "gender" (3):`,
			`["Female", "Male", "Other"]`,
			`["Master", "High School", nan, "Bachelor"]`,
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, `Unique values in "age"`) {
			t.Error("numeric column listed in unique values")
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, p, "JSON"); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		var decoded struct {
			RecordCount int `json:"record_count"`
			Fields      []struct {
				Name    string   `json:"name"`
				Type    string   `json:"type"`
				Missing int      `json:"missing"`
				Unique  []string `json:"unique"`
			} `json:"fields"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if decoded.RecordCount != 6 || len(decoded.Fields) != 8 {
			t.Fatalf("decoded = %+v", decoded)
		}
		if decoded.Fields[1].Type != "integer" || decoded.Fields[5].Missing != 2 {
			t.Errorf("fields = %+v", decoded.Fields)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := Write(&bytes.Buffer{}, p, "yaml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestTable_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := File(ctx, writeFixture(t, studentFixture)); !errors.Is(err, context.Canceled) {
		t.Errorf("File() error = %v, want context.Canceled", err)
	}
}
