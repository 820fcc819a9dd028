package main

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/zulandar/yardline/internal/models"
)

func TestFormatYPU(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.0"},
		{10, "10.0"},
		{5.0, "5.0"},
		{14.2, "14.2"},
		{3.3, "3.3"},
	}

	for _, tt := range tests {
		got := formatYPU(tt.input)
		if got != tt.want {
			t.Errorf("formatYPU(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"Adams", 10, "Adams"},
		{"Amon-Ra St. Brown", 10, "Amon-Ra..."},
		{"abcdef", 3, "abc"},
		{"Ja'Marr", 7, "Ja'Marr"},
	}

	for _, tt := range tests {
		got := truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestWriteRecordTable_Golden(t *testing.T) {
	recs := []models.Record{
		{ID: 1, Name: "Adams", Yardage: 100, YardsPerUnit: 10.0, UnitCount: 10, ScoreCount: 1},
		{ID: 2, Name: "Jefferson", Yardage: 1074, YardsPerUnit: 16.0, UnitCount: 67, ScoreCount: 8},
		{ID: 3, Name: "Hill", Yardage: 0, YardsPerUnit: 0, UnitCount: 0, ScoreCount: 0},
	}

	var buf bytes.Buffer
	writeRecordTable(&buf, recs)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "record_table", buf.Bytes())
}
