package main

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
)

func TestListTableCoversEverySubtype(t *testing.T) {
	want := 0
	for _, typ := range quad.Types() {
		want += max(1, typ.SubtypeCount())
	}

	if got := len(listTable().rows); got != want {
		t.Fatalf("rows=%d, want %d", got, want)
	}
}

func TestResponseTableCSV(t *testing.T) {
	opts := options{note: 12, reso: 0, lo: 20, hi: 20000, points: 5, rate: 48000, fftSize: 1024}

	tbl, err := responseTable([]string{"lp24db:0", "hp12db"}, opts)
	if err != nil {
		t.Fatalf("responseTable() error = %v", err)
	}

	var buf bytes.Buffer
	if err := tbl.write(&buf, false); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 6 || len(records[0]) != 3 {
		t.Fatalf("got %d records of %d fields", len(records), len(records[0]))
	}

	if !strings.HasPrefix(records[0][1], "LP 24 dB / Clean") {
		t.Fatalf("header %q", records[0])
	}

	if records[1][0] != "20.0" || records[5][0] != "20000.0" {
		t.Fatalf("frequency column %q..%q", records[1][0], records[5][0])
	}
}

func TestResponseTableRejectsUnknownFilter(t *testing.T) {
	opts := options{lo: 20, hi: 20000, points: 4, rate: 48000, fftSize: 1024}

	if _, err := responseTable([]string{"lp99db"}, opts); err == nil {
		t.Fatal("expected error")
	}
}

func TestTabularOutputAligns(t *testing.T) {
	var buf bytes.Buffer
	if err := (table{header: []string{"a", "bb"}, rows: [][]string{{"ccc", "d"}}}).write(&buf, true); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "a    bb\nccc  d\n" {
		t.Fatalf("output %q", buf.String())
	}
}
