package stats_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iboet2004/db-rilis/internal/domain/entity"
	"github.com/iboet2004/db-rilis/internal/usecase/stats"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		sep  string
		want []string
	}{
		{
			name: "sentinel token dropped",
			raw:  "A, B##x, C",
			sep:  ",",
			want: []string{"A", "C"},
		},
		{
			name: "empty cell",
			raw:  "",
			sep:  ",",
			want: nil,
		},
		{
			name: "whitespace only cell",
			raw:  "   ",
			sep:  ",",
			want: nil,
		},
		{
			name: "whitespace trimmed, order kept",
			raw:  "  Kementerian Kominfo ,Dinas Pendidikan,  BNPB ",
			sep:  ",",
			want: []string{"Kementerian Kominfo", "Dinas Pendidikan", "BNPB"},
		},
		{
			name: "repeats not deduplicated",
			raw:  "Kompas, Kompas, Tempo",
			sep:  ",",
			want: []string{"Kompas", "Kompas", "Tempo"},
		},
		{
			name: "semicolon separator",
			raw:  "Detik; Kompas TV; ##internal",
			sep:  ";",
			want: []string{"Detik", "Kompas TV"},
		},
		{
			name: "no case normalization",
			raw:  "kompas, Kompas",
			sep:  ",",
			want: []string{"kompas", "Kompas"},
		},
		{
			name: "empty separator falls back to comma",
			raw:  "A,B",
			sep:  "",
			want: []string{"A", "B"},
		},
		{
			name: "empty pieces dropped",
			raw:  "A,, ,B",
			sep:  ",",
			want: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stats.Extract(tt.raw, tt.sep)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract(%q, %q) mismatch (-want +got):\n%s", tt.raw, tt.sep, diff)
			}
		})
	}
}

func sourcesDataset(cells ...string) *entity.Dataset {
	rows := make([][]string, len(cells))
	for i, c := range cells {
		rows[i] = []string{c}
	}
	return entity.NewDataset("sp", []string{"Narasumber"}, rows)
}

func TestAggregate(t *testing.T) {
	svc := stats.Service{}
	field := entity.ResolvedField{Column: "Narasumber", Separator: ","}

	ds := sourcesDataset(
		"BNPB, Kominfo",
		"Kominfo",
		"BNPB, BNPB, ##draft",
	)

	counts := svc.Aggregate(ds, field)

	if got := counts.Get("BNPB"); got != 3 {
		t.Errorf("count(BNPB) = %d, want 3 (in-cell repeat counts twice)", got)
	}
	if got := counts.Get("Kominfo"); got != 2 {
		t.Errorf("count(Kominfo) = %d, want 2", got)
	}
	if got := counts.Len(); got != 2 {
		t.Errorf("distinct entities = %d, want 2", got)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	svc := stats.Service{}
	field := entity.ResolvedField{Column: "Narasumber", Separator: ","}

	a := svc.Aggregate(sourcesDataset("X, Y", "Y", "Z"), field)
	b := svc.Aggregate(sourcesDataset("Z", "Y", "X, Y"), field)

	for _, name := range []string{"X", "Y", "Z"} {
		if a.Get(name) != b.Get(name) {
			t.Errorf("count(%s) differs by row order: %d vs %d", name, a.Get(name), b.Get(name))
		}
	}
}

func TestAggregate_SoftFailures(t *testing.T) {
	svc := stats.Service{}

	if got := svc.Aggregate(nil, entity.ResolvedField{Column: "Narasumber", Separator: ","}); got.Len() != 0 {
		t.Errorf("nil dataset should aggregate to empty, got %d entities", got.Len())
	}

	ds := sourcesDataset("A, B")
	if got := svc.Aggregate(ds, entity.ResolvedField{}); got.Len() != 0 {
		t.Errorf("absent field should aggregate to empty, got %d entities", got.Len())
	}
	if got := svc.Aggregate(ds, entity.ResolvedField{Column: "Bukan", Separator: ","}); got.Len() != 0 {
		t.Errorf("unknown column should aggregate to empty, got %d entities", got.Len())
	}
}

func TestCountsTop(t *testing.T) {
	c := stats.NewCounts()
	for _, name := range []string{"X", "X", "Y", "Z", "Y", "X", "Y", "Z", "W", "Z"} {
		c.Add(name)
	}
	// X=3 Y=3 Z=3 W=1; ties resolve by first encounter: X, Y, Z.

	got := c.Top(3)
	want := []stats.EntityCount{
		{Entity: "X", Count: 3},
		{Entity: "Y", Count: 3},
		{Entity: "Z", Count: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Top(3) mismatch (-want +got):\n%s", diff)
	}

	if all := c.Top(99); len(all) != 4 {
		t.Errorf("Top(99) = %d entries, want all 4 without padding", len(all))
	}
	if all := c.All(); len(all) != 4 || all[3].Entity != "W" {
		t.Errorf("All() = %v, want W last", all)
	}
}

func TestUnique(t *testing.T) {
	svc := stats.Service{}
	ds := entity.NewDataset("sp", []string{"Lokasi"}, [][]string{
		{"Jakarta, Bandung"},
		{"Bandung, Surabaya"},
		{""},
		{"Jakarta, ##tbd"},
	})

	got := svc.Unique(ds, entity.ResolvedField{Column: "Lokasi", Separator: ","})
	want := []string{"Jakarta", "Bandung", "Surabaya"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unique mismatch (-want +got):\n%s", diff)
	}

	if got := svc.Unique(ds, entity.ResolvedField{}); got != nil {
		t.Errorf("absent field should yield nil, got %v", got)
	}
}
