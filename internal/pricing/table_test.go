package pricing

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func mustBundled(t *testing.T) *Table {
	t.Helper()
	table, err := LoadBundled()
	if err != nil {
		t.Fatalf("LoadBundled: %v", err)
	}
	return table
}

func TestLoadBundled_CountsAllSections(t *testing.T) {
	table := mustBundled(t)

	if got := table.TotalItemCount(); got != 15 {
		t.Fatalf("TotalItemCount = %d, want 15", got)
	}
	if got := len(table.ItemsByCategory("토공사")); got != 3 {
		t.Fatalf("토공사 items = %d, want 3", got)
	}
	if got := len(table.ItemsByCategory("골조공사 - 철근")); got != 1 {
		t.Fatalf("nested section items = %d, want 1", got)
	}
	if got := table.ItemsByCategory("없는공종"); len(got) != 0 {
		t.Fatalf("unknown category returned %d items", len(got))
	}
}

func TestLookup(t *testing.T) {
	table := mustBundled(t)

	it, ok := table.Lookup("EAR-001")
	if !ok {
		t.Fatalf("expected EAR-001 to be found")
	}
	if it.Name != "터파기" || it.Category != "토공사" || it.UnitPrice != 6200 || it.LaborRatio != "28%" {
		t.Fatalf("unexpected item: %+v", it)
	}

	if _, ok := table.Lookup("NOPE-999"); ok {
		t.Fatalf("expected unknown code to be not found")
	}
}

func TestItemsByCategory_IsRestartable(t *testing.T) {
	table := mustBundled(t)

	first := table.ItemsByCategory("가설공사")
	first[0].Name = "changed"
	second := table.ItemsByCategory("가설공사")
	if second[0].Name == "changed" {
		t.Fatalf("ItemsByCategory must return an independent copy")
	}
	if second[0].Code != "TMP-001" || second[2].Code != "TMP-003" {
		t.Fatalf("unexpected order: %+v", second)
	}
}

func TestAdjustedPrice(t *testing.T) {
	table := mustBundled(t)

	t.Run("no parameters keeps base price", func(t *testing.T) {
		got, ok := table.AdjustedPrice("EAR-001", nil)
		if !ok {
			t.Fatalf("expected found")
		}
		nearlyEqual(t, "price", got, 6200)
	})

	t.Run("single factor", func(t *testing.T) {
		got, _ := table.AdjustedPrice("EAR-001", map[string]string{"지반상태": "연약"})
		nearlyEqual(t, "price", got, 6200*1.15)
	})

	t.Run("factors compose multiplicatively", func(t *testing.T) {
		got, _ := table.AdjustedPrice("EAR-001", map[string]string{"지반상태": "연약", "깊이": "2-4m"})
		nearlyEqual(t, "price", got, 6200*1.1*1.15)
	})

	t.Run("substring containment matches every overlapping range", func(t *testing.T) {
		got, _ := table.AdjustedPrice("TMP-001", map[string]string{"높이": "1"})
		nearlyEqual(t, "price", got, 18500*1.0*1.15)
	})

	t.Run("parameter containing the label matches", func(t *testing.T) {
		got, _ := table.AdjustedPrice("DEM-001", map[string]string{"소음규제": "소음규제 있음"})
		nearlyEqual(t, "price", got, 78000*1.3)
	})

	t.Run("empty value never matches", func(t *testing.T) {
		got, _ := table.AdjustedPrice("EAR-001", map[string]string{"지반상태": ""})
		nearlyEqual(t, "price", got, 6200)
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, ok := table.AdjustedPrice("NOPE", map[string]string{"지반상태": "연약"}); ok {
			t.Fatalf("expected not found")
		}
	})
}

func TestSearchByName(t *testing.T) {
	table := mustBundled(t)

	got := table.SearchByName("철거")
	if len(got) != 2 {
		t.Fatalf("SearchByName returned %d items, want 2", len(got))
	}
	if got := table.SearchByName("  "); len(got) != 0 {
		t.Fatalf("blank search returned %d items", len(got))
	}
}

func TestParse_Layouts(t *testing.T) {
	data := []byte(`{
		"flat": [{"공종코드": "A-1", "공종명칭": "a", "단가": 100, "노무비율": 0.4}],
		"direct": {"항목": [{"공종코드": "B-1", "공종명칭": "b", "단가": 200}], "note": "metadata"},
		"deep": {"x": {"항목": [{"공종코드": "C-1", "공종명칭": "c", "단가": 300}]}}
	}`)

	table, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if table.TotalItemCount() != 3 {
		t.Fatalf("TotalItemCount = %d, want 3", table.TotalItemCount())
	}
	a, _ := table.Lookup("A-1")
	if a.LaborRatio != "0.4" {
		t.Fatalf("numeric labor ratio = %q, want 0.4", a.LaborRatio)
	}
	if c, ok := table.Lookup("C-1"); !ok || c.Category != "deep - x" {
		t.Fatalf("unexpected nested item: %+v ok=%v", c, ok)
	}
	want := []string{"deep - x", "direct", "flat"}
	got := table.Categories()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories = %v, want %v", got, want)
		}
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{`)); err == nil {
		t.Fatalf("expected error")
	}
}
