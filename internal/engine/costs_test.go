package engine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCostTableLookupUnknown(t *testing.T) {
	table := NewCostTable()
	if !table.Lookup("missing").IsZero() {
		t.Fatalf("unknown sku must cost zero")
	}
}

func TestCostTableBulkThenOverride(t *testing.T) {
	table := NewCostTable()
	table.SetAll([]string{"X", "Y", "Z"}, decimal.NewFromInt(150))
	table.Set("Y", decimal.NewFromInt(200))

	if got := table.Lookup("X"); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("X: %s", got)
	}
	if got := table.Lookup("Y"); !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("single-set must win: %s", got)
	}
	if table.Len() != 3 {
		t.Fatalf("len: %d", table.Len())
	}
}

func TestCostTableNegativeClamp(t *testing.T) {
	table := NewCostTable()
	table.Set("X", decimal.NewFromInt(-40))
	if !table.Lookup("X").IsZero() {
		t.Fatalf("negative cost must clamp to zero")
	}
}

func TestCostTableSnapshotIsolation(t *testing.T) {
	table := NewCostTable()
	table.Set("X", decimal.NewFromInt(100))

	snapshot := table.Snapshot()
	table.Set("X", decimal.NewFromInt(999))

	if got := snapshot.Lookup("X"); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("snapshot observed a later mutation: %s", got)
	}
}
