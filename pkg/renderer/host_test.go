package renderer

import (
	"strings"
	"testing"
)

func TestDefaultThreads(t *testing.T) {
	if n := DefaultThreads(); n < 1 {
		t.Errorf("Expected at least one thread, got %d", n)
	}
}

func TestHostInfo_Table(t *testing.T) {
	info, err := GetHostInfo()
	if err != nil {
		// Sandboxes may hide /proc; the table must still render
		t.Logf("host info incomplete: %v", err)
	}
	if info.LogicalCores < 1 {
		t.Errorf("Expected at least one logical core, got %d", info.LogicalCores)
	}

	table := info.Table()
	for _, want := range []string{"Physical cores", "Logical cores", "Memory"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected %q in table, got\n%s", want, table)
		}
	}
}
