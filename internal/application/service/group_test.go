package service

import "testing"

func TestGroupByInvoiceNumberPreservesOrder(t *testing.T) {
	lines := []ImportLine{
		{RowIndex: 0, InvoiceNumber: "A", Customer: "Acme", Date: "2024-04-01", Barcode: "B1"},
		{RowIndex: 1, InvoiceNumber: "B", Customer: "Best", Date: "2024-04-02", Barcode: "B2"},
		{RowIndex: 2, InvoiceNumber: "A", Customer: "Acme", Date: "2024-04-01", Barcode: "B3"},
	}

	groups := GroupByInvoiceNumber(lines)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	if groups[0].Key != "A" || groups[1].Key != "B" {
		t.Errorf("group order = [%s %s], want [A B]", groups[0].Key, groups[1].Key)
	}
	if len(groups[0].Lines) != 2 {
		t.Fatalf("group A has %d lines, want 2", len(groups[0].Lines))
	}
	if groups[0].Lines[0].RowIndex != 0 || groups[0].Lines[1].RowIndex != 2 {
		t.Errorf("group A line order = [%d %d], want [0 2]",
			groups[0].Lines[0].RowIndex, groups[0].Lines[1].RowIndex)
	}
	if groups[1].Lines[0].Barcode != "B2" {
		t.Errorf("group B first line barcode = %s, want B2", groups[1].Lines[0].Barcode)
	}
}

func TestGroupLinesHeaderFromFirstLine(t *testing.T) {
	lines := []ImportLine{
		{RowIndex: 0, InvoiceNumber: "A", Customer: "Acme", Date: "2024-04-01"},
		{RowIndex: 1, InvoiceNumber: "A", Customer: "Conflicting Name", Date: "2024-05-01"},
	}

	groups := GroupByInvoiceNumber(lines)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Customer != "Acme" || groups[0].Date != "2024-04-01" {
		t.Errorf("header = (%s, %s), want first line's values", groups[0].Customer, groups[0].Date)
	}
}

func TestGroupBySaleDate(t *testing.T) {
	lines := []ImportLine{
		{RowIndex: 0, Date: "2024-04-01", Barcode: "B1"},
		{RowIndex: 1, Date: "2024-04-02", Barcode: "B2"},
		{RowIndex: 2, Date: "2024-04-01", Barcode: "B3"},
		{RowIndex: 3, Date: "2024-04-03", Barcode: "B4"},
	}

	groups := GroupBySaleDate(lines)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	wantKeys := []string{"2024-04-01", "2024-04-02", "2024-04-03"}
	for i, want := range wantKeys {
		if groups[i].Key != want {
			t.Errorf("groups[%d].Key = %s, want %s", i, groups[i].Key, want)
		}
	}
	if len(groups[0].Lines) != 2 || groups[0].Lines[1].Barcode != "B3" {
		t.Errorf("first group lines wrong: %+v", groups[0].Lines)
	}
}

func TestGroupLinesEmpty(t *testing.T) {
	if groups := GroupBySaleDate(nil); len(groups) != 0 {
		t.Errorf("got %d groups for no lines, want 0", len(groups))
	}
}
