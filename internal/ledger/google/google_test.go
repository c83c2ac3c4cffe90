package google

import "testing"

func TestFirstEmptySlot(t *testing.T) {
	cases := []struct {
		name   string
		values [][]any
		want   int
	}{
		{"empty window", nil, 0},
		{
			"after trailing data",
			[][]any{
				{"seba", "2024-03-01", "100", "50", "ferreteria"},
				{"vicky", "2024-03-02", "40", "20", "super"},
			},
			2,
		},
		{
			"gap in the middle wins",
			[][]any{
				{"seba", "2024-03-01", "100", "50", "ferreteria"},
				{"", "", "", "", ""},
				{"vicky", "2024-03-02", "40", "20", "super"},
			},
			1,
		},
		{
			"whitespace-only row counts as empty",
			[][]any{
				{" ", "", "  "},
			},
			0,
		},
		{
			"short row with data is occupied",
			[][]any{
				{"seba"},
			},
			1,
		},
	}
	for _, tc := range cases {
		if got := firstEmptySlot(tc.values); got != tc.want {
			t.Errorf("%s: expected slot %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestToRow(t *testing.T) {
	row := toRow([]any{" seba ", "2024-03-01", 100.0, 50.0, "ferreteria"})
	if row.Person != "seba" {
		t.Errorf("person should be trimmed, got %q", row.Person)
	}
	if row.Amount != "100" {
		t.Errorf("numeric cells should stringify, got %q", row.Amount)
	}

	short := toRow([]any{"vicky", "2024-03-02"})
	if short.Amount != "" || short.Description != "" {
		t.Errorf("missing cells should be empty strings, got %+v", short)
	}
	if short.Empty() {
		t.Error("a row with a person is not empty")
	}
}
