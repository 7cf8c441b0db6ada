package slot

import "testing"

func TestGenerateGrid(t *testing.T) {
	labels := Generate()
	if len(labels) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(labels))
	}
	if labels[0] != "09:00 AM" {
		t.Fatalf("unexpected first slot: %s", labels[0])
	}
	if labels[len(labels)-1] != "04:30 PM" {
		t.Fatalf("unexpected last slot: %s", labels[len(labels)-1])
	}
}

func TestGenerateIsStable(t *testing.T) {
	a := Generate()
	b := Generate()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("grid not deterministic at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestGenerateCrossesNoon(t *testing.T) {
	labels := Generate()
	if labels[5] != "11:30 AM" {
		t.Fatalf("expected 11:30 AM at index 5, got %s", labels[5])
	}
	if labels[6] != "12:00 PM" {
		t.Fatalf("expected 12:00 PM at index 6, got %s", labels[6])
	}
	if labels[8] != "01:00 PM" {
		t.Fatalf("expected 01:00 PM at index 8, got %s", labels[8])
	}
}

func TestSubtract(t *testing.T) {
	all := Generate()
	free := Subtract(all, []string{"10:00 AM", "04:30 PM"})
	if len(free) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(free))
	}
	for _, label := range free {
		if label == "10:00 AM" || label == "04:30 PM" {
			t.Fatalf("taken slot %s leaked into result", label)
		}
	}
	if free[0] != "09:00 AM" || free[1] != "09:30 AM" || free[2] != "10:30 AM" {
		t.Fatalf("order not preserved: %v", free[:3])
	}
}

func TestSubtractNothingTaken(t *testing.T) {
	free := Subtract(Generate(), nil)
	if len(free) != 16 {
		t.Fatalf("expected full grid, got %d slots", len(free))
	}
}

func TestSubtractIgnoresUnknownLabels(t *testing.T) {
	free := Subtract(Generate(), []string{"08:00 AM", "not a slot"})
	if len(free) != 16 {
		t.Fatalf("expected full grid, got %d slots", len(free))
	}
}

func TestIsValid(t *testing.T) {
	for _, label := range Generate() {
		if !IsValid(label) {
			t.Fatalf("grid label %s not valid", label)
		}
	}
	for _, label := range []string{"", "9:00 AM", "05:00 PM", "09:15 AM", "09:00 PM"} {
		if IsValid(label) {
			t.Fatalf("label %s should not be valid", label)
		}
	}
}
