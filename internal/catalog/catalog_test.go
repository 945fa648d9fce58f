package catalog

import "testing"

func TestByID(t *testing.T) {
	p, ok := ByID("straw-6.5mm")
	if !ok {
		t.Fatal("expected cocktail straw to exist")
	}
	if p.DiameterLabel != "6.5mm" {
		t.Fatalf("unexpected diameter %q", p.DiameterLabel)
	}

	if _, ok := ByID("straw-99mm"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Fatal("All must not expose the underlying registry")
	}
}

func TestValidColor(t *testing.T) {
	for _, c := range Colors() {
		if !ValidColor(c) {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	if ValidColor("purple") {
		t.Fatal("purple is not an offered variant")
	}
}
