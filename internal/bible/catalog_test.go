package bible

import "testing"

func TestCatalogShape(t *testing.T) {
	books := Books()
	if len(books) != BookCount {
		t.Fatalf("expected %d books, got %d", BookCount, len(books))
	}

	seen := make(map[string]struct{}, len(books))
	total := 0
	for i, b := range books {
		if b.Seq != i+1 {
			t.Fatalf("book %s: expected seq %d, got %d", b.Code, i+1, b.Seq)
		}
		if b.Chapters < 1 {
			t.Fatalf("book %s has no chapters", b.Code)
		}
		if _, dup := seen[b.Code]; dup {
			t.Fatalf("duplicate book code %s", b.Code)
		}
		seen[b.Code] = struct{}{}
		total += b.Chapters
	}

	if total != 1189 {
		t.Fatalf("expected 1189 chapters in the canon, got %d", total)
	}

	if books[38].Code != "Mal" {
		t.Fatalf("expected Malachi to close the Old Testament, got %s", books[38].Code)
	}
	if books[39].Code != "Mat" {
		t.Fatalf("expected Matthew to open the New Testament, got %s", books[39].Code)
	}
}

func TestLookups(t *testing.T) {
	if got := ChapterCount("Psa"); got != 150 {
		t.Fatalf("expected 150 Psalms, got %d", got)
	}
	if got := ChapterCount("unknown"); got != 0 {
		t.Fatalf("expected 0 for unknown code, got %d", got)
	}
	if got := IndexOf("Gen"); got != 0 {
		t.Fatalf("expected Genesis at index 0, got %d", got)
	}
	if got := IndexOf("xyz"); got != -1 {
		t.Fatalf("expected -1 for unknown code, got %d", got)
	}
}
