package curriculum

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefault_EmbeddedCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("embedded catalog failed to load: %v", err)
	}
	if len(c.Units()) != 3 {
		t.Fatalf("len(Units) = %d, want 3", len(c.Units()))
	}

	wantOrder := []int{1, 2, 9}
	for i, u := range c.Units() {
		if u.ID != wantOrder[i] {
			t.Errorf("Units()[%d].ID = %d, want %d", i, u.ID, wantOrder[i])
		}
	}
	if len(c.Classmates()) != 5 {
		t.Errorf("len(Classmates) = %d, want 5", len(c.Classmates()))
	}
}

func TestDefault_UnitModes(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	u1, err := c.Unit(1)
	if err != nil {
		t.Fatal(err)
	}
	if u1.Offers(ModeGrammar) || u1.Offers(ModePronunciation) {
		t.Error("unit 1 should not offer grammar or pronunciation")
	}
	if got := u1.ItemCount(ModeVocab); got != 3 {
		t.Errorf("unit 1 vocab count = %d, want 3", got)
	}

	u9, err := c.Unit(9)
	if err != nil {
		t.Fatal(err)
	}
	if len(u9.Modes()) != 5 {
		t.Errorf("unit 9 modes = %v, want all five", u9.Modes())
	}
	if got := u9.ItemCount(ModePronunciation); got != 4 {
		t.Errorf("unit 9 pronunciation count = %d, want 4", got)
	}
	if got := u9.ItemCount(ModeListening); got != 1 {
		t.Errorf("listening is one page, got %d", got)
	}
}

func TestCatalog_UnitNotFound(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Unit(42); err == nil {
		t.Error("expected error for unknown unit")
	}
	if pos := c.Position(42); pos != -1 {
		t.Errorf("Position(42) = %d, want -1", pos)
	}
	if pos := c.Position(9); pos != 2 {
		t.Errorf("Position(9) = %d, want 2", pos)
	}
}

func TestNew_RejectsBadVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"1.0.0", "not a semantic version"},
		{"", "not a semantic version"},
		{"v2.0.0", "not supported"},
	}
	for _, tt := range tests {
		_, err := New(tt.version, nil, nil)
		if err == nil {
			t.Errorf("New(%q) succeeded, want error", tt.version)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("New(%q) error = %v, want mention of %q", tt.version, err, tt.want)
		}
	}
}

func TestNew_OrdersByID(t *testing.T) {
	units := []Unit{
		{ID: 5, Order: 2, Title: "B"},
		{ID: 3, Order: 1, Title: "A"},
		{ID: 4, Title: "Unnumbered"},
	}
	c, err := New("v1.2.0", units, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := []int{c.Units()[0].ID, c.Units()[1].ID, c.Units()[2].ID}
	if got[0] != 3 || got[1] != 4 || got[2] != 5 {
		t.Errorf("order = %v, want [3 4 5]", got)
	}
}

func TestNew_OrderMustFollowID(t *testing.T) {
	units := []Unit{
		{ID: 1, Order: 2, Title: "A"},
		{ID: 2, Order: 1, Title: "B"},
	}
	_, err := New("v1.2.0", units, nil)
	if err == nil {
		t.Fatal("expected an error for order that runs against the IDs")
	}
	if !strings.Contains(err.Error(), "unit 2 has order 1") {
		t.Errorf("error = %v, want mention of unit 2", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"content/catalog.json": {Data: []byte(`{"version":"v1.0.1","classmates":[{"student_id":"x1","name":"X","class_id":"9B","xp":10}]}`)},
		"content/units/a.json": {Data: []byte(`{"id":2,"order":2,"title":"Two","vocab":[{"id":"w","word":"Word"}]}`)},
		"content/units/b.json": {Data: []byte(`{"id":1,"order":1,"title":"One"}`)},
		"content/units/notes.txt": {Data: []byte("ignored")},
	}

	c, err := LoadFS(fsys, "content")
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if c.Version != "v1.0.1" {
		t.Errorf("Version = %q, want v1.0.1", c.Version)
	}
	if len(c.Units()) != 2 || c.Units()[0].Title != "One" {
		t.Errorf("unexpected units: %+v", c.Units())
	}
	if c.Classmates()[0].ClassID != "9B" {
		t.Errorf("classmate class = %q, want 9B", c.Classmates()[0].ClassID)
	}
}

func TestLoadFS_BadUnitJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"d/catalog.json":   {Data: []byte(`{"version":"v1.0.0"}`)},
		"d/units/bad.json": {Data: []byte(`{"id":`)},
	}
	if _, err := LoadFS(fsys, "d"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestQuestionsByMode(t *testing.T) {
	u := Unit{
		Listening: ListeningExercise{Questions: []Question{{Prompt: "l"}}},
		Grammar:   &GrammarExercise{Questions: []Question{{Prompt: "g1"}, {Prompt: "g2"}}},
	}
	if n := len(u.Questions(ModeListening)); n != 1 {
		t.Errorf("listening questions = %d, want 1", n)
	}
	if n := len(u.Questions(ModeGrammar)); n != 2 {
		t.Errorf("grammar questions = %d, want 2", n)
	}
	if u.Questions(ModeVocab) != nil {
		t.Error("vocab has no quiz questions")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range AllModes() {
		got, ok := ParseMode(string(m))
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, ok)
		}
	}
	if _, ok := ParseMode("writing"); ok {
		t.Error("ParseMode(writing) should fail")
	}
}
