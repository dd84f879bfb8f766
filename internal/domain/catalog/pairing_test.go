package catalog

import (
	"testing"
)

var testVideoExts = []string{".mp4", ".mov", ".mkv", ".avi", ".m4v"}

func recordByName(t *testing.T, records []PhotoRecord, name string) *PhotoRecord {
	t.Helper()
	for i := range records {
		if records[i].Name == name {
			return &records[i]
		}
	}
	t.Fatalf("no record named %q in %v", name, records)
	return nil
}

func TestClassify(t *testing.T) {
	t.Run("pairs jpg with raw and classifies orphans", func(t *testing.T) {
		records := Classify([]string{"a.jpg", "a.cr2", "b.jpg", "c.nef"}, testVideoExts)
		if len(records) != 3 {
			t.Fatalf("got %d records, want 3", len(records))
		}

		a := recordByName(t, records, "a")
		if a.Type != TypeJPGRaw || a.CameraBrand != "Canon" {
			t.Fatalf("record a: type %s brand %q", a.Type, a.CameraBrand)
		}
		if a.JPGPath != "a.jpg" || a.RAWPath != "a.cr2" {
			t.Fatalf("record a constituents: %q %q", a.JPGPath, a.RAWPath)
		}

		b := recordByName(t, records, "b")
		if b.Type != TypeJPGOnly || b.RAWPath != "" {
			t.Fatalf("record b: type %s raw %q", b.Type, b.RAWPath)
		}

		c := recordByName(t, records, "c")
		if c.Type != TypeRAWOnly || c.CameraBrand != "Nikon" {
			t.Fatalf("record c: type %s brand %q", c.Type, c.CameraBrand)
		}
		if c.DisplayPath != "c.nef" {
			t.Fatalf("record c display path %q", c.DisplayPath)
		}
	})

	t.Run("pairing key is case-insensitive", func(t *testing.T) {
		records := Classify([]string{"IMG_001.JPG", "img_001.CR2"}, testVideoExts)
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
		if records[0].Type != TypeJPGRaw {
			t.Fatalf("got type %s, want jpg+raw", records[0].Type)
		}
		if records[0].Name != "IMG_001" {
			t.Fatalf("name %q, want extension stripped from JPEG", records[0].Name)
		}
	})

	t.Run("dual-format raw picks first extension, surfaces the other", func(t *testing.T) {
		records := Classify([]string{"a.jpg", "a.dng", "a.cr2"}, testVideoExts)
		if len(records) != 2 {
			t.Fatalf("got %d records, want 2", len(records))
		}
		// .cr2 < .dng, so the CR2 pairs and the DNG stays visible alone.
		var paired, orphan *PhotoRecord
		for i := range records {
			if records[i].Type == TypeJPGRaw {
				paired = &records[i]
			}
			if records[i].Type == TypeRAWOnly {
				orphan = &records[i]
			}
		}
		if paired == nil || paired.RAWPath != "a.cr2" {
			t.Fatalf("paired record wrong: %+v", paired)
		}
		if orphan == nil || orphan.RAWPath != "a.dng" || orphan.CameraBrand != "DJI" {
			t.Fatalf("orphan record wrong: %+v", orphan)
		}
	})

	t.Run("videos never pair", func(t *testing.T) {
		records := Classify([]string{"clip.mp4", "clip.jpg"}, testVideoExts)
		if len(records) != 2 {
			t.Fatalf("got %d records, want 2", len(records))
		}
		for i := range records {
			if records[i].VideoPath != "" && records[i].JPGPath != "" {
				t.Fatalf("video paired with jpg: %+v", records[i])
			}
		}
	})

	t.Run("unrecognized extensions are ignored", func(t *testing.T) {
		records := Classify([]string{"notes.txt", "a.jpg", ".DS_Store"}, testVideoExts)
		if len(records) != 1 || records[0].Name != "a" {
			t.Fatalf("got %v, want single record a", records)
		}
	})

	t.Run("no filename appears in two records", func(t *testing.T) {
		names := []string{
			"a.jpg", "a.cr2", "a.dng", "b.JPEG", "b.arw",
			"c.nef", "d.jpg", "e.mp4", "e.jpg", "f.orf",
		}
		records := Classify(names, testVideoExts)

		seen := make(map[string]int)
		for i := range records {
			for _, path := range records[i].Constituents() {
				seen[path]++
			}
		}
		for name, count := range seen {
			if count > 1 {
				t.Fatalf("%s appears in %d records", name, count)
			}
		}
		if len(seen) != len(names) {
			t.Fatalf("classified %d of %d files", len(seen), len(names))
		}
	})

	t.Run("output ordered by name case-insensitively", func(t *testing.T) {
		records := Classify([]string{"Zebra.jpg", "apple.jpg", "Mango.cr2"}, testVideoExts)
		got := []string{records[0].Name, records[1].Name, records[2].Name}
		want := []string{"apple", "Mango", "Zebra"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order %v, want %v", got, want)
			}
		}
	})

	t.Run("empty input yields no records", func(t *testing.T) {
		if records := Classify(nil, testVideoExts); len(records) != 0 {
			t.Fatalf("got %v, want none", records)
		}
	})
}
