package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		store := Open(filepath.Join(t.TempDir(), "config.json"))
		got := store.Get()
		want := Defaults()
		if got.DestinationFolder != want.DestinationFolder {
			t.Fatalf("destination folder %q, want %q", got.DestinationFolder, want.DestinationFolder)
		}
		if got.EnableDeleteButton {
			t.Fatal("delete button enabled by default")
		}
		if len(got.MountPoints) != len(want.MountPoints) {
			t.Fatalf("mount points %v, want %v", got.MountPoints, want.MountPoints)
		}
	})

	t.Run("corrupt file yields defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		store := Open(path)
		if store.Get().DestinationFolder != Defaults().DestinationFolder {
			t.Fatal("corrupt file did not fall back to defaults")
		}
	})

	t.Run("save then reopen round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		store := Open(path)

		next := Settings{
			MountPoints:        []string{"/mnt/photos"},
			DestinationFolder:  "review",
			EnableDeleteButton: true,
		}
		if err := store.Save(next); err != nil {
			t.Fatalf("save: %v", err)
		}

		reopened := Open(path)
		got := reopened.Get()
		if got.DestinationFolder != "review" || !got.EnableDeleteButton {
			t.Fatalf("reopened settings wrong: %+v", got)
		}
		if len(got.MountPoints) != 1 || got.MountPoints[0] != "/mnt/photos" {
			t.Fatalf("mount points wrong: %v", got.MountPoints)
		}
		// Video extensions default in when the save omitted them.
		if len(got.VideoExtensions) == 0 {
			t.Fatal("video extensions not defaulted")
		}
	})

	t.Run("Get returns a copy", func(t *testing.T) {
		store := Open(filepath.Join(t.TempDir(), "config.json"))
		got := store.Get()
		got.MountPoints[0] = "/tampered"
		if store.Get().MountPoints[0] == "/tampered" {
			t.Fatal("mutating the returned settings changed store state")
		}
	})
}
