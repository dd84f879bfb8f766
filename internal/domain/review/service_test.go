package review

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgphoto/photoreview-api/internal/domain/settings"
)

const reviewName = "para-revision"

func newTestService(t *testing.T, mount string, enableDelete bool) *Service {
	t.Helper()
	store := settings.Open(filepath.Join(t.TempDir(), "config.json"))
	if err := store.Save(settings.Settings{
		MountPoints:        []string{mount},
		DestinationFolder:  reviewName,
		EnableDeleteButton: enableDelete,
	}); err != nil {
		t.Fatal(err)
	}
	return NewService(store)
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestIsReviewFolder(t *testing.T) {
	if !IsReviewFolder("/mnt/nvme/session1/para-revision", reviewName) {
		t.Fatal("expected review folder")
	}
	if IsReviewFolder("/mnt/nvme/session1", reviewName) {
		t.Fatal("plain session folder classified as review")
	}
	// Case-sensitive by contract.
	if IsReviewFolder("/mnt/nvme/session1/Para-Revision", reviewName) {
		t.Fatal("basename match must be case-sensitive")
	}
	if RoleFor("/mnt/nvme/session1/para-revision", reviewName) != RoleReview {
		t.Fatal("role should be review")
	}
	if RoleFor("/mnt/nvme/session1", reviewName) != RoleNormal {
		t.Fatal("role should be normal")
	}
}

func TestMoveThenRestoreRoundTrip(t *testing.T) {
	mount := t.TempDir()
	session := filepath.Join(mount, "session1")
	if err := os.Mkdir(session, 0o755); err != nil {
		t.Fatal(err)
	}
	jpg := filepath.Join(session, "a.jpg")
	raw := filepath.Join(session, "a.cr2")
	writeFile(t, jpg)
	writeFile(t, raw)

	svc := newTestService(t, mount, false)
	ctx := context.Background()
	ref := FileRef{Name: "a", JPG: jpg, RAW: raw}

	moveRes, err := svc.Move(ctx, session, []FileRef{ref}, reviewName)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moveRes.Moved != 1 || len(moveRes.Errors) != 0 {
		t.Fatalf("move result %+v", moveRes)
	}

	reviewDir := filepath.Join(session, reviewName)
	movedJPG := filepath.Join(reviewDir, "a.jpg")
	movedRAW := filepath.Join(reviewDir, "a.cr2")
	if !exists(movedJPG) || !exists(movedRAW) {
		t.Fatal("constituents did not land in review folder")
	}
	if exists(jpg) || exists(raw) {
		t.Fatal("constituents still in source folder")
	}

	restoreRes, err := svc.Restore(ctx, reviewDir, []FileRef{{Name: "a", JPG: movedJPG, RAW: movedRAW}})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restoreRes.Restored != 1 || len(restoreRes.Errors) != 0 {
		t.Fatalf("restore result %+v", restoreRes)
	}
	if !restoreRes.FolderDeleted {
		t.Fatal("empty review folder should have been deleted")
	}
	if exists(reviewDir) {
		t.Fatal("review folder still on disk")
	}
	if !exists(jpg) || !exists(raw) {
		t.Fatal("constituents did not return to session folder")
	}
}

func TestMovePartialFailure(t *testing.T) {
	mount := t.TempDir()
	session := filepath.Join(mount, "session1")
	if err := os.Mkdir(session, 0o755); err != nil {
		t.Fatal(err)
	}
	jpg := filepath.Join(session, "a.jpg")
	writeFile(t, jpg)
	// RAW referenced but never written: another client took it already.
	raw := filepath.Join(session, "a.cr2")

	svc := newTestService(t, mount, false)
	res, err := svc.Move(context.Background(), session, []FileRef{{Name: "a", JPG: jpg, RAW: raw}}, reviewName)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if res.Moved != 1 {
		t.Fatalf("moved %d, want 1 (record with one surviving constituent)", res.Moved)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors %v, want exactly one for the missing RAW", res.Errors)
	}
	if !exists(filepath.Join(session, reviewName, "a.jpg")) {
		t.Fatal("surviving constituent not moved")
	}
}

func TestMoveOutOfBoundsFolder(t *testing.T) {
	svc := newTestService(t, t.TempDir(), false)
	_, err := svc.Move(context.Background(), "/etc", []FileRef{{Name: "x", JPG: "/etc/passwd"}}, reviewName)
	if err == nil {
		t.Fatal("expected out-of-bounds error")
	}
}

func TestRestoreEmptySelection(t *testing.T) {
	mount := t.TempDir()
	session := filepath.Join(mount, "session1")
	if err := os.Mkdir(session, 0o755); err != nil {
		t.Fatal(err)
	}

	svc := newTestService(t, mount, false)
	res, err := svc.Restore(context.Background(), session, nil)
	if err != nil {
		t.Fatalf("restore on empty selection must not error: %v", err)
	}
	if res.Restored != 0 || res.FolderDeleted || len(res.Errors) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRestoreKeepsFolderWithRemainingPhotos(t *testing.T) {
	mount := t.TempDir()
	reviewDir := filepath.Join(mount, reviewName)
	if err := os.Mkdir(reviewDir, 0o755); err != nil {
		t.Fatal(err)
	}
	a := filepath.Join(reviewDir, "a.jpg")
	b := filepath.Join(reviewDir, "b.jpg")
	writeFile(t, a)
	writeFile(t, b)

	svc := newTestService(t, mount, false)
	res, err := svc.Restore(context.Background(), reviewDir, []FileRef{{Name: "a", JPG: a}})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if res.FolderDeleted {
		t.Fatal("folder deleted while b.jpg remained")
	}
	if !exists(b) {
		t.Fatal("unselected photo vanished")
	}
}

func TestDelete(t *testing.T) {
	t.Run("refuses outside the review folder", func(t *testing.T) {
		mount := t.TempDir()
		session := filepath.Join(mount, "session1")
		if err := os.Mkdir(session, 0o755); err != nil {
			t.Fatal(err)
		}
		jpg := filepath.Join(session, "a.jpg")
		writeFile(t, jpg)

		svc := newTestService(t, mount, true)
		_, err := svc.Delete(context.Background(), session, []FileRef{{Name: "a", JPG: jpg}})
		if !errors.Is(err, ErrNotReviewFolder) {
			t.Fatalf("expected ErrNotReviewFolder, got %v", err)
		}
		if !exists(jpg) {
			t.Fatal("file deleted despite rejected request")
		}
	})

	t.Run("refuses when deletion is disabled", func(t *testing.T) {
		mount := t.TempDir()
		reviewDir := filepath.Join(mount, reviewName)
		if err := os.Mkdir(reviewDir, 0o755); err != nil {
			t.Fatal(err)
		}
		jpg := filepath.Join(reviewDir, "a.jpg")
		writeFile(t, jpg)

		svc := newTestService(t, mount, false)
		_, err := svc.Delete(context.Background(), reviewDir, []FileRef{{Name: "a", JPG: jpg}})
		if !errors.Is(err, ErrDeleteDisabled) {
			t.Fatalf("expected ErrDeleteDisabled, got %v", err)
		}
		if !exists(jpg) {
			t.Fatal("file deleted despite disabled delete")
		}
	})

	t.Run("deletes constituents and cleans up empty folder", func(t *testing.T) {
		mount := t.TempDir()
		reviewDir := filepath.Join(mount, reviewName)
		if err := os.Mkdir(reviewDir, 0o755); err != nil {
			t.Fatal(err)
		}
		jpg := filepath.Join(reviewDir, "a.jpg")
		raw := filepath.Join(reviewDir, "a.cr2")
		writeFile(t, jpg)
		writeFile(t, raw)

		svc := newTestService(t, mount, true)
		res, err := svc.Delete(context.Background(), reviewDir, []FileRef{{Name: "a", JPG: jpg, RAW: raw}})
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if res.Deleted != 1 || len(res.Errors) != 0 {
			t.Fatalf("result %+v", res)
		}
		if !res.FolderDeleted {
			t.Fatal("empty review folder not removed")
		}
		if exists(jpg) || exists(raw) {
			t.Fatal("constituents survived delete")
		}
	})

	t.Run("missing constituent is a per-record error, not a crash", func(t *testing.T) {
		mount := t.TempDir()
		reviewDir := filepath.Join(mount, reviewName)
		if err := os.Mkdir(reviewDir, 0o755); err != nil {
			t.Fatal(err)
		}
		b := filepath.Join(reviewDir, "b.jpg")
		writeFile(t, b)

		svc := newTestService(t, mount, true)
		res, err := svc.Delete(context.Background(), reviewDir, []FileRef{
			{Name: "a", JPG: filepath.Join(reviewDir, "a.jpg")},
			{Name: "b", JPG: b},
		})
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if res.Deleted != 1 {
			t.Fatalf("deleted %d, want 1", res.Deleted)
		}
		if len(res.Errors) != 1 {
			t.Fatalf("errors %v, want one for the missing file", res.Errors)
		}
	})
}

func TestDeleteJPGsOnly(t *testing.T) {
	mount := t.TempDir()
	session := filepath.Join(mount, "session1")
	if err := os.Mkdir(session, 0o755); err != nil {
		t.Fatal(err)
	}
	pairJPG := filepath.Join(session, "a.jpg")
	pairRAW := filepath.Join(session, "a.cr2")
	loneJPG := filepath.Join(session, "b.jpg")
	writeFile(t, pairJPG)
	writeFile(t, pairRAW)
	writeFile(t, loneJPG)

	svc := newTestService(t, mount, false)
	res, err := svc.DeleteJPGsOnly(context.Background(), []FileRef{
		{Name: "a", JPG: pairJPG, RAW: pairRAW},
		{Name: "b", JPG: loneJPG},
	})
	if err != nil {
		t.Fatalf("delete jpgs: %v", err)
	}
	if res.Deleted != 1 || res.Skipped != 1 {
		t.Fatalf("result %+v, want deleted 1 skipped 1", res)
	}
	if exists(pairJPG) {
		t.Fatal("paired JPEG survived")
	}
	if !exists(pairRAW) {
		t.Fatal("RAW deleted alongside its JPEG")
	}
	if !exists(loneJPG) {
		t.Fatal("jpg_only record's file was touched")
	}
}
