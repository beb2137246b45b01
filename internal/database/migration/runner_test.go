package migration

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_OrderingAndChecksum(t *testing.T) {
	src := fstest.MapFS{
		"V2__add_indexes.sql": {Data: []byte("CREATE INDEX idx ON t(a);")},
		"V1__init.sql":        {Data: []byte("CREATE TABLE t (a INT);")},
		"notes.txt":           {Data: []byte("ignored")},
	}

	migs, err := loadMigrations(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Fatalf("migrations must sort by version: %+v", migs)
	}
	if migs[0].Name != "init" {
		t.Fatalf("unexpected name %q", migs[0].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("checksums must be distinct and non-empty")
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	src := fstest.MapFS{
		"V1__a.sql": {Data: []byte("SELECT 1;")},
		"V1__b.sql": {Data: []byte("SELECT 2;")},
	}

	if _, err := loadMigrations(src); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoadMigrations_EmptyFileRejected(t *testing.T) {
	src := fstest.MapFS{
		"V1__empty.sql": {Data: []byte("   \n")},
	}

	if _, err := loadMigrations(src); err == nil {
		t.Fatalf("expected empty migration error")
	}
}
