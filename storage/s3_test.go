package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// fakeObjectClient records uploads and serves canned existence answers.
type fakeObjectClient struct {
	existing  map[string]bool
	existsErr error
	puts      []string
}

func (f *fakeObjectClient) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	f.puts = append(f.puts, key)
	return nil
}

func (f *fakeObjectClient) Exists(ctx context.Context, bucket, key string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[key], nil
}

func writeTempDoc(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUploadProjectKeysAndSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	master := writeTempDoc(t, dir, "master.json")
	clip1 := writeTempDoc(t, dir, "clip_1.json")
	clip2 := writeTempDoc(t, dir, "clip_2.json")

	fake := &fakeObjectClient{existing: map[string]bool{
		"videos/proj-9/clip_1.json": true,
	}}
	u := &Uploader{client: fake, bucket: "bucket", prefix: "videos/"}

	err := u.UploadProject(context.Background(), "proj-9", []string{master, clip1, clip2})
	if err != nil {
		t.Fatalf("UploadProject: %v", err)
	}

	want := []string{"videos/proj-9/master.json", "videos/proj-9/clip_2.json"}
	if len(fake.puts) != len(want) {
		t.Fatalf("uploaded keys = %v; want %v", fake.puts, want)
	}
	for i := range want {
		if fake.puts[i] != want[i] {
			t.Errorf("uploaded key %d = %q; want %q", i, fake.puts[i], want[i])
		}
	}
}

func TestUploadProjectUploadsWhenExistsCheckFails(t *testing.T) {
	dir := t.TempDir()
	master := writeTempDoc(t, dir, "master.json")

	fake := &fakeObjectClient{existsErr: errors.New("head denied")}
	u := &Uploader{client: fake, bucket: "bucket", prefix: ""}

	if err := u.UploadProject(context.Background(), "proj-1", []string{master}); err != nil {
		t.Fatalf("UploadProject: %v", err)
	}
	if len(fake.puts) != 1 || fake.puts[0] != "proj-1/master.json" {
		t.Errorf("uploaded keys = %v; want [proj-1/master.json]", fake.puts)
	}
}
