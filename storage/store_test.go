package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"veoforge/types"
)

func TestSaveProjectWritesMasterAndClips(t *testing.T) {
	store := NewDocumentStore(t.TempDir())

	m := types.MasterDescriptor{}
	m.ProjectMetadata.Type = "master_descriptor"
	clips := []types.ClipDescriptor{
		{ClipMetadata: types.ClipMetadata{ClipNumber: 1}},
		{ClipMetadata: types.ClipMetadata{ClipNumber: 2}},
		{ClipMetadata: types.ClipMetadata{ClipNumber: 3}},
	}

	paths, err := store.SaveProject("proj-1", m, clips)
	if err != nil {
		t.Fatalf("SaveProject: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("expected 4 files, got %d", len(paths))
	}
	if filepath.Base(paths[0]) != "master.json" {
		t.Errorf("first path = %s, want master.json", filepath.Base(paths[0]))
	}
	for i := 1; i < len(paths); i++ {
		want := "clip_" + string(rune('0'+i)) + ".json"
		if filepath.Base(paths[i]) != want {
			t.Errorf("path %d = %s, want %s", i, filepath.Base(paths[i]), want)
		}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s on disk: %v", p, err)
		}
	}
}

func TestSaveProjectFormatting(t *testing.T) {
	store := NewDocumentStore(t.TempDir())

	m := types.MasterDescriptor{}
	m.PersonIdentity.Name = "José García"
	m.AdditionalInstructions.Instructions = "<keep markup>"

	paths, err := store.SaveProject("fmt-check", m, nil)
	if err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("read master.json: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "\n  \"") {
		t.Error("expected 2-space indented output")
	}
	if !strings.Contains(content, "José García") {
		t.Error("expected non-ASCII characters preserved verbatim")
	}
	if strings.Contains(content, "\\u003c") {
		t.Error("expected HTML escaping disabled")
	}
}
