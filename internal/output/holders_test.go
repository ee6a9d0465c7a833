package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Ourobor-OS/system-vold/pkg/model"
)

func TestRenderHolders(t *testing.T) {
	matches := []model.Match{
		{PID: 101, User: "media", Name: "mediaserver", Ref: model.Reference{Kind: model.RefOpenFile, Path: "/data/media/a.mp3"}},
		{PID: 202, User: "root", Name: "sh", Ref: model.Reference{Kind: model.RefWorkingDir, Path: "/data"}},
	}

	var buf bytes.Buffer
	RenderHolders(&buf, "/data", matches, false)
	got := buf.String()
	for _, want := range []string{"Processes holding /data", "101", "mediaserver", "open file", "working directory", "(/data/media/a.mp3)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\033[") {
		t.Error("color codes present with color disabled")
	}
}

func TestRenderHoldersEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderHolders(&buf, "/data", nil, false)
	if !strings.Contains(buf.String(), "No processes are holding /data") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestRenderHoldersSanitizesNames(t *testing.T) {
	matches := []model.Match{
		{PID: 1, User: "u", Name: "evil\x1b[2Jname", Ref: model.Reference{Kind: model.RefOpenFile, Path: "/data/f"}},
	}
	var buf bytes.Buffer
	RenderHolders(&buf, "/data", matches, false)
	if bytes.ContainsRune(buf.Bytes(), 0x1b) {
		t.Error("raw escape byte reached the output")
	}
}

func TestToJSON(t *testing.T) {
	matches := []model.Match{
		{PID: 7, User: "root", Name: "d", Ref: model.Reference{Kind: model.RefFileMap, Path: "/data/lib.so"}},
	}
	got, err := ToJSON("/data", matches)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"mountPoint": "/data"`, `"kind": "file map"`, `"pid": 7`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON missing %q:\n%s", want, got)
		}
	}
}

func TestToJSONEmpty(t *testing.T) {
	got, err := ToJSON("/data", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `"holders": []`) {
		t.Errorf("empty holder list should marshal as [], got:\n%s", got)
	}
}
