//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gorilla/mux"
	"github.com/samplemap/clipgen/cmd"
	"github.com/samplemap/clipgen/model"
	"github.com/stretchr/testify/assert"
)

func TestBeatmakerLayoutEndToEnd(t *testing.T) {
	root := t.TempDir()

	err := cmd.RunNotes([]string{"beatmaker"}, root)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(root, "notes_beatmaker"))
	if err != nil {
		t.Fatalf("output dir missing: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	assert := assert.New(t)
	assert.Len(names, 10)
	assert.Equal("01 Intro_C#1.mid", names[0])
	assert.Equal("10 Ending_A#2.mid", names[9])
}

func TestResolveEndpointE2E(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/resolve/{note}", cmd.HandleResolve)

	req := httptest.NewRequest(http.MethodGet, "/api/resolve/C3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var rr model.ResolveResponse
	err := json.Unmarshal(respBody, &rr)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(uint8(60), rr.Midi)
	assert.Equal("C3", rr.Ableton)
	assert.Equal("C4", rr.Standard)
	assert.InDelta(261.626, rr.Frequency, 0.001)
}

func TestResolveEndpointRejectsBadNoteE2E(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/resolve/{note}", cmd.HandleResolve)

	req := httptest.NewRequest(http.MethodGet, "/api/resolve/H3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Result().StatusCode)
}
