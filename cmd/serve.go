package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/samplemap/clipgen/chord"
	"github.com/samplemap/clipgen/layout"
	"github.com/samplemap/clipgen/model"
	"github.com/samplemap/clipgen/pitch"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the note and chord tables as a JSON API",
	Long: `Serves the pitch resolver, chord builder and layout tables over HTTP
for checking mappings from other tools. Writes no files.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve(serveAddr)
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func queryConvention(r *http.Request) (pitch.Convention, error) {
	notation := r.URL.Query().Get("notation")
	if notation == "" {
		return pitch.Ableton, nil
	}
	return pitch.ParseConvention(notation)
}

// HandleResolve answers GET /api/resolve/{note}.
func HandleResolve(w http.ResponseWriter, r *http.Request) {
	conv, err := queryConvention(r)
	if err != nil {
		writeError(w, 400, err)
		return
	}

	note := mux.Vars(r)["note"]
	midi, err := pitch.Parse(note, conv)
	if err != nil {
		writeError(w, 400, err)
		return
	}

	json.NewEncoder(w).Encode(model.ResolveResponse{
		Note:      note,
		Midi:      midi,
		Frequency: pitch.Frequency(midi),
		Ableton:   pitch.Name(midi, pitch.Ableton),
		Standard:  pitch.Name(midi, pitch.Standard),
	})
}

// HandleChord answers GET /api/chord/{root}/{triad}.
func HandleChord(w http.ResponseWriter, r *http.Request) {
	conv, err := queryConvention(r)
	if err != nil {
		writeError(w, 400, err)
		return
	}

	vars := mux.Vars(r)
	root, err := pitch.Parse(vars["root"], conv)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	triad, err := chord.ParseTriad(vars["triad"])
	if err != nil {
		writeError(w, 400, err)
		return
	}
	notes, err := chord.Build(root, triad)
	if err != nil {
		writeError(w, 400, err)
		return
	}

	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = pitch.Name(n, conv)
	}
	json.NewEncoder(w).Encode(model.ChordResponse{
		Root:  vars["root"],
		Triad: triad.String(),
		Notes: notes[:],
		Names: names,
	})
}

// HandleLayouts answers GET /api/layouts.
func HandleLayouts(w http.ResponseWriter, r *http.Request) {
	res := make([]model.LayoutOverview, 0, len(layout.Layouts))
	for _, name := range layout.Names() {
		l := layout.Layouts[name]
		res = append(res, model.LayoutOverview{
			Name:     name,
			Dir:      l.Dir,
			NumNotes: len(l.Entries),
		})
	}
	json.NewEncoder(w).Encode(res)
}

func serve(addr string) {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/api/resolve/{note}", HandleResolve).Methods("GET")
	router.HandleFunc("/api/chord/{root}/{triad}", HandleChord).Methods("GET")
	router.HandleFunc("/api/layouts", HandleLayouts).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Printf("listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
