package model

// NoteSpec is one entry of an instrument layout or note range: a note
// name (Ableton convention unless stated otherwise) plus the track name
// that the DAW should display for the clip.
type NoteSpec struct {
	Note      string
	TrackName string
}

// ChordSpec describes a triad to render: root note name, triad type tag
// ("Major", "Minor", "Diminished", "Augmented") and the clip label.
type ChordSpec struct {
	Root  string
	Triad string
	Label string
}

type ResolveResponse struct {
	Note      string  `json:"note"`
	Midi      uint8   `json:"midi"`
	Frequency float64 `json:"frequency"`
	Ableton   string  `json:"ableton"`
	Standard  string  `json:"standard"`
}

type ChordResponse struct {
	Root  string   `json:"root"`
	Triad string   `json:"triad"`
	Notes []uint8  `json:"notes"`
	Names []string `json:"names"`
}

type LayoutOverview struct {
	Name     string `json:"name"`
	Dir      string `json:"dir"`
	NumNotes int    `json:"num_notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
