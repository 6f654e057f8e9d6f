package dto

// RestornetNoteResponse contains the note ready for the clipboard.
type RestornetNoteResponse struct {
	Note string `json:"note"`
}
