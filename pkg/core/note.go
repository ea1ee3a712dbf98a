package core

// Note represents a free-text note with optional tags.
// A note has no stable identifier; its position in the notebook is its
// identity for edit and delete, and shifts when earlier notes are removed.
type Note struct {
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

// normalizeTags guarantees the tag list is never nil so the persisted
// form is always a JSON array.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
