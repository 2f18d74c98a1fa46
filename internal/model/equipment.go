package model

// Equipment is a medical device with a count of units available for use.
type Equipment struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	AvailableCount int    `json:"available_count"`
}

func (e Equipment) RecordID() int { return e.ID }
