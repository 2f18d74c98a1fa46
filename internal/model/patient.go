package model

// Patient is a person registered at the clinic.
type Patient struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Age     int    `json:"age"`
	Phone   string `json:"phone"`
}

func (p Patient) RecordID() int { return p.ID }
