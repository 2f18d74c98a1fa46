package model

// Doctor is a practitioner; Name carries the professional title ("Dr. ...").
type Doctor struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

func (d Doctor) RecordID() int { return d.ID }
