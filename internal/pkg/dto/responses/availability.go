package responses

type AvailableTreatment struct {
	ID    string   `json:"_id,omitempty"`
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Slots []string `json:"slots"`
}

type TreatmentSpecialty struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
