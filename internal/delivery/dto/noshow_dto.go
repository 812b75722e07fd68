package dto

type NoShowPredictionResponse struct {
	AppointmentID     int      `json:"appointment_id"`
	NoShowProbability float64  `json:"no_show_probability"`
	Model             string   `json:"model"`
	Explanation       []string `json:"explanation"`
}
