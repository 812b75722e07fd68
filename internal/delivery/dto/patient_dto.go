package dto

// Request DTOs

type CreatePatientRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// Response DTOs

type PatientResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
