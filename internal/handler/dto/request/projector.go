package request

type CreateProjectorRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateProjectorRequest struct {
	Name   string `json:"name"`
	Status string `json:"status" binding:"omitempty,oneof=available unavailable"`
}
