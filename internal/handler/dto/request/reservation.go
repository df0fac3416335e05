package request

type CreateReservationRequest struct {
	Date  string `json:"date" binding:"required"`
	Slots []int  `json:"slots" binding:"required,min=1"`
}

type ListReservationsQuery struct {
	From string `form:"from"`
}

type AvailabilityQuery struct {
	Date    string `form:"date" binding:"required"`
	Details bool   `form:"details"`
}

type ReportQuery struct {
	StartDate     string `form:"startDate" binding:"required"`
	EndDate       string `form:"endDate" binding:"required"`
	Area          string `form:"area"`
	ProfessorName string `form:"professorName"`
}
