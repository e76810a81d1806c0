package request

type MovieRequest struct {
	Title    string `json:"title" validate:"required"`
	Genre    string `json:"genre"`
	Duration int    `json:"duration" validate:"required,min=1"`
}

type ShowRequest struct {
	ShowTime   string `json:"show_time" validate:"required"`
	TotalSeats int    `json:"total_seats" validate:"required,min=1"`
}
