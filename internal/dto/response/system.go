package response

type StatusResponse struct {
	Status        string  `json:"status"`
	TotalMovies   int     `json:"total_movies"`
	TotalBookings int     `json:"total_bookings"`
	PricePerSeat  float64 `json:"price_per_seat"`
	Timestamp     int64   `json:"timestamp"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
}

type InfoResponse struct {
	ApplicationName string `json:"application_name"`
	Version         string `json:"version"`
	Description     string `json:"description"`
	GoVersion       string `json:"go_version"`
}
