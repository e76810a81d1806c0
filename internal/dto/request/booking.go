package request

type CreateBookingRequest struct {
	MovieID      int    `json:"movie_id" validate:"required,min=1"`
	ShowID       int    `json:"show_id" validate:"required,min=1"`
	Seats        []int  `json:"seats" validate:"required,min=1,dive,min=1"`
	CustomerName string `json:"customer_name" validate:"required"`
	CouponCode   string `json:"coupon_code,omitempty"`
}
