package handler

// successResponse is the standard envelope for all 2xx responses.
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// errorResponse documents the error envelope for swagger annotations; the
// actual rendering happens in the central HTTP error handler.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type tokenData struct {
	Token string `json:"token"`
}

// --- Catalog ---

type serviceRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

// --- Bookings ---

type createBookingRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	PhoneNumber  string `json:"phone_number"  validate:"required,min=10"`
	ServiceID    int64  `json:"service_id"    validate:"required,gt=0"`
	// RFC 3339 date-time, e.g. "2099-01-01T10:00:00Z".
	ScheduleDateTime string `json:"schedule_date_time" validate:"required"`
}
