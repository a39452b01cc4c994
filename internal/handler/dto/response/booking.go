package response

import (
	"storezee/internal/usecase/commands"

	"github.com/google/uuid"
)

const CreateBookingMessage = "Everything created successfully!"

type CreateBookingResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    CreateBookingData `json:"data"`
}

type CreateBookingData struct {
	UserID        uuid.UUID `json:"user_id"`
	BookingID     uuid.UUID `json:"booking_id"`
	BookingCode   string    `json:"booking_code"`
	Amount        string    `json:"amount"`
	LuggageImages []string  `json:"luggage_images"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) CreateBookingResponse {
	images := r.PhotoReferences
	if images == nil {
		images = []string{}
	}
	return CreateBookingResponse{
		Success: true,
		Message: CreateBookingMessage,
		Data: CreateBookingData{
			UserID:        r.CustomerID,
			BookingID:     r.BookingID,
			BookingCode:   r.BookingCode,
			Amount:        r.Amount.Decimal(),
			LuggageImages: images,
		},
	}
}
