package dto

type CreatePaymentIntentRequest struct {
	UserID   string `json:"userId" binding:"required,uuid"`
	ClubID   string `json:"clubId" binding:"required,uuid"`
	CourtID  string `json:"courtId" binding:"required,uuid"`
	StartAt  string `json:"startAt" binding:"required"`
	EndAt    string `json:"endAt" binding:"required"`
	Provider string `json:"provider"`
}
