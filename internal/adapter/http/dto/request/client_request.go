package request

import (
	"strings"

	"buffet_festas/internal/usecase"
)

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type FreelancerRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone"`
	DefaultRole    string `json:"default_role"`
	TelegramChatID string `json:"telegram_chat_id"`
}

func (r FreelancerRequest) ToInput() usecase.CreateFreelancerInput {
	return usecase.CreateFreelancerInput{
		Name:           strings.TrimSpace(r.Name),
		Phone:          strings.TrimSpace(r.Phone),
		DefaultRole:    strings.ToLower(strings.TrimSpace(r.DefaultRole)),
		TelegramChatID: strings.TrimSpace(r.TelegramChatID),
	}
}
