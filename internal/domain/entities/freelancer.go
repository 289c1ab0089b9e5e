package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Role is the function a freelancer performs at an event.
type Role string

const (
	RoleMonitor    Role = "monitor"
	RoleCozinheiro Role = "cozinheiro"
	RoleRecepcao   Role = "recepcao"
	RoleGarcom     Role = "garcom"
	RoleFotografo  Role = "fotografo"
	RoleOutro      Role = "outro"
)

var defaultRates = map[Role]decimal.Decimal{
	RoleMonitor:    decimal.NewFromInt(120),
	RoleCozinheiro: decimal.NewFromInt(150),
	RoleRecepcao:   decimal.NewFromInt(100),
	RoleGarcom:     decimal.NewFromInt(110),
	RoleFotografo:  decimal.NewFromInt(200),
	RoleOutro:      decimal.NewFromInt(100),
}

func ParseRole(v string) (Role, error) {
	r := Role(v)
	if _, ok := defaultRates[r]; !ok {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, v)
	}
	return r, nil
}

// DefaultRate is the base payment suggested for a role (BRL).
func DefaultRate(r Role) (decimal.Decimal, bool) {
	v, ok := defaultRates[r]
	return v, ok
}

// Freelancer is a contracted worker that can be assigned to events.
type Freelancer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	DefaultRole    Role      `json:"default_role"`
	TelegramChatID string    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
