package request

import (
	"errors"
	"fmt"
	"strings"

	"comanda/internal/domain/split"
	"comanda/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// SplitRequest carries the method and its inputs. Amounts in Custom are
// decimal strings ("12.50") so no precision is lost in transit.
type SplitRequest struct {
	GuestID      string              `json:"guest_id" binding:"required"`
	Method       string              `json:"method" binding:"required"`
	Participants []string            `json:"participants"`
	Assignments  map[string][]string `json:"assignments"`
	Custom       map[string]string   `json:"custom"`
}

func (r SplitRequest) ToUseCase() (usecase.SplitRequest, error) {
	out := usecase.SplitRequest{
		GuestID:      strings.TrimSpace(r.GuestID),
		Method:       split.Method(strings.ToLower(strings.TrimSpace(r.Method))),
		Participants: r.Participants,
		Assignments:  r.Assignments,
	}
	if len(r.Custom) > 0 {
		out.Custom = make(map[string]decimal.Decimal, len(r.Custom))
		for guestID, raw := range r.Custom {
			d, err := decimal.NewFromString(strings.TrimSpace(raw))
			if err != nil {
				return usecase.SplitRequest{}, fmt.Errorf("custom amount for %s: %w", guestID, ErrInvalidAmount)
			}
			out.Custom[guestID] = d
		}
	}
	return out, nil
}
