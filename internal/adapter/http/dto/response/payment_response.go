package response

import (
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/domain/split"
	"comanda/internal/usecase"
)

type ShareResponse struct {
	GuestID string `json:"guest_id"`
	Amount  string `json:"amount"`
	Status  string `json:"status"`
}

func FromShares(shares []entities.BillShare) []ShareResponse {
	out := make([]ShareResponse, 0, len(shares))
	for _, s := range shares {
		out = append(out, ShareResponse{GuestID: s.GuestID, Amount: money(s.Amount), Status: string(s.Status)})
	}
	return out
}

type UnitResponse struct {
	Key     string `json:"key"`
	LineID  string `json:"line_id"`
	ItemID  string `json:"item_id"`
	GuestID string `json:"guest_id"`
	Price   string `json:"price"`
}

type SplitResponse struct {
	Method           string          `json:"method"`
	Shares           []ShareResponse `json:"shares"`
	Subtotal         string          `json:"subtotal"`
	AssignedSubtotal string          `json:"assigned_subtotal"`
	Difference       string          `json:"difference"`
	Complete         bool            `json:"complete"`
	Units            []UnitResponse  `json:"units"`
}

func FromSplit(r split.Result) SplitResponse {
	res := SplitResponse{
		Method:           string(r.Method),
		Shares:           FromShares(r.Shares),
		Subtotal:         money(r.Subtotal),
		AssignedSubtotal: money(r.AssignedSubtotal),
		Difference:       money(r.Difference),
		Complete:         r.Complete,
		Units:            make([]UnitResponse, 0, len(r.Units)),
	}
	for _, u := range r.Units {
		res.Units = append(res.Units, UnitResponse{
			Key:     u.Key,
			LineID:  u.LineID,
			ItemID:  u.ItemID,
			GuestID: u.GuestID,
			Price:   money(u.Price),
		})
	}
	return res
}

type TransferResponse struct {
	Alias  string `json:"alias,omitempty"`
	CBU    string `json:"cbu,omitempty"`
	Holder string `json:"holder,omitempty"`
}

type PaymentStartResponse struct {
	GuestID     string            `json:"guest_id"`
	Method      string            `json:"method"`
	Amount      string            `json:"amount"`
	RedirectURL string            `json:"redirect_url,omitempty"`
	Transfer    *TransferResponse `json:"transfer,omitempty"`
}

func FromPaymentStart(p usecase.PaymentStart) PaymentStartResponse {
	res := PaymentStartResponse{
		GuestID:     p.Guest.ID,
		Method:      string(p.Method),
		Amount:      money(p.Amount),
		RedirectURL: p.RedirectURL,
	}
	if p.Transfer != nil {
		res.Transfer = &TransferResponse{Alias: p.Transfer.Alias, CBU: p.Transfer.CBU, Holder: p.Transfer.Holder}
	}
	return res
}

type CheckoutResponse struct {
	Guest       GuestResponse   `json:"guest"`
	OrderID     string          `json:"order_id"`
	OrderStatus string          `json:"order_status"`
	Shares      []ShareResponse `json:"shares"`
	GrandTotal  string          `json:"grand_total"`
	Remaining   string          `json:"remaining"`
	Next        string          `json:"next"`
}

func FromCheckout(s usecase.CheckoutState) CheckoutResponse {
	return CheckoutResponse{
		Guest:       FromGuest(s.Guest),
		OrderID:     s.OrderID,
		OrderStatus: string(s.OrderStatus),
		Shares:      FromShares(s.Shares),
		GrandTotal:  money(s.GrandTotal),
		Remaining:   money(s.Remaining),
		Next:        string(s.Next),
	}
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	GuestID   string    `json:"guest_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		OrderID:   r.OrderID,
		GuestID:   r.GuestID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func FromReviews(reviews []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return out
}
