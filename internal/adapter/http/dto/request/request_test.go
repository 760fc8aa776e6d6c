package request

import (
	"errors"
	"testing"

	"comanda/internal/domain/split"
)

func TestSplitRequest_ToUseCase(t *testing.T) {
	r := SplitRequest{
		GuestID: " g1 ",
		Method:  " CUSTOM ",
		Custom:  map[string]string{"g1": "10.005", "g2": " 14.995 "},
	}
	got, err := r.ToUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GuestID != "g1" || got.Method != split.MethodCustom {
		t.Fatalf("unexpected request %+v", got)
	}
	if got.Custom["g2"].String() != "14.995" {
		t.Fatalf("expected 14.995, got %s", got.Custom["g2"])
	}

	r.Custom["g3"] = "doce"
	if _, err := r.ToUseCase(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestUpdateLineRequest(t *testing.T) {
	if !(UpdateLineRequest{}).Empty() {
		t.Fatalf("expected empty update")
	}
	q := 0
	upd := UpdateLineRequest{Quantity: &q}.ToLineUpdate()
	if upd.Quantity == nil || *upd.Quantity != 0 || upd.Extras != nil {
		t.Fatalf("unexpected update %+v", upd)
	}
}
