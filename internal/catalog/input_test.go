package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validInput() MenuItemInput {
	return MenuItemInput{
		Name:   "Sisig",
		Price:  decimal.RequireFromString("120.00"),
		Status: StatusAvailable,
	}
}

func TestMenuItemInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MenuItemInput)
		wantErr error
	}{
		{"valid", func(in *MenuItemInput) {}, nil},
		{"missing name", func(in *MenuItemInput) { in.Name = "" }, ErrNameRequired},
		{"name too long", func(in *MenuItemInput) { in.Name = strings.Repeat("x", 256) }, ErrNameTooLong},
		{"negative price", func(in *MenuItemInput) { in.Price = decimal.RequireFromString("-1") }, ErrNegativePrice},
		{"bad status", func(in *MenuItemInput) { in.Status = "Sold Out" }, ErrBadStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	if !StatusAvailable.Valid() || !StatusNotAvailable.Valid() {
		t.Fatal("enum values must validate")
	}
	if Status("86ed").Valid() {
		t.Fatal("unknown status must not validate")
	}
}
