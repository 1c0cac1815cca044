package reservation

import (
	"strings"

	"github.com/example/hotel-reservations/internal/internaltypes"
)

type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	c := Customer{
		name:  strings.TrimSpace(name),
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
	}
	if c.name == "" || c.email == "" || c.phone == "" {
		return Customer{}, internaltypes.ErrInvalidCustomer
	}
	return c, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }
