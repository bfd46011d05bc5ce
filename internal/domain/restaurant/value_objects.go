package restaurant

import "strings"

const (
	MaxNameLength    = 100
	MaxAddressLength = 200
	MaxPhoneLength   = 20
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if len(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Address{}, ErrEmptyAddress
	}
	if len(t) > MaxAddressLength {
		return Address{}, ErrAddressTooLong
	}
	return Address{value: t}, nil
}

func (a Address) String() string { return a.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Phone{}, ErrEmptyPhone
	}
	if len(t) > MaxPhoneLength {
		return Phone{}, ErrPhoneTooLong
	}
	return Phone{value: t}, nil
}

func (p Phone) String() string { return p.value }
