package table

import (
	"errors"
	"strings"
	"time"
)

const (
	MaxCodeLength = 10
	MinCapacity   = 1
	MaxCapacity   = 20
)

var (
	ErrEmptyCode       = errors.New("table code cannot be empty")
	ErrCodeTooLong     = errors.New("table code exceeds maximum length")
	ErrInvalidCapacity = errors.New("table capacity must be between 1 and 20")
)

type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Code{}, ErrEmptyCode
	}
	if len(t) > MaxCodeLength {
		return Code{}, ErrCodeTooLong
	}
	return Code{value: t}, nil
}

func (c Code) String() string { return c.value }

type Capacity struct {
	value int
}

func NewCapacity(v int) (Capacity, error) {
	if v < MinCapacity || v > MaxCapacity {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{value: v}, nil
}

func (c Capacity) Value() int { return c.value }

// Table belongs to exactly one restaurant. Code uniqueness within a
// restaurant is a convention, not enforced.
type Table struct {
	id           int64
	restaurantID int64
	code         Code
	capacity     Capacity
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTable(restaurantID int64, code Code, capacity Capacity) *Table {
	return &Table{
		restaurantID: restaurantID,
		code:         code,
		capacity:     capacity,
	}
}

func ReconstructTable(id, restaurantID int64, code Code, capacity Capacity, createdAt, updatedAt time.Time) *Table {
	return &Table{
		id:           id,
		restaurantID: restaurantID,
		code:         code,
		capacity:     capacity,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (t *Table) ID() int64            { return t.id }
func (t *Table) RestaurantID() int64  { return t.restaurantID }
func (t *Table) Code() Code           { return t.code }
func (t *Table) Capacity() Capacity   { return t.capacity }
func (t *Table) CreatedAt() time.Time { return t.createdAt }
func (t *Table) UpdatedAt() time.Time { return t.updatedAt }
