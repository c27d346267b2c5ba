package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type PaymentStatus string

const (
	PaymentStatusNotStarted PaymentStatus = "NOT_STARTED"
	PaymentStatusInProgress PaymentStatus = "IN_PROGRESS"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
)

// ParsePaymentStatus rejects anything outside the closed set. An unknown
// status is a decode error, never a silent default.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusNotStarted, PaymentStatusInProgress, PaymentStatusCompleted:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status: %q", s)
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePaymentStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s *PaymentStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParsePaymentStatus(v)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case []byte:
		parsed, err := ParsePaymentStatus(string(v))
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into PaymentStatus", value)
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Payment stores only the order id; the order substructure is fetched from
// the orders service on read.
type Payment struct {
	PaymentID     int64
	OrderID       int64
	IsPayed       bool
	PaymentStatus PaymentStatus
}
