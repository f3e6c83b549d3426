package domain

import "errors"

var (
	// ErrAddressNotFound indicates that the user has no stored address.
	ErrAddressNotFound = errors.New("address not found")
)

// Address holds postal data for a user. The record shares its
// primary key with the owning user (one-to-one by user id).
type Address struct {
	UserID         int64  `json:"user_id"`
	AddressLineOne string `json:"address_line_one"`
	AddressLineTwo string `json:"address_line_two"`
	City           string `json:"city"`
	Region         string `json:"region"`
	Country        string `json:"country"`
	ZipCode        string `json:"zip_code"`
}
