package models

import "github.com/shopspring/decimal"

// UserRecord is one entry of the backend's user listing. Only the
// identifier and wallet fields are consumed; the listing is how the
// client locates its own balance (the backend exposes no per-user
// wallet read endpoint).
type UserRecord struct {
	ID     string          `json:"_id"`
	Wallet decimal.Decimal `json:"wallet"`
}
