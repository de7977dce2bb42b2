package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for pickup QR code generation and parsing.
type QRCodeService interface {
	// GeneratePickupQR returns a PNG QR code identifying a reserved transaction.
	GeneratePickupQR(transactionID, offerID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses scanned QR code data and returns the transaction ID.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
