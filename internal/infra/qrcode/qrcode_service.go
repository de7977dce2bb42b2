package qrcode

import (
	"encoding/json"
	"strings"

	"pantry/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const pickupPayloadType = "pickup"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupPayload is the JSON document encoded in a pickup QR code.
type PickupPayload struct {
	Type          string `json:"type"`
	TransactionID string `json:"transaction_id"`
	OfferID       string `json:"offer_id"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePickupQR encodes the pickup payload of a transaction as a PNG QR code.
func (s *qrcodeService) GeneratePickupQR(transactionID, offerID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(PickupPayload{
		Type:          pickupPayloadType,
		TransactionID: transactionID.String(),
		OfferID:       offerID.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR parses scanned QR code data and returns the transaction ID.
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	var data PickupPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != pickupPayloadType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	transactionID, err := uuid.Parse(data.TransactionID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse transaction ID")
	}

	return transactionID, nil
}
