package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"h", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePickupQR(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(128, "L")
	transactionID := uuid.New()

	valid, err := json.Marshal(PickupPayload{Type: "pickup", TransactionID: transactionID.String(), OfferID: uuid.NewString()})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    uuid.UUID
		wantErr bool
	}{
		{"valid payload", string(valid), transactionID, false},
		{"not json", "not-json", uuid.Nil, true},
		{"wrong type", `{"type":"subscription","transaction_id":"` + transactionID.String() + `"}`, uuid.Nil, true},
		{"bad id", `{"type":"pickup","transaction_id":"nope"}`, uuid.Nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParsePickupQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
