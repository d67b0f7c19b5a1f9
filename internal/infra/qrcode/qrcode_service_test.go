package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRefCode = "abcdefghij0123456789"

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateOrderQR(testRefCode)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateOrderQR_DefaultSize(t *testing.T) {
	service := NewQRCodeService(0, "M").(*qrcodeService)

	assert.Equal(t, defaultSize, service.size)
}

func TestQRCodeService_GenerateOrderQR_InvalidRefCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	for _, ref := range []string{"", "short", "ABCDEFGHIJ0123456789", "abcdefghij012345678!"} {
		_, err := service.GenerateOrderQR(ref)
		assert.Error(t, err, ref)
	}
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	valid, err := json.Marshal(QRCodeData{RefCode: testRefCode, Type: "order"})
	require.NoError(t, err)

	got, err := service.ParseOrderQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, testRefCode, got)

	wrongType, err := json.Marshal(QRCodeData{RefCode: testRefCode, Type: "subscription"})
	require.NoError(t, err)
	_, err = service.ParseOrderQR(string(wrongType))
	assert.ErrorContains(t, err, "invalid QR code type")

	_, err = service.ParseOrderQR("not json")
	assert.Error(t, err)
}
