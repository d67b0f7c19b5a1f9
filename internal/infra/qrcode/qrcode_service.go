// Package qrcode renders completed order reference codes as QR images.
package qrcode

import (
	"encoding/json"
	"fmt"
	"regexp"

	"storefront/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	typeOrder   = "order"
)

var refCodePattern = regexp.MustCompile(`^[a-z0-9]{20}$`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RefCode string `json:"ref_code"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
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

// GenerateOrderQR generates a QR code PNG for an order reference code
func (s *qrcodeService) GenerateOrderQR(refCode string) ([]byte, error) {
	if !refCodePattern.MatchString(refCode) {
		return nil, fmt.Errorf("invalid reference code: %q", refCode)
	}

	jsonData, err := json.Marshal(QRCodeData{RefCode: refCode, Type: typeOrder})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderQR parses QR code data and returns the reference code
func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != typeOrder {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if !refCodePattern.MatchString(data.RefCode) {
		return "", fmt.Errorf("invalid reference code: %q", data.RefCode)
	}

	return data.RefCode, nil
}
