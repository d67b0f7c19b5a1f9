package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderQR generates a QR code PNG encoding an order reference code
	GenerateOrderQR(refCode string) ([]byte, error)

	// ParseOrderQR parses QR code data and returns the reference code
	ParseOrderQR(qrData string) (string, error)
}
