package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePinShareQR generates a QR code encoding a shareable pin link
	GeneratePinShareQR(pinID uuid.UUID) ([]byte, error)

	// ParsePinShareQR parses QR code data and returns the pin ID
	ParsePinShareQR(qrData string) (uuid.UUID, error)
}
