package utils

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// BuildUPIString assembles the UPI deep link a payment app resolves into a
// pre-filled transfer: payee VPA, payee name, amount and a course-tagged
// transaction note.
func BuildUPIString(upiID, payeeName string, amount uint, courseID uint) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&tn=Course-%d", upiID, payeeName, amount, courseID)
}

// GenerateQRDataURI renders the payload as a QR PNG and returns it as a
// data URI suitable for an <img> tag.
func GenerateQRDataURI(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR payload: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
