package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the public receipt URL of a paid order.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Generate(historyID string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	qrData := fmt.Sprintf("%s/api/history/%s", g.BaseURL, historyID)
	return qrcode.Encode(qrData, qrcode.Medium, size)
}
