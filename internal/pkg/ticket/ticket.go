// Package ticket renders the scannable display code of an issued booking.
package ticket

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const codeSizePixels = 256

// Generator builds ticket-lookup references and their QR renderings. The
// reference shape is fixed: <base>/<booking id>.
type Generator struct {
	baseURL string
}

func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/")}
}

// Reference returns the ticket-lookup URL encoded into the display code.
func (g *Generator) Reference(bookingID string) string {
	return fmt.Sprintf("%s/%s", g.baseURL, bookingID)
}

// Code renders the reference as a QR PNG. Purely presentational; nothing
// in the booking flow depends on its output.
func (g *Generator) Code(bookingID string) ([]byte, error) {
	png, err := qrcode.Encode(g.Reference(bookingID), qrcode.Medium, codeSizePixels)
	if err != nil {
		return nil, fmt.Errorf("encode ticket code: %w", err)
	}

	return png, nil
}
