package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/watchfi/backend/internal/domain"
)

// handleExportBookings streams the full booking ledger as an XLSX workbook.
func (s *Server) handleExportBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bookings.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{
		"Booking ID", "Created At", "Customer", "Wallet", "Items",
		"Total Price", "Discount", "Payment Status", "Shipment Status",
		"Status", "Shipment Address", "Transaction Hash", "Payment Type",
		"USD Value", "Confirmed",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, b := range bookings {
		values := []any{
			b.ID.String(),
			b.CreatedAt.Format(time.RFC3339),
			customerLabel(b.Customer),
			customerWallet(b.Customer),
			itemsLabel(b.Watches),
			b.TotalPrice.StringFixed(2),
			b.Discount.StringFixed(2),
			string(b.PaymentStatus),
			string(b.ShipmentStatus),
			string(b.Status),
			b.ShipmentAddress,
			paymentHash(b.CryptoPayments),
			paymentType(b.CryptoPayments),
			paymentUSD(b.CryptoPayments),
			paymentConfirmed(b.CryptoPayments),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="bookings-%s.xlsx"`, time.Now().Format("2006-01-02")))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write bookings export")
	}
}

func customerLabel(c *domain.Customer) string {
	if c == nil {
		return ""
	}
	return c.Pseudonym
}

func customerWallet(c *domain.Customer) string {
	if c == nil {
		return ""
	}
	return c.WalletAddress
}

func itemsLabel(items []domain.BookingWatch) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		name := it.WatchID.String()
		if it.Watch != nil {
			name = it.Watch.Name
		}
		parts = append(parts, fmt.Sprintf("%dx %s @ %s", it.Quantity, name, it.UnitPrice.StringFixed(2)))
	}
	return strings.Join(parts, "; ")
}

func paymentHash(payments []domain.CryptoPayment) string {
	if len(payments) == 0 {
		return ""
	}
	return payments[0].TransactionHash
}

func paymentType(payments []domain.CryptoPayment) string {
	if len(payments) == 0 {
		return ""
	}
	return string(payments[0].PaymentType)
}

func paymentUSD(payments []domain.CryptoPayment) string {
	if len(payments) == 0 {
		return ""
	}
	return payments[0].USDValue.StringFixed(2)
}

func paymentConfirmed(payments []domain.CryptoPayment) bool {
	if len(payments) == 0 {
		return false
	}
	return payments[0].IsConfirmed
}
