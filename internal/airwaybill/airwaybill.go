package airwaybill

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rushrr/courier/internal/domain/model"
)

const (
	defaultCurrency = "PKR"
	notAvailable    = "N/A"
	qrImageName     = "airway-bill-qr"
	qrPixels        = 256
)

var ErrNoOrder = errors.New("airway bill needs an order")

// QRPayload is the JSON encoded into the bill's QR code.
type QRPayload struct {
	OrderNumber string `json:"orderNumber"`
	Customer    string `json:"customer"`
	City        string `json:"city"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// Document is a rendered airway bill.
type Document struct {
	FileName  string
	Content   []byte
	QRPayload []byte
}

// Options tune rendering. Zero value is production rendering.
type Options struct {
	Now                func() time.Time
	DisableCompression bool
}

// Generator renders A4 airway bills.
type Generator struct {
	now      func() time.Time
	compress bool
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts Options) *Generator {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now, compress: !opts.DisableCompression}
}

// BuildQRPayload collects the fields printed into the QR code.
func BuildQRPayload(o *model.CanonicalOrder) QRPayload {
	return QRPayload{
		OrderNumber: o.OrderNumber,
		Customer:    customerName(o),
		City:        o.BillingAddress.City,
		Amount:      o.TotalPrice,
		Currency:    o.Currency,
		Phone:       o.ShippingAddress.Phone,
		Address:     o.ShippingAddress.Address1,
	}
}

// FileName returns the download name of the bill.
func FileName(o *model.CanonicalOrder) string {
	ref := o.OrderReferenceNumber
	if ref == "" {
		ref = o.ID
	}
	return fmt.Sprintf("Airway-Bill-%s.pdf", ref)
}

// Generate renders the bill. cod is the amount to collect on delivery, empty when not collected.
func (g *Generator) Generate(o *model.CanonicalOrder, cod string) (*Document, error) {
	if o == nil {
		return nil, ErrNoOrder
	}

	payload, err := json.Marshal(BuildQRPayload(o))
	if err != nil {
		return nil, fmt.Errorf("encode qr payload: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("encode qr image: %w", err)
	}

	now := g.now()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(g.compress)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetTitle(FileName(o), false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, pageHeight := pdf.GetPageSize()

	pdf.SetFillColor(41, 128, 185)
	pdf.Rect(0, 0, pageWidth, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	centered(pdf, pageWidth, 25, "RUSHRR COURIER")
	pdf.SetFont("Helvetica", "", 12)
	centered(pdf, pageWidth, 35, "Express Delivery Service")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 20)
	centered(pdf, pageWidth, 55, "AIRWAY BILL")

	pdf.SetDrawColor(52, 73, 94)
	pdf.SetLineWidth(1)
	pdf.SetFillColor(236, 240, 241)
	pdf.Rect(15, 65, pageWidth-30, 25, "FD")
	pdf.SetTextColor(52, 73, 94)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 75, tr("Order #: "+orDefault(o.OrderNumber, notAvailable)))
	pdf.Text(20, 85, "Date: "+now.Format("2006-01-02"))

	section(pdf, pageWidth, 105, "CUSTOMER DETAILS")
	customerLines := []string{
		"Name: " + customerName(o),
		"Email: " + orDefault(customerEmail(o), notAvailable),
		"Phone: " + orDefault(o.ShippingAddress.Phone, notAvailable),
		"City: " + orDefault(o.BillingAddress.City, notAvailable),
	}
	for i, line := range customerLines {
		pdf.Text(20, 120+float64(i)*8, tr(line))
	}

	section(pdf, pageWidth, 160, "SHIPPING ADDRESS")
	pdf.Text(20, 175, tr(orDefault(o.ShippingAddress.Address1, notAvailable)))
	pdf.Text(20, 185, tr(o.ShippingAddress.City+", "+o.ShippingAddress.Country))
	pdf.Text(20, 195, tr("Postal Code: "+orDefault(o.ShippingAddress.Zip, notAvailable)))

	section(pdf, pageWidth, 215, "ORDER SUMMARY")
	pdf.SetFillColor(241, 196, 15)
	pdf.Rect(15, 225, pageWidth-30, 20, "F")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(20, 235, fmt.Sprintf("Total Amount: %s %s", formatAmount(o.TotalPrice, "0.00"), orDefault(o.Currency, defaultCurrency)))
	pdf.Text(20, 242, "COD: "+formatAmount(cod, notAvailable))

	imageOpts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageName, imageOpts, bytes.NewReader(png))
	pdf.ImageOptions(qrImageName, pageWidth-60, 120, 40, 40, false, imageOpts, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageWidth-60, 162)
	pdf.CellFormat(40, 6, "Scan for Details", "", 0, "C", false, 0, "")

	pdf.SetFillColor(52, 73, 94)
	pdf.Rect(0, pageHeight-30, pageWidth, 30, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 10)
	centered(pdf, pageWidth, pageHeight-15, tr(fmt.Sprintf("© %d Rushrr Courier - Express Delivery Service", now.Year())))
	centered(pdf, pageWidth, pageHeight-8, "For support: support@rushrr.com")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render airway bill: %w", err)
	}

	return &Document{
		FileName:  FileName(o),
		Content:   buf.Bytes(),
		QRPayload: payload,
	}, nil
}

// centered writes a single line centered on the page with its baseline near y.
func centered(pdf *fpdf.Fpdf, pageWidth, y float64, text string) {
	_, fontHeight := pdf.GetFontSize()
	pdf.SetXY(0, y-fontHeight*0.75)
	pdf.CellFormat(pageWidth, fontHeight, text, "", 0, "C", false, 0, "")
}

func section(pdf *fpdf.Fpdf, pageWidth, y float64, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(52, 73, 94)
	pdf.Text(20, y, title)
	pdf.SetDrawColor(52, 73, 94)
	pdf.Line(20, y+3, pageWidth-20, y+3)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
}

func customerName(o *model.CanonicalOrder) string {
	if o.Customer != nil {
		if name := strings.TrimSpace(strings.TrimSpace(o.Customer.FirstName) + " " + strings.TrimSpace(o.Customer.LastName)); name != "" {
			return name
		}
	}
	return o.CustomerName
}

func customerEmail(o *model.CanonicalOrder) string {
	if o.Customer != nil && o.Customer.Email != "" {
		return o.Customer.Email
	}
	return o.Email
}

// formatAmount prints decimal amounts with two places and leaves anything else untouched.
func formatAmount(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	return d.StringFixed(2)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
