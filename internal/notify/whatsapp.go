package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/barbeariapremium/booking-service/pkg/types"
)

// countryPrefix is prepended to client numbers that carry no country code.
const countryPrefix = "55"

// ptBRDateLayout renders dates the way the shop's clients read them.
const ptBRDateLayout = "02/01/2006"

// ShopInfo identifies the shop inside outgoing messages.
type ShopInfo struct {
	Name     string
	Address  string
	Phone    string
	WhatsApp string // digits only, with country code
}

// Appointment is the slice of appointment data the builders need.
type Appointment struct {
	ClientName   string
	ClientPhone  string
	ServiceName  string
	ServicePrice float64
	StaffName    string
	Date         time.Time
	Time         types.TimeString
}

// WhatsAppBuilder constructs pre-filled wa.me links. It is the messaging
// collaborator from the booking flow's point of view: the core never calls
// it, the HTTP layer does, and only on success.
type WhatsAppBuilder struct {
	shop ShopInfo
}

// NewWhatsAppBuilder creates a builder for the given shop.
func NewWhatsAppBuilder(shop ShopInfo) *WhatsAppBuilder {
	return &WhatsAppBuilder{shop: shop}
}

// ConfirmationLink builds the link a client uses to confirm a fresh booking
// with the shop's own WhatsApp number.
func (b *WhatsAppBuilder) ConfirmationLink(a Appointment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*%s*\n\n", strings.ToUpper(b.shop.Name))
	sb.WriteString("*Agendamento Confirmado!*\n\n")
	fmt.Fprintf(&sb, "*Cliente:* %s\n", a.ClientName)
	fmt.Fprintf(&sb, "*Serviço:* %s\n", a.ServiceName)
	fmt.Fprintf(&sb, "*Valor:* R$ %.2f\n", a.ServicePrice)
	fmt.Fprintf(&sb, "*Barbeiro:* %s\n", a.StaffName)
	fmt.Fprintf(&sb, "*Data:* %s\n", a.Date.Format(ptBRDateLayout))
	fmt.Fprintf(&sb, "*Horário:* %s\n\n", a.Time)
	fmt.Fprintf(&sb, "*Endereço:* %s\n", b.shop.Address)
	fmt.Fprintf(&sb, "*Contato:* %s\n\n", b.shop.Phone)
	sb.WriteString("*Importante:*\n")
	sb.WriteString("- Chegue 10 minutos antes\n")
	sb.WriteString("- Em caso de cancelamento, avise com 2h de antecedência\n\n")
	sb.WriteString("Obrigado pela preferência!")

	return waLink(b.shop.WhatsApp, sb.String())
}

// ReminderLink builds the link the shop uses to remind a client of an
// upcoming appointment, addressed to the client's own number.
func (b *WhatsAppBuilder) ReminderLink(a Appointment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*LEMBRETE - %s*\n\n", strings.ToUpper(b.shop.Name))
	fmt.Fprintf(&sb, "Olá %s!\n\n", a.ClientName)
	sb.WriteString("Lembrando do seu agendamento:\n\n")
	fmt.Fprintf(&sb, "*Serviço:* %s\n", a.ServiceName)
	fmt.Fprintf(&sb, "*Barbeiro:* %s\n", a.StaffName)
	fmt.Fprintf(&sb, "*Data:* %s\n", a.Date.Format(ptBRDateLayout))
	fmt.Fprintf(&sb, "*Horário:* %s\n\n", a.Time)
	fmt.Fprintf(&sb, "*Local:* %s\n\n", b.shop.Address)
	sb.WriteString("Chegue 10 minutos antes!\n")
	sb.WriteString("Nos vemos em breve!")

	return waLink(clientNumber(a.ClientPhone), sb.String())
}

// clientNumber strips formatting from a client phone and prefixes the
// country code when missing.
func clientNumber(phone string) string {
	digits := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	number := string(digits)
	if !strings.HasPrefix(number, countryPrefix) {
		number = countryPrefix + number
	}
	return number
}

func waLink(number, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}
