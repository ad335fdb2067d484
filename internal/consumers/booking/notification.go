package booking

import (
	"bytes"
	"fmt"
	"html/template"

	"gomoto/infras/mail"
	"gomoto/internal/domains/booking/event"
	"gomoto/shared/constant"
	"gomoto/shared/timezone"
)

const dateLayout = "02 Jan 2006 15:04"

var htmlBody = template.Must(template.New("booking").Parse(`<html><body>
<p>Hi {{.Name}},</p>
<p>{{.Headline}}</p>
<table>
<tr><td>Reference</td><td>{{.Reference}}</td></tr>
<tr><td>Vehicle</td><td>{{.Vehicle}}</td></tr>
<tr><td>Pickup</td><td>{{.Pickup}}</td></tr>
<tr><td>Dropoff</td><td>{{.Dropoff}}</td></tr>
<tr><td>Status</td><td>{{.Status}}</td></tr>
<tr><td>Total</td><td>{{.Total}}</td></tr>
{{if .Refund}}<tr><td>Refund</td><td>{{.Refund}}</td></tr>{{end}}
</table>
</body></html>`))

type notification struct {
	Name      string
	Headline  string
	Reference string
	Vehicle   string
	Pickup    string
	Dropoff   string
	Status    string
	Total     string
	Refund    string
}

// buildMessage returns false for event types that do not notify the customer.
func buildMessage(evt event.BookingEvent) (mail.Message, bool, error) {
	var subject, headline string

	switch evt.Type {
	case event.TypeBookingCreated:
		subject = "Booking received: " + evt.BookingReference
		headline = "Thanks for booking with us. Your booking has been received."
	case event.TypeBookingStatusUpdated:
		subject = "Booking updated: " + evt.BookingReference
		headline = "The status of your booking changed to " + evt.BookingStatus + "."
	case event.TypeBookingCancelled:
		subject = "Booking cancelled: " + evt.BookingReference
		headline = "Your booking has been cancelled."
	default:
		return mail.Message{}, false, nil
	}

	data := notification{
		Name:      evt.UserName,
		Headline:  headline,
		Reference: evt.BookingReference,
		Vehicle:   evt.VehicleName,
		Pickup:    timezone.ToAppTime(evt.PickupDate).Format(dateLayout),
		Dropoff:   timezone.ToAppTime(evt.DropoffDate).Format(dateLayout),
		Status:    evt.BookingStatus,
		Total:     amount(evt.TotalAmount),
	}

	if evt.RefundAmount != nil {
		data.Refund = amount(*evt.RefundAmount)
	}

	body := bytes.Buffer{}
	if err := htmlBody.Execute(&body, data); err != nil {
		return mail.Message{}, false, fmt.Errorf("failed to render booking mail: %w", err)
	}

	return mail.Message{
		To:       []string{evt.UserEmail},
		Subject:  subject,
		HTMLBody: body.String(),
		TextBody: textBody(data),
	}, true, nil
}

func textBody(data notification) string {
	text := fmt.Sprintf("Hi %s,\n\n%s\n\nReference: %s\nVehicle: %s\nPickup: %s\nDropoff: %s\nStatus: %s\nTotal: %s\n",
		data.Name, data.Headline, data.Reference, data.Vehicle, data.Pickup, data.Dropoff, data.Status, data.Total)

	if data.Refund != constant.Empty {
		text += "Refund: " + data.Refund + "\n"
	}

	return text
}

func amount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
