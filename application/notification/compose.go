package notification

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
	"github.com/muhammadheryan/kidswear/thirdparty/email"
)

// composeEmail returns the customer mail for an event. Status changes only
// have mails for confirmed, shipped and delivered.
func composeEmail(evt *model.NotificationEvent) (email.Message, bool) {
	o := evt.Order
	name := html.EscapeString(o.CustomerName)
	id := html.EscapeString(o.ID)

	var subject, body string
	switch evt.Type {
	case constant.EventOrderCreated:
		subject = "We received your order " + o.ID
		body = fmt.Sprintf("<p>Hi %s,</p><p>Thanks for your order <b>%s</b>.</p>%s<p>Total: <b>%s</b></p>",
			name, id, itemsTable(evt.Items), formatAmount(o.TotalAmount))
	case constant.EventPaymentCompleted:
		subject = "Payment received for order " + o.ID
		body = fmt.Sprintf("<p>Hi %s,</p><p>We received your payment for order <b>%s</b> (ref %s). Your order is confirmed.</p>",
			name, id, html.EscapeString(evt.PaymentID))
	case constant.EventPaymentFailed:
		subject = "Payment failed for order " + o.ID
		body = fmt.Sprintf("<p>Hi %s,</p><p>Your payment for order <b>%s</b> did not go through. You can try again from the order page.</p>",
			name, id)
	case constant.EventStatusChanged:
		switch evt.Status {
		case constant.OrderStatusConfirmed:
			subject = "Your order " + o.ID + " is confirmed"
		case constant.OrderStatusShipped:
			subject = "Your order " + o.ID + " is on its way"
		case constant.OrderStatusDelivered:
			subject = "Your order " + o.ID + " was delivered"
		default:
			return email.Message{}, false
		}
		body = fmt.Sprintf("<p>Hi %s,</p><p>Order <b>%s</b> is now <b>%s</b>.</p>",
			name, id, html.EscapeString(string(evt.Status)))
	default:
		return email.Message{}, false
	}

	return email.Message{Subject: subject, HTML: body}, true
}

func itemsTable(items []model.OrderItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<table>")
	for _, it := range items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>× %d</td><td>%s</td></tr>",
			html.EscapeString(it.ProductName), it.Quantity, formatAmount(it.Subtotal))
	}
	b.WriteString("</table>")
	return b.String()
}

func templateParams(evt *model.NotificationEvent) []string {
	o := evt.Order
	switch evt.Type {
	case constant.EventOrderCreated:
		return []string{o.CustomerName, o.ID, formatAmount(o.TotalAmount)}
	case constant.EventPaymentCompleted:
		return []string{o.CustomerName, o.ID, evt.PaymentID}
	case constant.EventPaymentFailed:
		return []string{o.CustomerName, o.ID}
	case constant.EventStatusChanged:
		return []string{o.CustomerName, o.ID, string(evt.Status)}
	}
	return nil
}

func formatAmount(amount int64) string {
	return "৳" + strconv.FormatInt(amount, 10)
}
