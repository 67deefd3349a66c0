package transport

import (
	"html/template"
	"net/http"

	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"go.uber.org/zap"
)

var mockPaymentPage = template.Must(template.New("mockpay").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} mock payment</title>
</head>
<body>
<h1>{{.Title}} (mock)</h1>
<p>Order <b>{{.OrderID}}</b>, payment <code>{{.PaymentID}}</code></p>
<button onclick="pay('completed')">Pay</button>
<button onclick="pay('failed')">Fail payment</button>
<p id="result"></p>
<script>
async function pay(status) {
  const res = await fetch({{.WebhookURL}}, {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({orderId: {{.OrderID}}, paymentId: {{.PaymentID}}, status: status})
  });
  document.getElementById("result").textContent = res.ok ? "Payment " + status : "Webhook rejected (" + res.status + ")";
}
</script>
</body>
</html>
`))

type mockPaymentView struct {
	Title      string
	OrderID    string
	PaymentID  string
	WebhookURL string
}

// MockPaymentPage stands in for the gateway's hosted page: it posts the
// chosen outcome to the webhook the way a real gateway callback would. It
// does not exist in production unless mock webhooks are allowed.
func (s *RestHandler) MockPaymentPage(w http.ResponseWriter, r *http.Request) {
	if s.Config.IsProduction() && !s.Config.Payment.AllowMockWebhooks {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	q := r.URL.Query()
	gateway := constant.PaymentMethod(q.Get("gateway"))
	view := mockPaymentView{
		OrderID:   q.Get("orderId"),
		PaymentID: q.Get("paymentId"),
	}
	if !gateway.Valid() || view.OrderID == "" || view.PaymentID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	view.Title = gatewayTitle(gateway)
	view.WebhookURL = "/api/webhooks/" + string(gateway)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := mockPaymentPage.Execute(w, view); err != nil {
		logger.Error("[MockPaymentPage] render", zap.Error(err))
	}
}

func gatewayTitle(gateway constant.PaymentMethod) string {
	if gateway == constant.PaymentMethodNagad {
		return "Nagad"
	}
	return "bKash"
}
