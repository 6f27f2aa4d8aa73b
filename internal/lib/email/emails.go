package email

import (
	"context"
	"fmt"
)

var statusHeadlines = map[string]string{
	"pending":   "We received your order",
	"paid":      "Your payment went through",
	"shipped":   "Your order has shipped",
	"delivered": "Your order was delivered",
	"cancelled": "Your order was cancelled",
}

// SendOrderStatusEmail tells a buyer that their order moved to status.
func (c *Client) SendOrderStatusEmail(ctx context.Context, to, orderID, status string) error {
	headline, ok := statusHeadlines[status]
	if !ok {
		headline = fmt.Sprintf("Your order is now %s", status)
	}

	data := map[string]string{
		"OrderID":  orderID,
		"Status":   status,
		"Headline": headline,
	}

	return c.SendEmail(ctx, to, headline, TemplateOrderStatus, data)
}
