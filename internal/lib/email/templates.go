package email

// Template names an HTML file under templates/.
type Template string

const (
	TemplateOrderStatus Template = "order_status"
)

// PreviewData holds sample values for rendering each template locally.
var PreviewData = map[Template]map[string]string{
	TemplateOrderStatus: {
		"OrderID":  "3f0c1e8a-9a57-4c1b-8f0e-2b1d6c9e4a10",
		"Status":   "shipped",
		"Headline": "Your order has shipped",
	},
}
