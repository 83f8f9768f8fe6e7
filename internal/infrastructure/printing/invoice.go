package printing

import (
	"bytes"
	"html/template"
)

// InvoiceDocument holds the data rendered into the invoice PDF.
// Dates are preformatted; an empty DueDate hides the due line.
type InvoiceDocument struct {
	InvoiceNumber string
	Status        string
	IssueDate     string
	DueDate       string
	ClientName    string
	ClientEmail   string
	ProjectTitle  string
	Amount        string
	PaidAmount    string
	Remaining     string
	Notes         string
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1f2937; margin: 0; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #1f2937; padding-bottom: 16px; }
  .header h1 { margin: 0; font-size: 28px; letter-spacing: 1px; }
  .meta { text-align: right; font-size: 13px; }
  .status { display: inline-block; padding: 2px 10px; border-radius: 10px; background: #e5e7eb; text-transform: uppercase; font-size: 11px; }
  .section { margin-top: 24px; }
  .section h2 { font-size: 14px; text-transform: uppercase; color: #6b7280; margin-bottom: 6px; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th { text-align: left; font-size: 12px; text-transform: uppercase; color: #6b7280; border-bottom: 1px solid #d1d5db; padding: 8px 4px; }
  td { padding: 10px 4px; border-bottom: 1px solid #f3f4f6; font-size: 14px; }
  .totals { margin-top: 16px; width: 40%; margin-left: auto; }
  .totals td { font-size: 14px; }
  .totals .due td { font-weight: bold; border-top: 2px solid #1f2937; }
  .notes { margin-top: 32px; font-size: 13px; color: #4b5563; }
</style>
</head>
<body>
  <div class="header">
    <div>
      <h1>INVOICE</h1>
      <div class="status">{{.Status}}</div>
    </div>
    <div class="meta">
      <div><strong>{{.InvoiceNumber}}</strong></div>
      <div>Issued: {{.IssueDate}}</div>
      {{if .DueDate}}<div>Due: {{.DueDate}}</div>{{end}}
    </div>
  </div>

  <div class="section">
    <h2>Billed To</h2>
    <div>{{.ClientName}}</div>
    {{if .ClientEmail}}<div>{{.ClientEmail}}</div>{{end}}
  </div>

  <table>
    <thead>
      <tr><th>Description</th><th style="text-align:right">Amount</th></tr>
    </thead>
    <tbody>
      <tr>
        <td>{{if .ProjectTitle}}{{.ProjectTitle}}{{else}}Professional services{{end}}</td>
        <td style="text-align:right">{{.Amount}}</td>
      </tr>
    </tbody>
  </table>

  <table class="totals">
    <tr><td>Total</td><td style="text-align:right">{{.Amount}}</td></tr>
    <tr><td>Paid</td><td style="text-align:right">{{.PaidAmount}}</td></tr>
    <tr class="due"><td>Balance due</td><td style="text-align:right">{{.Remaining}}</td></tr>
  </table>

  {{if .Notes}}
  <div class="notes">
    <h2>Notes</h2>
    <div>{{.Notes}}</div>
  </div>
  {{end}}
</body>
</html>`))

// RenderInvoiceHTML renders the invoice document into a complete HTML page
func RenderInvoiceHTML(doc InvoiceDocument) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
