package notifications

import "html/template"

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>Booking Confirmation</title>
  <style>
    body { margin: 0; background: #f6f7f9; font-family: Arial, sans-serif; }
    .container { max-width: 600px; margin: 40px auto; background: #fff; border-radius: 12px; overflow: hidden; }
    .header { background: #4f46e5; color: #fff; padding: 30px; text-align: center; }
    .content { padding: 30px; color: #333; font-size: 15px; line-height: 1.6; }
    .box { background: #f3f4f6; padding: 18px; border-radius: 10px; margin: 20px 0; }
    .footer { text-align: center; padding: 20px; font-size: 13px; color: #777; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>{{.HallName}}</h1>
      <p>Booking Confirmation</p>
    </div>
    <div class="content">
      <p>Dear <strong>{{.CustomerName}}</strong>,</p>
      <p>Your booking has been successfully confirmed. Below are the details:</p>
      <div class="box">
        <p><strong>Date:</strong> {{.Date}}</p>
        <p><strong>Time Slot:</strong> {{.TimeSlot}}</p>
        <p><strong>Event:</strong> {{.EventType}} ({{.GuestCount}} guests)</p>
        <p><strong>Total Amount:</strong> {{.TotalAmount}}</p>
        <p><strong>Advance Paid:</strong> {{.AdvancePaid}}</p>
        <p><strong>Balance:</strong> {{.Balance}}</p>
        <p><strong>Invoice No:</strong> {{.InvoiceNumber}}</p>
      </div>
      <p>Thank you for choosing <strong>{{.HallName}}</strong>. We look forward to serving you!</p>
    </div>
    <div class="footer">
      {{if .HallAddress}}{{.HallAddress}}<br/>{{end}}{{if .HallPhone}}{{.HallPhone}}<br/>{{end}}
      &copy; {{.Year}} {{.HallName}}. All rights reserved.
    </div>
  </div>
</body>
</html>
`))

var reminderTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>Payment Reminder</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.HallName}}</h2>
  <p>Dear <strong>{{.CustomerName}}</strong>,</p>
  <p>{{.Message}}</p>
  <p><strong>Date:</strong> {{.Date}}<br/>
     <strong>Time Slot:</strong> {{.TimeSlot}}<br/>
     <strong>Balance Due:</strong> {{.Balance}}</p>
  {{if .HallPhone}}<p>Questions? Call us at {{.HallPhone}}.</p>{{end}}
</body>
</html>
`))
