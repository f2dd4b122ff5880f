package email

const orderExpirationTemplate = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #2c5f2d; color: #fff; padding: 16px; border-radius: 4px; }
		.content { padding: 16px 0; }
		.amount { font-size: 20px; font-weight: bold; }
		.footer { font-size: 12px; color: #999; padding-top: 16px; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header"><h2>Parking subscription expiring</h2></div>
		<div class="content">
			<p>Hello {{.UserName}},</p>
			<p>The parking subscription for your vehicle <strong>{{.PlateNumber}}</strong> expires on <strong>{{.ExpiredDate}}</strong>.</p>
			<p>A renewal order has been prepared. Amount due: <span class="amount">{{.Amount}}</span>.</p>
			<p>Please complete the payment at the management office or through the app to keep your parking access.</p>
		</div>
		<div class="footer">This is an automated message from the parking management system.</div>
	</div>
</body>
</html>
`
