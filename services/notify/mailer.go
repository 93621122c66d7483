package notify

import (
	"fmt"
	"strings"

	"port-app/config"
	"port-app/services/customs"

	"gopkg.in/gomail.v2"
)

// SendDiscrepancyAlert emails the customs check summary to the logistics
// desk. Best-effort: callers log the error and move on.
func SendDiscrepancyAlert(vesselName string, outcome customs.Outcome) error {
	if config.SMTPHost == "" || len(config.AlertEmails) == 0 {
		return nil
	}

	var rows strings.Builder
	for _, row := range outcome.Rows {
		if row.Finding == customs.FindingOK && !row.SameDeclaration {
			continue
		}
		note := row.Finding
		if row.SameDeclaration {
			note = "SAME_DECLARATION"
		}
		rows.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td></tr>", row.ContainerNo, note))
	}

	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Customs check findings for %s</h3>
				<table border="1" cellpadding="4">
					<tr><th>Container</th><th>Finding</th></tr>
					%s
				</table>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, vesselName, rows.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.AlertEmails...)
	msg.SetHeader("Subject", "Customs discrepancy - "+vesselName)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
