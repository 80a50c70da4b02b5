package mailer

import "strings"

// Service is the relay endpoint of a well-known mail provider
type Service struct {
	Host string
	Port int
}

var wellKnownServices = map[string]Service{
	"gmail":      {Host: "smtp.gmail.com", Port: 587},
	"googlemail": {Host: "smtp.gmail.com", Port: 587},
	"outlook":    {Host: "smtp-mail.outlook.com", Port: 587},
	"hotmail":    {Host: "smtp-mail.outlook.com", Port: 587},
	"office365":  {Host: "smtp.office365.com", Port: 587},
	"yahoo":      {Host: "smtp.mail.yahoo.com", Port: 465},
	"zoho":       {Host: "smtp.zoho.com", Port: 587},
	"icloud":     {Host: "smtp.mail.me.com", Port: 587},
	"fastmail":   {Host: "smtp.fastmail.com", Port: 465},
	"gmx":        {Host: "mail.gmx.com", Port: 587},
	"sendgrid":   {Host: "smtp.sendgrid.net", Port: 587},
	"mailgun":    {Host: "smtp.mailgun.org", Port: 587},
	"postmark":   {Host: "smtp.postmarkapp.com", Port: 587},
}

// LookupService resolves a provider name case-insensitively
func LookupService(name string) (Service, bool) {
	service, ok := wellKnownServices[strings.ToLower(strings.TrimSpace(name))]
	return service, ok
}
