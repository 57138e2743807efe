package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/domain"
)

const awardTextBody = `Hi {{.Name}},

You have received the "{{.AwardName}}" award on {{.SiteName}}.

{{.AwardDescription}}
`

const awardHTMLBody = `<p>Hi {{.Name}},</p>
<p>You have received the <strong>{{.AwardName}}</strong> award on {{.SiteName}}.</p>
<p>{{.AwardDescription}}</p>
`

var (
	awardTextTemplate = texttemplate.Must(texttemplate.New("award-text").Parse(awardTextBody))
	awardHTMLTemplate = htmltemplate.Must(htmltemplate.New("award-html").Parse(awardHTMLBody))
)

type awardMailData struct {
	Name             string
	SiteName         string
	AwardName        string
	AwardDescription string
}

// renderAwardMail builds the e-mail announcing an award to its recipient
func renderAwardMail(from, siteName string, user *domain.User, award *domain.Award) (adapter.Mail, error) {
	data := awardMailData{
		Name:             user.DisplayName(),
		SiteName:         siteName,
		AwardName:        award.Name,
		AwardDescription: award.Description,
	}

	var text, html bytes.Buffer
	if err := awardTextTemplate.Execute(&text, data); err != nil {
		return adapter.Mail{}, err
	}
	if err := awardHTMLTemplate.Execute(&html, data); err != nil {
		return adapter.Mail{}, err
	}

	return adapter.Mail{
		From:     from,
		To:       user.Email,
		Subject:  fmt.Sprintf("You received the %s award on %s", award.Name, siteName),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}
