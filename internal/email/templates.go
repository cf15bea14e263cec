package email

import (
	"fmt"
	"html"
	"time"
)

const whenLayout = "Mon, Jan 2, 2006 at 3:04 PM MST"

type Message struct {
	Subject string
	Body    string
}

func NewBookingMessage(mentorName, menteeName string, when time.Time) Message {
	return Message{
		Subject: "New booking on MentorMatch",
		Body: fmt.Sprintf(`<h1>New booking received</h1>
<p>Hi %s,</p>
<p><strong>%s</strong> booked a session with you on <strong>%s</strong>.</p>
<p>You can see the details in your MentorMatch dashboard.</p>`,
			html.EscapeString(mentorName), html.EscapeString(menteeName), when.Format(whenLayout)),
	}
}

func CancellationMessage(name, canceledBy string, when time.Time) Message {
	return Message{
		Subject: "Session canceled on MentorMatch",
		Body: fmt.Sprintf(`<h1>Session canceled</h1>
<p>Hi %s,</p>
<p>Your session with <strong>%s</strong> planned for <strong>%s</strong> has been canceled.</p>`,
			html.EscapeString(name), html.EscapeString(canceledBy), when.Format(whenLayout)),
	}
}

func PaymentConfirmedMessage(name string, when time.Time, meetingLink string) Message {
	return Message{
		Subject: "Booking confirmed on MentorMatch",
		Body: fmt.Sprintf(`<h1>Payment received</h1>
<p>Hi %s,</p>
<p>Your session on <strong>%s</strong> is confirmed.</p>
<p><b>Meeting link:</b> <a href="%s">Join session</a></p>`,
			html.EscapeString(name), when.Format(whenLayout), html.EscapeString(meetingLink)),
	}
}

func ReminderMessage(name string, when time.Time, meetingLink string) Message {
	return Message{
		Subject: "Reminder: your session starts in one hour",
		Body: fmt.Sprintf(`<h1>Session reminder</h1>
<p>Hi %s,</p>
<p>Your session starts at <strong>%s</strong>.</p>
<p><b>Meeting link:</b> <a href="%s">Join session</a></p>`,
			html.EscapeString(name), when.Format(whenLayout), html.EscapeString(meetingLink)),
	}
}
