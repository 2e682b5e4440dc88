// Package forms validates the public contact and application forms and turns
// accepted submissions into email-ready values.
package forms

import (
	"fmt"
	"strings"
)

// Submission is an accepted form, ready to be stored and emailed.
type Submission interface {
	Kind() string
	Subject() string
	Body() string
	ReplyTo() string
}

type line struct {
	label string
	value string
}

// listing renders "Label: value" lines, skipping empty values.
func listing(lines ...line) string {
	var b strings.Builder
	for _, l := range lines {
		if strings.TrimSpace(l.value) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", l.label, l.value)
	}
	return b.String()
}

// ContactPreferences is shared by both hire-us forms.
type ContactPreferences struct {
	Method string   `json:"contact_method"`
	Days   []string `json:"contact_days,omitempty"`
	Time   string   `json:"contact_time,omitempty"`
}

func (p ContactPreferences) lines() []line {
	return []line{
		{"Best way to contact", p.Method},
		{"Best days to reach", strings.Join(p.Days, ", ")},
		{"Best time to reach", p.Time},
	}
}

func preferences(method, days, at string) ContactPreferences {
	prefs := ContactPreferences{Method: method, Time: normalizeText(at)}
	if strings.TrimSpace(days) != "" {
		prefs.Days, _ = ParseDays(days)
	}
	return prefs
}

// BusinessForm is the hire-us form for bars and restaurants.
type BusinessForm struct {
	BusinessName          string `form:"business_name" validate:"required,max=128"`
	BusinessPhone         string `form:"business_phone" validate:"required,phone"`
	ContactName           string `form:"client_name" validate:"required,max=128"`
	ContactPhone          string `form:"client_phone" validate:"required,phone"`
	ContactEmail          string `form:"client_email" validate:"required,email_at,max=254"`
	BusinessType          string `form:"business_type" validate:"required,oneof=restaurant/bar taproom bar other"`
	BusinessTypeOther     string `form:"business_type_other" validate:"required_if=BusinessType other,max=256"`
	PreviousTrivia        string `form:"survey_previous_trivia" validate:"required,oneof=yes no"`
	PreviousTriviaExplain string `form:"survey_previous_trivia_explain" validate:"max=256"`
	ContactMethod         string `form:"contact_method" validate:"required,oneof=email phone"`
	ContactDays           string `form:"contact_days" validate:"omitempty,days"`
	ContactTime           string `form:"contact_time" validate:"max=128"`
	Referral              string `form:"survey_referal_explain" validate:"max=256"`
	Questions             string `form:"survey_questions" validate:"max=4000"`
}

type BusinessInquiry struct {
	BusinessName          string             `json:"business_name"`
	BusinessPhone         string             `json:"business_phone"`
	ContactName           string             `json:"contact_name"`
	ContactPhone          string             `json:"contact_phone"`
	ContactEmail          string             `json:"contact_email"`
	BusinessType          string             `json:"business_type"`
	BusinessTypeOther     string             `json:"business_type_other,omitempty"`
	PreviousTrivia        bool               `json:"previous_trivia"`
	PreviousTriviaExplain string             `json:"previous_trivia_explain,omitempty"`
	Contact               ContactPreferences `json:"contact"`
	Referral              string             `json:"referral,omitempty"`
	Questions             string             `json:"questions,omitempty"`
}

func (f BusinessForm) Validate() (BusinessInquiry, Errors) {
	if errs := check(f); errs != nil {
		return BusinessInquiry{}, errs
	}
	businessPhone, _ := NormalizePhone(f.BusinessPhone)
	contactPhone, _ := NormalizePhone(f.ContactPhone)
	return BusinessInquiry{
		BusinessName:          normalizeText(f.BusinessName),
		BusinessPhone:         businessPhone,
		ContactName:           normalizeText(f.ContactName),
		ContactPhone:          contactPhone,
		ContactEmail:          strings.TrimSpace(f.ContactEmail),
		BusinessType:          f.BusinessType,
		BusinessTypeOther:     normalizeText(f.BusinessTypeOther),
		PreviousTrivia:        f.PreviousTrivia == "yes",
		PreviousTriviaExplain: normalizeText(f.PreviousTriviaExplain),
		Contact:               preferences(f.ContactMethod, f.ContactDays, f.ContactTime),
		Referral:              normalizeText(f.Referral),
		Questions:             strings.TrimSpace(f.Questions),
	}, nil
}

func (b BusinessInquiry) Kind() string    { return "business" }
func (b BusinessInquiry) ReplyTo() string { return b.ContactEmail }

func (b BusinessInquiry) Subject() string {
	return "Hire us: " + b.BusinessName
}

func (b BusinessInquiry) Body() string {
	previous := "No"
	if b.PreviousTrivia {
		previous = "Yes"
	}
	lines := []line{
		{"Business name", b.BusinessName},
		{"Business phone", b.BusinessPhone},
		{"Contact name", b.ContactName},
		{"Contact phone", b.ContactPhone},
		{"Contact email", b.ContactEmail},
		{"Business type", b.BusinessType},
		{"Business type description", b.BusinessTypeOther},
		{"Has run trivia before", previous},
		{"Previous trivia provider", b.PreviousTriviaExplain},
	}
	lines = append(lines, b.Contact.lines()...)
	lines = append(lines, line{"Referral", b.Referral}, line{"Questions", b.Questions})
	return listing(lines...)
}

// EventForm is the hire-us form for private events.
type EventForm struct {
	ContactName   string `form:"client_name" validate:"required,max=128"`
	ContactPhone  string `form:"client_phone" validate:"required,phone"`
	ContactEmail  string `form:"client_email" validate:"required,email_at,max=254"`
	Description   string `form:"event_description" validate:"required,max=4000"`
	EventDate     string `form:"event_date" validate:"max=64"`
	Guests        string `form:"event_guests" validate:"max=64"`
	ContactMethod string `form:"contact_method" validate:"required,oneof=email phone"`
	ContactDays   string `form:"contact_days" validate:"omitempty,days"`
	ContactTime   string `form:"contact_time" validate:"max=128"`
	Referral      string `form:"survey_referal_explain" validate:"max=256"`
	Questions     string `form:"survey_questions" validate:"max=4000"`
}

type EventInquiry struct {
	ContactName  string             `json:"contact_name"`
	ContactPhone string             `json:"contact_phone"`
	ContactEmail string             `json:"contact_email"`
	Description  string             `json:"description"`
	EventDate    string             `json:"event_date,omitempty"`
	Guests       string             `json:"guests,omitempty"`
	Contact      ContactPreferences `json:"contact"`
	Referral     string             `json:"referral,omitempty"`
	Questions    string             `json:"questions,omitempty"`
}

func (f EventForm) Validate() (EventInquiry, Errors) {
	if errs := check(f); errs != nil {
		return EventInquiry{}, errs
	}
	phone, _ := NormalizePhone(f.ContactPhone)
	return EventInquiry{
		ContactName:  normalizeText(f.ContactName),
		ContactPhone: phone,
		ContactEmail: strings.TrimSpace(f.ContactEmail),
		Description:  strings.TrimSpace(f.Description),
		EventDate:    normalizeText(f.EventDate),
		Guests:       normalizeText(f.Guests),
		Contact:      preferences(f.ContactMethod, f.ContactDays, f.ContactTime),
		Referral:     normalizeText(f.Referral),
		Questions:    strings.TrimSpace(f.Questions),
	}, nil
}

func (e EventInquiry) Kind() string    { return "event" }
func (e EventInquiry) ReplyTo() string { return e.ContactEmail }

func (e EventInquiry) Subject() string {
	return "Event inquiry: " + e.ContactName
}

func (e EventInquiry) Body() string {
	lines := []line{
		{"Contact name", e.ContactName},
		{"Contact phone", e.ContactPhone},
		{"Contact email", e.ContactEmail},
		{"Event", e.Description},
		{"Event date", e.EventDate},
		{"Expected guests", e.Guests},
	}
	lines = append(lines, e.Contact.lines()...)
	lines = append(lines, line{"Referral", e.Referral}, line{"Questions", e.Questions})
	return listing(lines...)
}

// HostForm is the application to become a trivia host.
type HostForm struct {
	Name       string `form:"name" validate:"required,max=128"`
	Phone      string `form:"phone" validate:"required,phone"`
	Email      string `form:"email" validate:"required,email_at,max=254"`
	Days       string `form:"days" validate:"required,days"`
	Experience string `form:"experience" validate:"max=4000"`
}

type HostApplication struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Days       []string `json:"days"`
	Experience string   `json:"experience,omitempty"`
}

func (f HostForm) Validate() (HostApplication, Errors) {
	if errs := check(f); errs != nil {
		return HostApplication{}, errs
	}
	phone, _ := NormalizePhone(f.Phone)
	days, _ := ParseDays(f.Days)
	return HostApplication{
		Name:       normalizeText(f.Name),
		Phone:      phone,
		Email:      strings.TrimSpace(f.Email),
		Days:       days,
		Experience: strings.TrimSpace(f.Experience),
	}, nil
}

func (h HostApplication) Kind() string    { return "host" }
func (h HostApplication) ReplyTo() string { return h.Email }

func (h HostApplication) Subject() string {
	return "Host application: " + h.Name
}

func (h HostApplication) Body() string {
	return listing(
		line{"Name", h.Name},
		line{"Phone", h.Phone},
		line{"Email", h.Email},
		line{"Available days", strings.Join(h.Days, ", ")},
		line{"Experience", h.Experience},
	)
}

// QuestionForm is the general contact form.
type QuestionForm struct {
	Name    string `form:"name" validate:"required,max=128"`
	Email   string `form:"email" validate:"required,email_at,max=254"`
	Message string `form:"message" validate:"required,max=4000"`
}

type Question struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (f QuestionForm) Validate() (Question, Errors) {
	if errs := check(f); errs != nil {
		return Question{}, errs
	}
	return Question{
		Name:    normalizeText(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}, nil
}

func (q Question) Kind() string    { return "question" }
func (q Question) ReplyTo() string { return q.Email }

func (q Question) Subject() string {
	return "Question from " + q.Name
}

func (q Question) Body() string {
	return listing(
		line{"Name", q.Name},
		line{"Email", q.Email},
		line{"Message", q.Message},
	)
}
