package web

import "github.com/a-h/templ"

type choice struct {
	Value string
	Label string
}

type field struct {
	Name     string
	Label    string
	Type     string
	Required bool
	Choices  []choice
	Help     string
}

var contactChoices = []choice{{"email", "Email"}, {"phone", "Phone"}}

var contactFields = []field{
	{Name: "contact_method", Label: "Best way to contact you", Type: "radio", Required: true, Choices: contactChoices},
	{Name: "contact_days", Label: "Best days to reach you", Type: "text", Help: "e.g. Monday, Wednesday"},
	{Name: "contact_time", Label: "Best time to reach you", Type: "text"},
	{Name: "survey_referal_explain", Label: "How did you hear about us?", Type: "text"},
	{Name: "survey_questions", Label: "Questions or comments", Type: "textarea"},
}

type formLayout struct {
	Heading string
	Action  string
	Button  string
	Fields  []field
}

var formLayouts = map[string]formLayout{
	"business": {
		Heading: "Trivia at your business",
		Action:  "/contact/hire-us/business/",
		Button:  "Send inquiry",
		Fields: append([]field{
			{Name: "business_name", Label: "Business name", Type: "text", Required: true},
			{Name: "business_phone", Label: "Business phone", Type: "tel", Required: true},
			{Name: "client_name", Label: "Your name", Type: "text", Required: true},
			{Name: "client_phone", Label: "Your phone", Type: "tel", Required: true},
			{Name: "client_email", Label: "Email", Type: "email", Required: true},
			{Name: "business_type", Label: "Type of business", Type: "radio", Required: true, Choices: []choice{
				{"restaurant/bar", "Restaurant/Bar"}, {"taproom", "Taproom"}, {"bar", "Bar"}, {"other", "Other"},
			}},
			{Name: "business_type_other", Label: "If other, please describe", Type: "text"},
			{Name: "survey_previous_trivia", Label: "Have you had trivia before?", Type: "radio", Required: true, Choices: []choice{
				{"yes", "Yes"}, {"no", "No"},
			}},
			{Name: "survey_previous_trivia_explain", Label: "If so, with whom?", Type: "text"},
		}, contactFields...),
	},
	"event": {
		Heading: "Trivia at your event",
		Action:  "/contact/hire-us/event/",
		Button:  "Send inquiry",
		Fields: append([]field{
			{Name: "client_name", Label: "Your name", Type: "text", Required: true},
			{Name: "client_phone", Label: "Your phone", Type: "tel", Required: true},
			{Name: "client_email", Label: "Email", Type: "email", Required: true},
			{Name: "event_description", Label: "Tell us about your event", Type: "textarea", Required: true},
			{Name: "event_date", Label: "Event date", Type: "text"},
			{Name: "event_guests", Label: "Expected number of guests", Type: "text"},
		}, contactFields...),
	},
	"host": {
		Heading: "Apply to host",
		Action:  "/contact/apply/",
		Button:  "Apply",
		Fields: []field{
			{Name: "name", Label: "Name", Type: "text", Required: true},
			{Name: "phone", Label: "Phone", Type: "tel", Required: true},
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "days", Label: "Days you are available", Type: "text", Required: true, Help: "e.g. Monday, Wednesday"},
			{Name: "experience", Label: "Hosting or performing experience", Type: "textarea"},
		},
	},
	"question": {
		Heading: "Send us a message",
		Action:  "/contact/questions/",
		Button:  "Send",
		Fields: []field{
			{Name: "name", Label: "Name", Type: "text", Required: true},
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "message", Label: "Message", Type: "textarea", Required: true},
		},
	},
}

// ContactForm renders the page for data.Kind. The hire-us page carries both
// the business and the event form; only the submitted one is refilled.
func ContactForm(data ContactFormData) templ.Component {
	kinds := []string{data.Kind}
	switch data.Kind {
	case "business", "event":
		data.Title = "Hire Us"
		kinds = []string{"business", "event"}
	case "host":
		data.Title = "Apply To Host"
	default:
		data.Title = "Contact"
	}
	return layout(data.Page, true, func(h *html) {
		h.paragraphs(data.Intro)
		if data.Failed {
			h.raw("<p class=\"error\">Please fix the errors below.</p>\n")
		}
		for _, kind := range kinds {
			values, errs := map[string]string(nil), map[string]string(nil)
			if kind == data.Kind {
				values, errs = data.Values, data.Errors
			}
			renderForm(h, kind, formLayouts[kind], values, errs)
		}
	})
}

func renderForm(h *html, kind string, form formLayout, values, errs map[string]string) {
	h.raw(`<form method="post" action="`, form.Action, `" class="stacked contact" id="form-`, kind, `">`+"\n  <h2>")
	h.text(form.Heading)
	h.raw("</h2>\n")
	for _, f := range form.Fields {
		value := values[f.Name]
		h.raw(`  <div class="field">` + "\n")
		if f.Type == "radio" {
			h.raw("    <fieldset><legend>")
			h.text(f.Label)
			h.raw("</legend>\n")
			for _, c := range f.Choices {
				h.raw(`      <label><input type="radio" name="`, f.Name, `" value="`)
				h.text(c.Value)
				h.raw(`"`, checked(value == c.Value), "/> ")
				h.text(c.Label)
				h.raw("</label>\n")
			}
			h.raw("    </fieldset>\n")
		} else {
			h.raw(`    <label for="`, kind, "-", f.Name, `">`)
			h.text(f.Label)
			h.raw("</label>\n")
			required := ""
			if f.Required {
				required = " required"
			}
			if f.Type == "textarea" {
				h.raw(`    <textarea id="`, kind, "-", f.Name, `" name="`, f.Name, `" rows="5"`, required, ">")
				h.text(value)
				h.raw("</textarea>\n")
			} else {
				h.raw(`    <input id="`, kind, "-", f.Name, `" type="`, f.Type, `" name="`, f.Name, `" value="`)
				h.text(value)
				h.raw(`"`, required, "/>\n")
			}
		}
		if f.Help != "" {
			h.raw(`    <small>`)
			h.text(f.Help)
			h.raw("</small>\n")
		}
		if msg := errs[f.Name]; msg != "" {
			h.raw(`    <span class="error">`)
			h.text(msg)
			h.raw("</span>\n")
		}
		h.raw("  </div>\n")
	}
	h.raw(`  <button type="submit" class="primary">`)
	h.text(form.Button)
	h.raw("</button>\n</form>\n")
}
