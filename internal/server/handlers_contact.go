package server

import (
	"log"
	"net/http"

	"triviatime/internal/forms"
	"triviatime/internal/mail"
	"triviatime/internal/web"

	"github.com/gin-gonic/gin"
)

var contactPages = map[string]struct {
	path    string
	content string
}{
	"business": {"/contact/hire-us/", "hire_us"},
	"event":    {"/contact/hire-us/", "hire_us"},
	"host":     {"/contact/apply/", "apply"},
	"question": {"/contact/questions/", "contact"},
}

const contactThanks = "Thanks! We got your message and will be in touch soon."

func (s *Server) handleContactView(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, web.ContactForm(web.ContactFormData{
			Page:  s.page(c, ""),
			Kind:  kind,
			Intro: s.pageText(c.Request.Context(), contactPages[kind].content),
		}))
	}
}

type contactForm[T forms.Submission] interface {
	Validate() (T, forms.Errors)
}

func (s *Server) handleBusinessInquiry(c *gin.Context) {
	handleContact[forms.BusinessForm, forms.BusinessInquiry](s, c, "business")
}

func (s *Server) handleEventInquiry(c *gin.Context) {
	handleContact[forms.EventForm, forms.EventInquiry](s, c, "event")
}

func (s *Server) handleHostApplication(c *gin.Context) {
	handleContact[forms.HostForm, forms.HostApplication](s, c, "host")
}

func (s *Server) handleQuestion(c *gin.Context) {
	handleContact[forms.QuestionForm, forms.Question](s, c, "question")
}

// handleContact binds and validates the posted form. Invalid forms are
// re-rendered with their values; accepted ones are recorded, emailed to the
// office and answered with a redirect.
func handleContact[F contactForm[T], T forms.Submission](s *Server, c *gin.Context, kind string) {
	var form F
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	result, errs := form.Validate()
	if errs != nil {
		values := make(map[string]string, len(c.Request.PostForm))
		for name := range c.Request.PostForm {
			values[name] = c.Request.PostForm.Get(name)
		}
		render(c, http.StatusBadRequest, web.ContactForm(web.ContactFormData{
			Page:   s.page(c, ""),
			Kind:   kind,
			Intro:  s.pageText(c.Request.Context(), contactPages[kind].content),
			Values: values,
			Errors: errs,
			Failed: true,
		}))
		return
	}
	ctx := c.Request.Context()
	if err := s.store.RecordSubmission(ctx, result.Kind(), result); err != nil {
		s.serverError(c, "record submission", err)
		return
	}
	err := s.mailer.Send(ctx, mail.Message{
		From:    s.cfg.MailFrom,
		To:      []string{s.cfg.ContactEmail},
		ReplyTo: result.ReplyTo(),
		Subject: result.Subject(),
		Body:    result.Body(),
	})
	if err != nil {
		log.Printf("contact mail failed kind=%s err=%v", kind, err)
	}
	s.sessions.SetFlash(c.Writer, c.Request, contactThanks)
	c.Redirect(http.StatusSeeOther, contactPages[kind].path)
}
