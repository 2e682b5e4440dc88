package server

import (
	"net/http"
	"time"

	"triviatime/internal/config"
	"triviatime/internal/db"
	"triviatime/internal/league"
	"triviatime/internal/mail"

	"github.com/gin-gonic/gin"
)

type Server struct {
	store    *db.Store
	cfg      config.Config
	loc      *time.Location
	sessions *sessionStore
	mailer   mail.Sender
	composer *league.Composer
	now      func() time.Time
}

// New wires the site to store. A nil mailer logs instead of sending and a
// nil session backend falls back to database sessions.
func New(store *db.Store, cfg config.Config, mailer mail.Sender, sessions SessionBackend) *Server {
	registerValidators()
	if mailer == nil {
		mailer = mail.LogSender{}
	}
	if sessions == nil && store != nil {
		sessions = NewDBSessions(store)
	}
	return &Server{
		store:    store,
		cfg:      cfg,
		loc:      cfg.Location(),
		sessions: newSessionStore(sessions, cfg.SessionTTL(), cfg.Env == "prod"),
		mailer:   mailer,
		composer: league.NewComposer(nil),
		now:      time.Now,
	}
}

// today is the current league date in the configured timezone.
func (s *Server) today() time.Time {
	return league.Today(s.now(), s.loc)
}

func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/", s.handleIndex)
	router.GET("/about/us/", s.contentPage("about", "About Us"))
	router.GET("/about/how-to-play/", s.contentPage("how_to_play", "How To Play / FAQ"))
	router.GET("/pennant/about/", s.contentPage("pennant_about", "What Is The Pennant?"))
	router.GET("/venues/", s.handleVenues)
	router.GET("/events/:id/:slug/", s.handleEvent)
	router.GET("/pennant/standings/", s.handlePennantStandings)

	router.GET("/palooza/", s.handleStandings)
	router.GET("/palooza/standings/", s.handleStandings)
	router.GET("/palooza/about/", s.contentPage("palooza_about", "What is Trivia Palooza?"))
	router.GET("/palooza/discounts/", s.handleDiscounts)

	router.GET("/contact/hire-us/", s.handleContactView("business"))
	router.POST("/contact/hire-us/business/", s.handleBusinessInquiry)
	router.POST("/contact/hire-us/event/", s.handleEventInquiry)
	router.GET("/contact/apply/", s.handleContactView("host"))
	router.POST("/contact/apply/", s.handleHostApplication)
	router.GET("/contact/questions/", s.handleContactView("question"))
	router.POST("/contact/questions/", s.handleQuestion)

	router.GET("/login/", s.handleLoginView)
	router.POST("/login/", s.handleLogin)
	router.GET("/logout/", s.handleLogout)

	staff := router.Group("/")
	staff.Use(s.requireStaff())
	{
		staff.GET("/pennant/move/", s.handleMovePennantView)
		staff.POST("/pennant/move/", s.handleMovePennant)
		staff.GET("/pennant/standings/update/", s.handleUpdateStandingsView)
		staff.POST("/pennant/standings/update/", s.handleUpdateStandings)
		staff.GET("/fbpost/:day/", s.handleFBPost(postPage))
		staff.GET("/fbpost/:day/raw/", s.handleFBPost(postRaw))
		staff.GET("/fbpost/:day/url/", s.handleFBPost(postURL))
		staff.GET("/palooza/checkins/add", s.handleCheckInView)
		staff.POST("/palooza/checkins/add", s.handleCheckIns)
	}

	router.Static("/static", "static")
	return router
}
