package server

import (
	"cmp"
	"errors"
	"log"
	"net/http"
	"slices"

	"triviatime/internal/db"
	"triviatime/internal/league"
	"triviatime/internal/web"

	"github.com/gin-gonic/gin"
)

type newPlayerRequest struct {
	PID  flexString `json:"pid"`
	PIDM flexString `json:"pidm"`
	Name string     `json:"name"`
}

type checkInRequest struct {
	Venue      string             `json:"venue"`
	Date       string             `json:"date"`
	Players    []flexString       `json:"players"`
	NewPlayers []newPlayerRequest `json:"newPlayers"`
}

func (r checkInRequest) batch() league.CheckInBatch {
	batch := league.CheckInBatch{Venue: r.Venue, Date: r.Date}
	for _, p := range r.Players {
		batch.Players = append(batch.Players, string(p))
	}
	for _, p := range r.NewPlayers {
		pid := p.PID
		if pid == "" {
			pid = p.PIDM
		}
		batch.NewPlayers = append(batch.NewPlayers, league.NewPlayerEntry{PID: string(pid), Name: p.Name})
	}
	return batch
}

func (s *Server) handleCheckInView(c *gin.Context) {
	venues, err := s.store.Venues(c.Request.Context())
	if err != nil {
		s.serverError(c, "check-in view", err)
		return
	}
	slices.SortStableFunc(venues, func(a, b db.Venue) int { return cmp.Compare(a.Name, b.Name) })
	data := web.CheckInFormData{Page: s.page(c, ""), Today: s.today().Format("2006-01-02")}
	for _, v := range venues {
		data.Venues = append(data.Venues, web.VenueOption{Code: v.Code, Name: v.Name})
	}
	render(c, http.StatusOK, web.CheckInForm(data))
}

func (s *Server) handleCheckIns(c *gin.Context) {
	var req checkInRequest
	if err := readMaybeEncodedJSON(c.Request.Body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	plan, err := s.store.RecordCheckIns(c.Request.Context(), req.batch())
	var rejection *league.IntakeError
	if errors.As(err, &rejection) {
		c.JSON(http.StatusBadRequest, gin.H{"error": rejection.Message})
		return
	}
	if err != nil {
		log.Printf("record check-ins failed venue=%s err=%v", req.Venue, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save check-ins"})
		return
	}
	log.Printf("check-ins accepted venue=%s date=%s existing=%d new=%d staff=%s",
		plan.Venue, plan.Date.Format("2006-01-02"), len(plan.Existing), len(plan.New), c.GetString(staffUserKey))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
