package server

import (
	"cmp"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"triviatime/internal/db"
	"triviatime/internal/league"
	"triviatime/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (s *Server) handleLoginView(c *gin.Context) {
	render(c, http.StatusOK, web.Login(web.LoginData{
		Page:       s.page(c, ""),
		RedirectTo: c.Query("redirect_to"),
	}))
}

func (s *Server) handleLogin(c *gin.Context) {
	redirectTo := c.Query("redirect_to")
	var req loginRequest
	if _, ok := bindForm(c, &req, nil, "Invalid login"); ok {
		user, err := s.store.Authenticate(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
		if err == nil {
			s.sessions.Login(c.Writer, c.Request, user.Username)
			c.Redirect(http.StatusFound, safeRedirect(redirectTo))
			return
		}
		if !errors.Is(err, db.ErrInvalidLogin) {
			s.serverError(c, "login", err)
			return
		}
	}
	render(c, http.StatusOK, web.Login(web.LoginData{
		Page:       s.page(c, ""),
		Username:   req.Username,
		RedirectTo: redirectTo,
		Error:      "Invalid login",
	}))
}

func (s *Server) handleLogout(c *gin.Context) {
	s.sessions.Logout(c.Writer, c.Request)
	c.Redirect(http.StatusFound, "/")
}

type movePennantRequest struct {
	Pennant  string `form:"pennant" binding:"required"`
	Venue    string `form:"venue" binding:"required"`
	NextGame string `form:"nextGame" binding:"required,shortdate"`
}

var movePennantMessages = bindMessages{
	"Pennant":  {"required": "Invalid pennant selected"},
	"Venue":    {"required": "Invalid venue selected"},
	"NextGame": {"required": "Invalid date given", "shortdate": "Invalid date given"},
}

func (s *Server) movePennantData(c *gin.Context) (web.MovePennantData, error) {
	ctx := c.Request.Context()
	holders, err := s.store.PennantHolders(ctx)
	if err != nil {
		return web.MovePennantData{}, err
	}
	venues, err := s.store.Venues(ctx)
	if err != nil {
		return web.MovePennantData{}, err
	}
	slices.SortStableFunc(venues, func(a, b db.Venue) int { return cmp.Compare(a.Name, b.Name) })
	data := web.MovePennantData{Page: s.page(c, "")}
	for _, h := range holders {
		choice := web.PennantChoice{District: h.District.Name}
		if h.Holder != nil {
			choice.Current = h.Holder.Name
		}
		if !h.Pennant.NextGame.IsZero() {
			choice.NextGame = league.LongDate(h.Pennant.NextGame)
		}
		for _, v := range venues {
			if v.PennantDistrictID != nil && *v.PennantDistrictID == h.District.ID && !v.HasPennant {
				choice.Venues = append(choice.Venues, web.VenueOption{Code: v.Code, Name: v.Name})
			}
		}
		data.Pennants = append(data.Pennants, choice)
	}
	return data, nil
}

func (s *Server) handleMovePennantView(c *gin.Context) {
	data, err := s.movePennantData(c)
	if err != nil {
		s.serverError(c, "move pennant view", err)
		return
	}
	render(c, http.StatusOK, web.MovePennant(data))
}

func (s *Server) handleMovePennant(c *gin.Context) {
	message, status := s.movePennant(c)
	if status == http.StatusInternalServerError {
		return
	}
	data, err := s.movePennantData(c)
	if err != nil {
		s.serverError(c, "move pennant view", err)
		return
	}
	data.Error = message
	data.Success = message == ""
	render(c, status, web.MovePennant(data))
}

// movePennant applies the posted move. It returns the message to show and
// the response status; on 500 the response has already been written.
func (s *Server) movePennant(c *gin.Context) (string, int) {
	ctx := c.Request.Context()
	var req movePennantRequest
	if msg, ok := bindForm(c, &req, movePennantMessages, "Invalid pennant selected"); !ok {
		return msg, http.StatusBadRequest
	}
	district, err := s.store.DistrictByName(ctx, req.Pennant)
	if errors.Is(err, db.ErrUnknownDistrict) {
		return "Invalid pennant selected", http.StatusBadRequest
	}
	if err != nil {
		s.serverError(c, "find district", err)
		return "", http.StatusInternalServerError
	}
	venue, err := s.store.VenueByCode(ctx, strings.ToUpper(strings.TrimSpace(req.Venue)))
	if errors.Is(err, db.ErrUnknownVenue) {
		return "Invalid venue selected", http.StatusBadRequest
	}
	if err != nil {
		s.serverError(c, "find venue", err)
		return "", http.StatusInternalServerError
	}
	if venue.PennantDistrictID == nil || *venue.PennantDistrictID != district.ID {
		return fmt.Sprintf("That venue is not in the %s district", district.Name), http.StatusBadRequest
	}
	nextGame, err := league.ParseShortDate(req.NextGame)
	if err != nil {
		return "Invalid date given", http.StatusBadRequest
	}

	scheduled, err := s.store.MovePennant(ctx, district.Name, venue.Code, s.today())
	switch {
	case errors.Is(err, db.ErrUnknownDistrict):
		return "Invalid pennant selected", http.StatusBadRequest
	case errors.Is(err, db.ErrUnknownVenue):
		return "Invalid venue selected", http.StatusBadRequest
	case errors.Is(err, db.ErrVenueOutsideDistrict):
		return fmt.Sprintf("That venue is not in the %s district", district.Name), http.StatusBadRequest
	case err != nil:
		s.serverError(c, "move pennant", err)
		return "", http.StatusInternalServerError
	}
	if !scheduled.Equal(nextGame) {
		if err := s.store.SetNextPennantGame(ctx, district.Name, nextGame); err != nil {
			s.serverError(c, "set next pennant game", err)
			return "", http.StatusInternalServerError
		}
	}
	return "", http.StatusOK
}

type updateStandingsRequest struct {
	Venue  string `form:"venue" binding:"required,venuecode"`
	Win    string `form:"win"`
	Defend string `form:"defend"`
	Place  string `form:"place"`
}

var updateStandingsMessages = bindMessages{
	"Venue": {"required": "Invalid venue selected", "venuecode": "Invalid venue selected"},
}

func (s *Server) updateStandingsData(c *gin.Context) (web.UpdateStandingsData, error) {
	venues, err := s.store.Venues(c.Request.Context())
	if err != nil {
		return web.UpdateStandingsData{}, err
	}
	slices.SortStableFunc(venues, func(a, b db.Venue) int { return cmp.Compare(a.Name, b.Name) })
	data := web.UpdateStandingsData{Page: s.page(c, "")}
	for _, v := range venues {
		if v.PennantDistrictID != nil {
			data.Venues = append(data.Venues, web.VenueOption{Code: v.Code, Name: v.Name})
		}
	}
	return data, nil
}

func (s *Server) handleUpdateStandingsView(c *gin.Context) {
	data, err := s.updateStandingsData(c)
	if err != nil {
		s.serverError(c, "update standings view", err)
		return
	}
	render(c, http.StatusOK, web.UpdateStandings(data))
}

func (s *Server) handleUpdateStandings(c *gin.Context) {
	message, status := s.updateStandings(c)
	if status == http.StatusInternalServerError {
		return
	}
	data, err := s.updateStandingsData(c)
	if err != nil {
		s.serverError(c, "update standings view", err)
		return
	}
	data.Error = message
	data.Success = message == ""
	render(c, status, web.UpdateStandings(data))
}

func (s *Server) updateStandings(c *gin.Context) (string, int) {
	var req updateStandingsRequest
	if msg, ok := bindForm(c, &req, updateStandingsMessages, "Invalid venue selected"); !ok {
		return msg, http.StatusBadRequest
	}
	counters := make([]int, 0, 3)
	for _, raw := range []string{req.Win, req.Defend, req.Place} {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return "Invalid value given", http.StatusBadRequest
		}
		counters = append(counters, value)
	}
	err := s.store.UpdateStandings(c.Request.Context(), strings.ToUpper(strings.TrimSpace(req.Venue)), counters[0], counters[1], counters[2])
	if errors.Is(err, db.ErrUnknownVenue) {
		return "Invalid venue selected", http.StatusBadRequest
	}
	if err != nil {
		s.serverError(c, "update standings", err)
		return "", http.StatusInternalServerError
	}
	return "", http.StatusOK
}

type postMode int

const (
	postPage postMode = iota
	postRaw
	postURL
)

const noCluePost = "We don't have a clue for this day yet."

// handleFBPost generates the social post for the next game day named in the
// path.
func (s *Server) handleFBPost(mode postMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		today := s.today()
		day, ok := parsePostDay(c.Param("day"), today)
		if !ok {
			c.String(http.StatusNotFound, "Unknown day")
			return
		}
		clue, ok, err := s.store.ClueFor(ctx, day, today, s.cfg.ClueRetentionDays)
		if err != nil {
			s.serverError(c, "find clue", err)
			return
		}
		if !ok {
			if mode == postPage {
				render(c, http.StatusOK, web.FBPost(web.FBPostData{
					Page:      s.page(c, ""),
					Day:       league.LongDate(day),
					ClueTitle: "No Clue Yet",
					Post:      noCluePost,
				}))
				return
			}
			c.String(http.StatusOK, noCluePost)
			return
		}
		if mode == postURL {
			link := templ.EscapeString(clue.Title)
			if clue.URL != "" {
				link = fmt.Sprintf(`<a href="%s">%s</a>`, templ.EscapeString(clue.URL), link)
			}
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(link))
			return
		}

		venues, err := s.store.VenuesPlaying(ctx, day)
		if err != nil {
			s.serverError(c, "list venues", err)
			return
		}
		pennantGames, err := s.pennantGames(ctx, day)
		if err != nil {
			s.serverError(c, "list pennant games", err)
			return
		}
		postVenues := make([]league.PostVenue, 0, len(venues))
		for _, v := range venues {
			postVenues = append(postVenues, league.PostVenue{Venue: v.League(), PennantGame: pennantGames[v.Code]})
		}
		post := s.composer.Compose(day, clue.League(), postVenues)
		if mode == postRaw {
			c.String(http.StatusOK, post)
			return
		}
		render(c, http.StatusOK, web.FBPost(web.FBPostData{
			Page:      s.page(c, ""),
			Day:       league.LongDate(day),
			ClueTitle: clue.Title,
			Post:      post,
		}))
	}
}
