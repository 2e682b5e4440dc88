package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"triviatime/internal/db"
	"triviatime/internal/league"
	"triviatime/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

// defaultContent fills a page until staff store text for it.
var defaultContent = map[string]string{
	"about":         "Trivia Time Live runs free weekly pub trivia across Kitsap County and beyond.\n\nGrab some friends, pick a team name and come play!",
	"how_to_play":   "Teams of up to six answer rounds of questions read by our hosts. Write your answers on the sheet and hand them in at the end of each round.\n\nPlaying is always free. No phones during rounds, please.",
	"pennant_about": "Each district has a pennant that travels between venues. The venue holding it defends it at its next pennant game, and the winning team's home venue takes it home.",
	"palooza_about": "Trivia Palooza is our season-long players' league. Check in at any game to earn points, and visit at least three different venues to multiply them.",
	"venues":        "",
	"discounts":     "Show your Palooza card at these venues for a discount on game night.",
	"hire_us":       "Want trivia at your bar, restaurant or private event? Tell us a little about it and we'll be in touch.",
	"apply":         "Love trivia and a microphone? We are always looking for new hosts.",
	"contact":       "Questions, comments or corrections? Send us a message.",
}

func (s *Server) pageText(ctx context.Context, name string) string {
	if s.store != nil {
		text, ok, err := s.store.PageContent(ctx, name)
		if err != nil {
			log.Printf("page content failed name=%s err=%v", name, err)
		}
		if ok {
			return text
		}
	}
	return defaultContent[name]
}

func render(c *gin.Context, status int, component templ.Component) {
	templ.Handler(component, templ.WithStatus(status)).ServeHTTP(c.Writer, c.Request)
}

func (s *Server) serverError(c *gin.Context, what string, err error) {
	log.Printf("%s failed path=%s err=%v", what, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
}

// pennantGames returns the codes of venues defending a pennant on day.
func (s *Server) pennantGames(ctx context.Context, day time.Time) (map[string]bool, error) {
	holders, err := s.store.PennantHolders(ctx)
	if err != nil {
		return nil, err
	}
	games := make(map[string]bool)
	for _, h := range holders {
		if h.Holder != nil && league.IsPennantGame(h.Holder.League(), h.Pennant, day) {
			games[h.Holder.Code] = true
		}
	}
	return games, nil
}

func announcementViews(announcements []league.Announcement) []web.AnnouncementView {
	views := make([]web.AnnouncementView, 0, len(announcements))
	for _, a := range announcements {
		view := web.AnnouncementView{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.ImageURL,
			Internal:    a.IsURLInternal(),
		}
		if view.Internal {
			view.URL = "/" + strings.TrimPrefix(a.URL, "/")
		}
		views = append(views, view)
	}
	return views
}

func (s *Server) handleIndex(c *gin.Context) {
	ctx := c.Request.Context()
	today := s.today()
	venues, err := s.store.VenuesPlaying(ctx, today)
	if err != nil {
		s.serverError(c, "list todays games", err)
		return
	}
	pennantGames, err := s.pennantGames(ctx, today)
	if err != nil {
		s.serverError(c, "list pennant games", err)
		return
	}
	data := web.IndexData{
		Page: s.page(c, ""),
		Date: league.LongDate(today),
		Clue: web.ClueView{Title: "Coming Soon!"},
	}
	for _, v := range venues {
		data.Games = append(data.Games, web.GameListing{
			Venue:       v.Name,
			Address:     v.Address,
			Time:        v.League().Time.Long(),
			PennantGame: pennantGames[v.Code],
		})
	}
	clue, ok, err := s.store.ClueFor(ctx, today, today, s.cfg.ClueRetentionDays)
	if err != nil {
		s.serverError(c, "find todays clue", err)
		return
	}
	if ok {
		data.Clue = web.ClueView{Title: clue.Title, URL: clue.URL}
	}
	pennants, err := s.store.PennantAnnouncements(ctx, today)
	if err != nil {
		s.serverError(c, "pennant announcements", err)
		return
	}
	active, err := s.store.ActiveAnnouncements(ctx, s.now())
	if err != nil {
		s.serverError(c, "active announcements", err)
		return
	}
	data.Announcements = announcementViews(append(pennants, active...))
	render(c, http.StatusOK, web.Index(data))
}

func (s *Server) contentPage(name, heading string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, web.Content(web.ContentData{
			Page:    s.page(c, heading),
			Heading: heading,
			Body:    s.pageText(c.Request.Context(), name),
		}))
	}
}

func (s *Server) handleVenues(c *gin.Context) {
	ctx := c.Request.Context()
	venues, err := s.store.Venues(ctx)
	if err != nil {
		s.serverError(c, "list venues", err)
		return
	}
	today := s.today()
	data := web.VenuesData{Page: s.page(c, "Where To Play"), Intro: s.pageText(ctx, "venues")}
	for _, v := range venues {
		lv := v.League()
		listing := web.VenueListing{
			Code:       v.Code,
			Name:       v.Name,
			Day:        league.WeekdayName(v.Day),
			Time:       lv.Time.Long(),
			Address:    v.Address,
			URL:        v.URL,
			District:   lv.District,
			HasPennant: v.HasPennant,
		}
		if lv.Hold != nil && !lv.Hold.Expired(today) {
			listing.HoldMessage = lv.Hold.Message
		}
		data.Venues = append(data.Venues, listing)
	}
	render(c, http.StatusOK, web.Venues(data))
}

func (s *Server) handleDiscounts(c *gin.Context) {
	ctx := c.Request.Context()
	venueDiscounts, extras, err := s.store.Discounts(ctx)
	if err != nil {
		s.serverError(c, "list discounts", err)
		return
	}
	data := web.DiscountsData{Page: s.page(c, "Discounts"), Intro: s.pageText(ctx, "discounts")}
	for _, d := range venueDiscounts {
		data.Venues = append(data.Venues, web.DiscountRow{Name: d.Venue.Name, Description: d.Description})
	}
	for _, d := range extras {
		data.Extras = append(data.Extras, web.DiscountRow{Name: d.Name, Description: d.Description})
	}
	render(c, http.StatusOK, web.Discounts(data))
}

func (s *Server) handleStandings(c *gin.Context) {
	year := s.today().Year()
	ranked, err := s.store.PlayerStandings(c.Request.Context(), year, s.loc)
	if err != nil {
		s.serverError(c, "player standings", err)
		return
	}
	page, perPage := pageParams(c, 100, 500)
	rows, pagination := paginate(ranked, c.Request.URL.Path, page, perPage)

	data := web.StandingsData{
		Page:       s.page(c, "Trivia Palooza Standings"),
		Year:       year,
		Pagination: pagination,
	}
	for _, p := range rows {
		data.Players = append(data.Players, web.PlayerRow{
			Rank:       p.Rank,
			PID:        padPID(p.PID),
			Name:       p.Name,
			YearJoined: p.YearJoined,
			Points:     p.Points,
		})
	}
	render(c, http.StatusOK, web.Standings(data))
}

func padPID(pid int) string {
	raw := strconv.Itoa(pid)
	if len(raw) < 3 {
		raw = strings.Repeat("0", 3-len(raw)) + raw
	}
	return raw
}

func (s *Server) handlePennantStandings(c *gin.Context) {
	ctx := c.Request.Context()
	standings, err := s.store.PennantStandings(ctx)
	if err != nil {
		s.serverError(c, "pennant standings", err)
		return
	}
	holders, err := s.store.PennantHolders(ctx)
	if err != nil {
		s.serverError(c, "pennant holders", err)
		return
	}
	holderNames := make(map[string]string, len(holders))
	for _, h := range holders {
		if h.Holder != nil {
			holderNames[h.District.Name] = h.Holder.Name
		}
	}
	data := web.PennantStandingsData{Page: s.page(c, "Pennant Standings")}
	for _, st := range standings {
		if n := len(data.Districts); n == 0 || data.Districts[n-1].District != st.District {
			data.Districts = append(data.Districts, web.DistrictStandings{
				District: st.District,
				Holder:   holderNames[st.District],
			})
		}
		d := &data.Districts[len(data.Districts)-1]
		d.Rows = append(d.Rows, web.StandingRow{
			Venue:  st.Venue,
			Win:    st.Win,
			Defend: st.Defend,
			Place:  st.Place,
			Total:  st.TotalPoints(),
		})
	}
	render(c, http.StatusOK, web.PennantStandings(data))
}

func (s *Server) handleEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		render(c, http.StatusNotFound, web.Event(web.EventData{Page: s.page(c, "")}))
		return
	}
	event, err := s.store.EventByID(c.Request.Context(), uint(id))
	if errors.Is(err, db.ErrNotFound) {
		render(c, http.StatusNotFound, web.Event(web.EventData{Page: s.page(c, "")}))
		return
	}
	if err != nil {
		s.serverError(c, "find event", err)
		return
	}
	if canonical := "/" + db.EventPath(event) + "/"; c.Request.URL.Path != canonical {
		c.Redirect(http.StatusMovedPermanently, canonical)
		return
	}
	render(c, http.StatusOK, web.Event(web.EventData{
		Page:                  s.page(c, ""),
		Found:                 true,
		Title:                 event.Title,
		When:                  league.EventDateString(event.StartsAt.In(s.loc)),
		Location:              event.Location,
		Description:           event.Description,
		BackgroundImage:       event.BackgroundImage,
		BackgroundImageNarrow: event.BackgroundImageNarrow,
	}))
}
