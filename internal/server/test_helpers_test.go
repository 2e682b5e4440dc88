package server

import (
	"context"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"triviatime/internal/config"
	"triviatime/internal/db"
	"triviatime/internal/mail"

	"gorm.io/datatypes"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	return nil
}

func (m *recordingMailer) messages() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.sent...)
}

type testEnv struct {
	ts     *httptest.Server
	srv    *Server
	store  *db.Store
	mailer *recordingMailer
	client *http.Client
}

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

// wednesday is the clock every test starts on: Wednesday, October 14th 2026
// at noon UTC, a game day for BKR and PIG.
var wednesday = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Default()
	cfg.DatabaseURL = "file::memory:?_pragma=foreign_keys(1)"
	cfg.Timezone = "UTC"
	cfg.ContactEmail = "office@example.com"
	cfg.MailFrom = "website@example.com"
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	store := db.NewStore(conn)
	seed(t, store)

	mailer := &recordingMailer{}
	srv := New(store, cfg, mailer, nil)
	srv.now = func() time.Time { return wednesday }
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &testEnv{ts: ts, srv: srv, store: store, mailer: mailer, client: client}
}

// seed creates the North district with BKR and PIG (Wednesdays at 7pm), BBC
// (Mondays at 6:30pm, no district), two players, a staff login and the
// clue for the test Wednesday.
func seed(t *testing.T, store *db.Store) {
	t.Helper()
	ctx := context.Background()
	north, err := store.EnsureDistrict(ctx, "North")
	if err != nil {
		t.Fatalf("district: %v", err)
	}
	venues := []db.Venue{
		{Code: "BKR", Name: "The Brass Kraken", Day: 2, Time: db.ClockTime(19, 0), Address: "18830 Front St NE\nPoulsbo, WA 98370", PennantDistrictID: &north.ID},
		{Code: "PIG", Name: "Slippery Pig Brewery", Day: 2, Time: db.ClockTime(19, 0), Address: "18801 Front St NE\nPoulsbo, WA 98370", PennantDistrictID: &north.ID},
		{Code: "BBC", Name: "Bainbridge Brewing", Day: 0, Time: db.ClockTime(18, 30), Address: "9415 Coppertop Loop NE\nBainbridge Island, WA 98110"},
	}
	for i := range venues {
		if err := store.SaveVenue(ctx, &venues[i]); err != nil {
			t.Fatalf("save venue %s: %v", venues[i].Code, err)
		}
	}
	for pid, name := range map[int]string{100: "Ada Lovelace", 101: "Grace Hopper"} {
		if err := store.SavePlayer(ctx, &db.Player{PID: pid, Name: name}); err != nil {
			t.Fatalf("save player %d: %v", pid, err)
		}
	}
	if err := store.SetStaffPassword(ctx, "host", "secret"); err != nil {
		t.Fatalf("staff: %v", err)
	}
	clue := db.Clue{Date: datatypes.Date(wednesday), Title: "National Dessert Day", URL: "https://nationaltoday.com/national-dessert-day/"}
	if err := store.SaveClue(ctx, &clue); err != nil {
		t.Fatalf("clue: %v", err)
	}
}
