package web

// Page carries what every page's layout needs.
type Page struct {
	Title    string
	Username string
	Flash    string
}

type GameListing struct {
	Venue       string
	Address     string
	Time        string
	PennantGame bool
}

type ClueView struct {
	Title string
	URL   string
}

type AnnouncementView struct {
	Title       string
	Description string
	URL         string
	ImageURL    string
	Internal    bool
}

type IndexData struct {
	Page
	Date          string
	Games         []GameListing
	Clue          ClueView
	Announcements []AnnouncementView
}

type ContentData struct {
	Page
	Heading string
	Body    string
}

type VenueListing struct {
	Code        string
	Name        string
	Day         string
	Time        string
	Address     string
	URL         string
	District    string
	HasPennant  bool
	HoldMessage string
}

type VenuesData struct {
	Page
	Intro  string
	Venues []VenueListing
}

type DiscountRow struct {
	Name        string
	Description string
}

type DiscountsData struct {
	Page
	Intro  string
	Venues []DiscountRow
	Extras []DiscountRow
}

type PlayerRow struct {
	Rank       int
	PID        string
	Name       string
	YearJoined int
	Points     int
}

type StandingsData struct {
	Page
	Year       int
	Players    []PlayerRow
	Pagination PaginationData
}

type StandingRow struct {
	Venue  string
	Win    int
	Defend int
	Place  int
	Total  int
}

type DistrictStandings struct {
	District string
	Holder   string
	Rows     []StandingRow
}

type PennantStandingsData struct {
	Page
	Districts []DistrictStandings
}

type EventData struct {
	Page
	Found                 bool
	Title                 string
	When                  string
	Location              string
	Description           string
	BackgroundImage       string
	BackgroundImageNarrow string
}

type LoginData struct {
	Page
	Username   string
	RedirectTo string
	Error      string
}

type VenueOption struct {
	Code string
	Name string
}

type PennantChoice struct {
	District string
	Current  string
	NextGame string
	Venues   []VenueOption
}

type MovePennantData struct {
	Page
	Pennants []PennantChoice
	Error    string
	Success  bool
}

type UpdateStandingsData struct {
	Page
	Venues  []VenueOption
	Error   string
	Success bool
}

type FBPostData struct {
	Page
	Day       string
	ClueTitle string
	Post      string
}

type CheckInFormData struct {
	Page
	Today  string
	Venues []VenueOption
}

// ContactFormData re-renders a contact form with the submitted values and
// any field errors.
type ContactFormData struct {
	Page
	Kind   string
	Intro  string
	Values map[string]string
	Errors map[string]string
	Failed bool
}

type PaginationData struct {
	BasePath   string
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}
