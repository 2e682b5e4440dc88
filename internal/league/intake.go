package league

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IntakeError is a check-in rejection whose message is shown to staff as is.
type IntakeError struct {
	Message string
}

func (e *IntakeError) Error() string {
	return e.Message
}

func rejectf(format string, args ...any) error {
	return &IntakeError{Message: fmt.Sprintf(format, args...)}
}

type NewPlayerEntry struct {
	PID  string
	Name string
}

// CheckInBatch is one submission from the check-in form, still unvalidated.
type CheckInBatch struct {
	Venue      string
	Date       string
	Players    []string
	NewPlayers []NewPlayerEntry
}

type NewPlayer struct {
	PID  int
	Name string
}

// CheckInPlan is a validated batch: every Existing pid is on the roster and
// every New pid is not.
type CheckInPlan struct {
	Venue    string
	Date     time.Time
	Existing []int
	New      []NewPlayer
}

// Roster answers the lookups validation needs.
type Roster interface {
	HasVenue(code string) (bool, error)
	PlayerName(pid int) (name string, ok bool, err error)
}

// PlanCheckIns validates batch against roster. Rejections come back as
// *IntakeError in a fixed order: venue, date, id format, unknown existing
// players, then new players clashing with existing ones. A new player whose
// pid is already taken under the same name (ignoring case) is treated as an
// existing player.
func PlanCheckIns(batch CheckInBatch, roster Roster) (CheckInPlan, error) {
	code := strings.ToUpper(strings.TrimSpace(batch.Venue))
	ok, err := roster.HasVenue(code)
	if err != nil {
		return CheckInPlan{}, err
	}
	if !ok {
		return CheckInPlan{}, rejectf("invalid venue")
	}
	date, err := ParseISODate(batch.Date)
	if err != nil {
		return CheckInPlan{}, rejectf("invalid date")
	}

	existing := make([]int, 0, len(batch.Players))
	for _, raw := range batch.Players {
		pid, err := parsePID(raw)
		if err != nil {
			return CheckInPlan{}, err
		}
		existing = append(existing, pid)
	}
	fresh := make([]NewPlayer, 0, len(batch.NewPlayers))
	for _, entry := range batch.NewPlayers {
		pid, err := parsePID(entry.PID)
		if err != nil {
			return CheckInPlan{}, err
		}
		fresh = append(fresh, NewPlayer{PID: pid, Name: strings.Join(strings.Fields(entry.Name), " ")})
	}

	for _, pid := range existing {
		_, ok, err := roster.PlayerName(pid)
		if err != nil {
			return CheckInPlan{}, err
		}
		if !ok {
			return CheckInPlan{}, rejectf("no player exists with %d as their number", pid)
		}
	}

	plan := CheckInPlan{Venue: code, Date: date, Existing: existing}
	seenExisting := make(map[int]bool, len(existing))
	for _, pid := range existing {
		seenExisting[pid] = true
	}
	seenNew := make(map[int]string, len(fresh))
	for _, player := range fresh {
		if player.Name == "" {
			return CheckInPlan{}, rejectf("new player #%d needs a name", player.PID)
		}
		if prior, ok := seenNew[player.PID]; ok {
			if strings.EqualFold(prior, player.Name) {
				continue
			}
			return CheckInPlan{}, rejectf("#%d was entered twice, as %q and %q", player.PID, prior, player.Name)
		}
		name, ok, err := roster.PlayerName(player.PID)
		if err != nil {
			return CheckInPlan{}, err
		}
		if ok {
			if !strings.EqualFold(strings.TrimSpace(name), player.Name) {
				return CheckInPlan{}, rejectf("#%d already exists as %s... You said %q", player.PID, name, player.Name)
			}
			if !seenExisting[player.PID] {
				plan.Existing = append(plan.Existing, player.PID)
				seenExisting[player.PID] = true
			}
			continue
		}
		seenNew[player.PID] = player.Name
		plan.New = append(plan.New, player)
	}
	return plan, nil
}

func parsePID(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	pid, err := strconv.Atoi(trimmed)
	if err != nil || pid < 0 {
		return 0, rejectf("%s is not a valid number", trimmed)
	}
	return pid, nil
}
