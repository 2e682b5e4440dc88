package web

import (
	"net/url"

	"github.com/a-h/templ"
)

func Login(data LoginData) templ.Component {
	data.Title = "Login"
	return layout(data.Page, true, func(h *html) {
		h.errorText(data.Error)
		action := "/login/"
		if data.RedirectTo != "" {
			action += "?redirect_to=" + url.QueryEscape(data.RedirectTo)
		}
		h.raw(`<form method="post" action="`)
		h.text(action)
		h.raw(`" class="stacked">
  <label>Username <input name="username" autocomplete="username" value="`)
		h.text(data.Username)
		h.raw(`" required/></label>
  <label>Password <input type="password" name="password" autocomplete="current-password" required/></label>
  <button type="submit" class="primary">Log in</button>
</form>
`)
	})
}

func venueSelect(h *html, name string, venues []VenueOption) {
	h.raw(`<select name="`, name, `" required>`+"\n")
	h.raw(`    <option value="">Select a venue</option>` + "\n")
	for _, v := range venues {
		h.raw(`    <option value="`)
		h.text(v.Code)
		h.raw(`">`)
		h.text(v.Name)
		h.raw("</option>\n")
	}
	h.raw("  </select>")
}

func MovePennant(data MovePennantData) templ.Component {
	data.Title = "Move Pennant"
	return layout(data.Page, true, func(h *html) {
		h.errorText(data.Error)
		if data.Success {
			h.raw("<p class=\"success\">Pennant moved.</p>\n")
		}
		for _, p := range data.Pennants {
			h.raw(`<form method="post" action="/pennant/move/" class="stacked">` + "\n  <h2>")
			h.text(p.District)
			h.raw("</h2>\n  <p>Current holder: ")
			if p.Current != "" {
				h.text(p.Current)
			} else {
				h.raw("nobody")
			}
			if p.NextGame != "" {
				h.raw(". Next game: ")
				h.text(p.NextGame)
			}
			h.raw("</p>\n")
			h.raw(`  <input type="hidden" name="pennant" value="`)
			h.text(p.District)
			h.raw(`"/>` + "\n  <label>New holder ")
			venueSelect(h, "venue", p.Venues)
			h.raw(`</label>
  <label>Next game (MM/DD/YY) <input name="nextGame" placeholder="MM/DD/YY" required/></label>
  <button type="submit" class="primary">Move pennant</button>
</form>
`)
		}
	})
}

func UpdateStandings(data UpdateStandingsData) templ.Component {
	data.Title = "Update Pennant Standings"
	return layout(data.Page, true, func(h *html) {
		h.errorText(data.Error)
		if data.Success {
			h.raw("<p class=\"success\">Standings updated.</p>\n")
		}
		h.raw(`<form method="post" action="/pennant/standings/update/" class="stacked">
  <label>Venue `)
		venueSelect(h, "venue", data.Venues)
		h.raw(`</label>
  <label>Wins <input type="number" name="win" value="0" required/></label>
  <label>Defenses <input type="number" name="defend" value="0" required/></label>
  <label>Places <input type="number" name="place" value="0" required/></label>
  <button type="submit" class="primary">Save</button>
</form>
`)
	})
}

// FBPost shows a generated post ready to be copied.
func FBPost(data FBPostData) templ.Component {
	data.Title = "Facebook Post"
	return layout(data.Page, true, func(h *html) {
		h.raw("<h2>")
		h.text(data.Day)
		h.raw(": ")
		h.text(data.ClueTitle)
		h.raw("</h2>\n<textarea class=\"fbpost\" rows=\"8\" readonly>")
		h.text(data.Post)
		h.raw("</textarea>\n")
	})
}

// CheckInForm posts its batch as JSON to the same path.
func CheckInForm(data CheckInFormData) templ.Component {
	data.Title = "Add Check-ins"
	return layout(data.Page, true, func(h *html) {
		h.raw(`<form id="checkins" class="stacked">
  <label>Venue `)
		venueSelect(h, "venue", data.Venues)
		h.raw(`</label>
  <label>Date <input type="date" name="date" value="`)
		h.text(data.Today)
		h.raw(`" required/></label>
  <label>Returning player numbers (comma separated) <input name="players" autocomplete="off"/></label>
  <fieldset id="newPlayers">
    <legend>New players</legend>
    <div class="new-player"><input name="pid" placeholder="#"/><input name="name" placeholder="Name"/></div>
  </fieldset>
  <button type="button" id="addNewPlayer">Another new player</button>
  <button type="submit" class="primary">Submit check-ins</button>
  <p id="checkinResult" class="result"></p>
</form>
<script>
  const form = document.getElementById("checkins");
  const result = document.getElementById("checkinResult");
  document.getElementById("addNewPlayer").addEventListener("click", () => {
    const row = form.querySelector(".new-player").cloneNode(true);
    row.querySelectorAll("input").forEach((input) => { input.value = ""; });
    document.getElementById("newPlayers").appendChild(row);
  });
  form.addEventListener("submit", async (event) => {
    event.preventDefault();
    const players = form.elements.players.value.split(",").map((p) => p.trim()).filter((p) => p !== "");
    const newPlayers = [];
    form.querySelectorAll(".new-player").forEach((row) => {
      const pid = row.querySelector("[name=pid]").value.trim();
      const name = row.querySelector("[name=name]").value.trim();
      if (pid !== "" || name !== "") {
        newPlayers.push({ pid, name });
      }
    });
    const batch = JSON.stringify({
      venue: form.elements.venue.value,
      date: form.elements.date.value,
      players,
      newPlayers
    });
    result.textContent = "Saving...";
    const res = await fetch(window.location.pathname, {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify(batch)
    });
    const data = await res.json();
    if (!res.ok || data.error) {
      result.textContent = data.error || "Failed to save check-ins.";
      return;
    }
    result.textContent = "Check-ins saved.";
    form.reset();
  });
</script>
`)
	})
}
