package roster

import (
	"sort"
	"strings"

	"github.com/openplay/courtqueue/internal/model"
)

// Status classifies a player in the export report
type Status string

const (
	StatusOriginal Status = "ORIGINAL" // uploaded, attributes unchanged
	StatusUpdated  Status = "UPDATED"  // uploaded, payment or phone changed in session
	StatusNew      Status = "NEW"      // added during the session only
	StatusDeleted  Status = "DELETED"  // soft-deleted during the session
)

// statusRank orders the export: ORIGINAL, UPDATED, NEW, DELETED
var statusRank = map[Status]int{
	StatusOriginal: 0,
	StatusUpdated:  1,
	StatusNew:      2,
	StatusDeleted:  3,
}

// Row is one line of the export report
type Row struct {
	Name    string
	Payment model.PaymentMethod
	Phone   string
	Status  Status
	Played  bool
}

// exportHeader is the first line of the report
const exportHeader = "Name\tPayment Type\tPhone Number\tStatus\tPlayed"

// Rows builds the export rows from a snapshot: every player known to the
// session (uploaded, session, and deleted sets), deduped by identity key.
// Played is Yes for anyone who made it into the session or deleted sets.
// Rows sort by status precedence, ties by name case-insensitively.
func Rows(snap *model.Snapshot) []Row {
	type entry struct {
		player model.Player
		status Status
		played bool
	}
	entries := make(map[string]entry)

	for _, p := range snap.UploadedPlayers {
		entries[p.IdentityKey()] = entry{player: p, status: StatusOriginal}
	}
	for _, p := range snap.SessionPlayers {
		key := p.IdentityKey()
		status := StatusNew
		if uploaded, ok := entries[key]; ok {
			status = StatusOriginal
			if uploaded.player.Payment != p.Payment || uploaded.player.Phone != p.Phone {
				status = StatusUpdated
			}
		}
		entries[key] = entry{player: p, status: status, played: true}
	}
	for _, p := range snap.DeletedPlayers {
		entries[p.IdentityKey()] = entry{player: p, status: StatusDeleted, played: true}
	}

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Name:    e.player.FullName(),
			Payment: e.player.Payment,
			Phone:   e.player.Phone,
			Status:  e.status,
			Played:  e.played,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if statusRank[rows[i].Status] != statusRank[rows[j].Status] {
			return statusRank[rows[i].Status] < statusRank[rows[j].Status]
		}
		return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
	})
	return rows
}

// Export renders the tab-delimited attendance report
func Export(snap *model.Snapshot) string {
	var b strings.Builder
	b.WriteString(exportHeader)
	b.WriteString("\n")

	for _, row := range Rows(snap) {
		played := "No"
		if row.Played {
			played = "Yes"
		}
		b.WriteString(row.Name)
		b.WriteString("\t")
		b.WriteString(string(row.Payment))
		b.WriteString("\t")
		b.WriteString(row.Phone)
		b.WriteString("\t")
		b.WriteString(string(row.Status))
		b.WriteString("\t")
		b.WriteString(played)
		b.WriteString("\n")
	}
	return b.String()
}
