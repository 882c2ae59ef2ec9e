package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case SessionView:
		o.printSessionView(v)
	case CourtResult:
		fmt.Printf("Court %d added\n", v.Number)
	case RosterResult:
		fmt.Printf("Parsed %d players, added %d to the queue\n", v.Parsed, v.Added)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Payment string `json:"payment"`
	Paused  bool   `json:"paused,omitempty"`
}

// Court response type
type Court struct {
	Number  int      `json:"number"`
	Players []Player `json:"players"`
}

// QueueEntry response type
type QueueEntry struct {
	Position int    `json:"position"`
	Player   Player `json:"player"`
}

// Queue response type
type Queue struct {
	NextUp  []QueueEntry `json:"next_up"`
	NextUp2 []QueueEntry `json:"next_up_2"`
	General []QueueEntry `json:"general"`
}

// SessionView response type
type SessionView struct {
	SessionID string   `json:"session_id"`
	Players   []Player `json:"players"`
	Courts    []Court  `json:"courts"`
	Queue     Queue    `json:"queue"`
}

// CourtResult response type
type CourtResult struct {
	Number int `json:"number"`
}

// RosterResult response type
type RosterResult struct {
	Parsed int `json:"parsed"`
	Added  int `json:"added"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Payment: %s\n", p.Payment)
	if p.Phone != "" {
		fmt.Printf("Phone: %s\n", p.Phone)
	}
}

func (o *Output) printSessionView(v SessionView) {
	fmt.Printf("Session: %s\n", v.SessionID)

	fmt.Printf("\nCourts (%d):\n", len(v.Courts))
	for _, c := range v.Courts {
		names := make([]string, len(c.Players))
		for i, p := range c.Players {
			names[i] = p.Name
		}
		if len(names) == 0 {
			fmt.Printf("  Court %d: (open)\n", c.Number)
		} else {
			fmt.Printf("  Court %d: %s\n", c.Number, strings.Join(names, ", "))
		}
	}

	o.printQueueGroup("Next Up", v.Queue.NextUp)
	o.printQueueGroup("Next Up 2", v.Queue.NextUp2)
	o.printQueueGroup("General Queue", v.Queue.General)

	paused := 0
	for _, p := range v.Players {
		if p.Paused {
			paused++
		}
	}
	fmt.Printf("\nPlayers: %d (%d paused)\n", len(v.Players), paused)
}

func (o *Output) printQueueGroup(title string, entries []QueueEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, e := range entries {
		marker := ""
		if e.Player.Paused {
			marker = " [paused]"
		}
		fmt.Printf("  %2d. %s%s\n", e.Position, e.Player.Name, marker)
	}
}
