package terminal

import "strings"

// Command is a word the players can type at any prompt
type Command struct {
	Name        string
	Alias       string
	Description string
}

const (
	CommandNext    = "next"
	CommandEnd     = "end"
	CommandBoard   = "board"
	CommandHistory = "history"
	CommandHelp    = "help"
	CommandQuit    = "quit"
)

// Commands lists every command in the order help shows them
var Commands = []Command{
	{Name: CommandNext, Alias: "n", Description: "Bank this round and deal the next one."},
	{Name: CommandEnd, Alias: "e", Description: "End the game and show final standings."},
	{Name: CommandBoard, Alias: "b", Description: "Show the scoreboard."},
	{Name: CommandHistory, Alias: "hi", Description: "Show every finished round."},
	{Name: CommandHelp, Alias: "h", Description: "Show this help."},
	{Name: CommandQuit, Alias: "q", Description: "Leave without saving anything."},
}

// ParseCommand matches input against the command names and aliases. It
// returns false for anything else, such as a player name.
func ParseCommand(input string) (string, bool) {
	word := strings.ToLower(strings.TrimSpace(input))
	if word == "" {
		return "", false
	}
	for _, c := range Commands {
		if word == c.Name || word == c.Alias {
			return c.Name, true
		}
	}
	return "", false
}
