// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryCombat = "combat"
	CategoryInfo   = "info"
	CategorySystem = "system"
)

// Handler identifies what the front end does with a resolved command.
type Handler int

const (
	HandlerAction Handler = iota // submits the turn action named by Command.Name
	HandlerStatus
	HandlerEnemyStatus
	HandlerHelp
	HandlerStart
	HandlerQuit
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help     string
	Category string
	Handler  Handler
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "attack", Aliases: []string{"a"}, Help: "attacks the enemy. damage based on your attack and enemy defence", Category: CategoryCombat, Handler: HandlerAction},
		{Name: "charge", Aliases: []string{"c"}, Help: "skip turn to greatly increase attack till end of next turn", Category: CategoryCombat, Handler: HandlerAction},
		{Name: "defend", Aliases: []string{"d"}, Help: "skip turn to greatly increase defence till end of current turn", Category: CategoryCombat, Handler: HandlerAction},

		{Name: "status", Aliases: []string{"st"}, Help: "shows player status info", Category: CategoryInfo, Handler: HandlerStatus},
		{Name: "enemy", Aliases: []string{"enemystatus", "es"}, Help: "shows current enemy status info", Category: CategoryInfo, Handler: HandlerEnemyStatus},
		{Name: "help", Aliases: []string{"h", "?"}, Help: "shows possible commands", Category: CategoryInfo, Handler: HandlerHelp},

		{Name: "start", Aliases: []string{"restart"}, Help: "starts a new game", Category: CategorySystem, Handler: HandlerStart},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "leaves the game", Category: CategorySystem, Handler: HandlerQuit},
	}
}
