package encounter

// checkDeaths runs after every resolved attack. A dead enemy is handled
// before a dead player.
func (e *Encounter) checkDeaths() []Event {
	if enemy := e.CurrentEnemy(); enemy != nil && !enemy.IsAlive() {
		return e.defeatEnemy()
	}
	if !e.Player.IsAlive() {
		return e.lose()
	}
	return nil
}

// defeatEnemy advances past the current enemy. Exhausting the roster wins the
// encounter and zeroes the player's HP as a terminal marker; otherwise the
// player is restored and the next opponent starts with a fresh first turn,
// which the killing command's own end of turn consumes.
// Enemy multipliers are left alone; each enemy is fought once.
func (e *Encounter) defeatEnemy() []Event {
	defeated := e.CurrentEnemy()
	events := []Event{{Kind: EventEnemyDefeated, Target: defeated.Name, HP: defeated.HP, MaxHP: defeated.MaxHP}}

	e.CurrentIndex++
	if e.CurrentIndex >= len(e.Roster) {
		e.CurrentIndex = len(e.Roster)
		e.Player.HP = 0
		e.Outcome = OutcomeVictory
		e.Phase = PhaseEncounterOver
		return append(events, Event{Kind: EventVictory})
	}

	e.Player.Init()
	e.TurnCounter = 0
	e.FirstTurn = true
	next := e.CurrentEnemy()
	return append(events, Event{Kind: EventOpponentEngaged, Target: next.Name, HP: next.HP, MaxHP: next.MaxHP, Description: next.Description})
}

// lose ends the encounter in defeat by the current enemy.
func (e *Encounter) lose() []Event {
	e.Outcome = OutcomeDefeat
	e.Phase = PhaseEncounterOver
	var by string
	if enemy := e.CurrentEnemy(); enemy != nil {
		by = enemy.Name
	}
	return []Event{{Kind: EventPlayerDefeated, Actor: by}}
}
