package encounter

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/effect"
)

// Reasons a command is rejected.
const (
	ReasonEncounterOver = "encounter is over"
	ReasonPlayerDown    = "player is not alive"
	ReasonUnknownAction = "unknown action"
	ReasonInvalidRules  = "stance multiplier rejected"
)

// CommandResult is the outcome of one submitted command.
type CommandResult struct {
	// Rejected is true when the command was refused; state is then unchanged.
	Rejected bool
	Reason   string
	Events   []Event
}

// Engine resolves player commands and the enemy turns they trigger.
// An Engine holds no encounter state, so one Engine may drive any number of
// encounters; each individual Encounter must be driven by one caller at a time.
type Engine struct {
	rules  combat.Rules
	logger *zap.Logger
}

// NewEngine creates an Engine with the given rules. A nil logger is replaced
// with a no-op logger.
func NewEngine(rules combat.Rules, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{rules: rules, logger: logger}
}

// Rules returns the engine's stance rules.
func (g *Engine) Rules() combat.Rules { return g.rules }

// Submit resolves one player command against enc, including the enemy
// response and ledger ticks that end the turn.
//
// Precondition: enc must have been created by Start.
// Postcondition: If Rejected, enc is unchanged. Otherwise enc.Phase is
// PhaseAwaitingCommand or PhaseEncounterOver and Events lists what happened in order.
func (g *Engine) Submit(enc *Encounter, action combat.ActionType) CommandResult {
	switch {
	case enc.Over():
		return CommandResult{Rejected: true, Reason: ReasonEncounterOver}
	case !enc.Player.IsAlive():
		return CommandResult{Rejected: true, Reason: ReasonPlayerDown}
	}

	log := g.logger.With(zap.String("encounter", enc.ID), zap.Stringer("action", action))
	enemy := enc.CurrentEnemy()
	var events []Event

	switch action {
	case combat.ActionAttack:
		r := combat.ResolveAttack(enc.Player, enemy)
		events = append(events, damageEvent(r, enemy))
		events = append(events, enc.checkDeaths()...)
	case combat.ActionCharge:
		m, err := enc.Player.Multipliers.Add(effect.StatAttack, g.rules.ChargeMultiplier, combat.ChargeDuration)
		if err != nil {
			log.Warn("charge rejected", zap.Error(err))
			return CommandResult{Rejected: true, Reason: ReasonInvalidRules}
		}
		events = append(events, Event{Kind: EventMultiplierAdded, Actor: enc.Player.Name, Multiplier: m})
	case combat.ActionDefend:
		m, err := enc.Player.Multipliers.Add(effect.StatDefence, g.rules.DefendMultiplier, combat.DefendDuration)
		if err != nil {
			log.Warn("defend rejected", zap.Error(err))
			return CommandResult{Rejected: true, Reason: ReasonInvalidRules}
		}
		events = append(events, Event{Kind: EventMultiplierAdded, Actor: enc.Player.Name, Multiplier: m})
	default:
		return CommandResult{Rejected: true, Reason: ReasonUnknownAction}
	}

	// After a non-final kill this consumes the new opponent's first turn.
	events = append(events, g.endTurn(enc, log)...)

	if enc.Over() {
		log.Info("encounter over",
			zap.Stringer("outcome", enc.Outcome),
			zap.Int("enemies_defeated", enc.CurrentIndex),
		)
	}
	return CommandResult{Events: events}
}

// endTurn gives the enemy its response, ticks both ledgers, and advances the
// turn counter. The first turn against a fresh opponent only advances the counter.
func (g *Engine) endTurn(enc *Encounter, log *zap.Logger) []Event {
	enemy := enc.CurrentEnemy()
	if enemy == nil || !enemy.IsAlive() || !enc.Player.IsAlive() {
		g.setPhase(enc, PhaseEncounterOver, log)
		return nil
	}
	if enc.FirstTurn {
		enc.FirstTurn = false
		enc.TurnCounter++
		log.Debug("first turn, no enemy response", zap.Int("turn", enc.TurnCounter))
		return nil
	}

	g.setPhase(enc, PhaseEnemyActing, log)
	events := g.enemyTurn(enc, enemy, log)

	events = append(events, expiredEvents(enc.Player)...)
	events = append(events, expiredEvents(enemy)...)
	enc.TurnCounter++

	if enc.Outcome != OutcomeNone {
		return events
	}
	g.setPhase(enc, PhaseRoundComplete, log)
	g.setPhase(enc, PhaseAwaitingCommand, log)
	return events
}

// enemyTurn applies the current enemy's scripted action for this turn.
func (g *Engine) enemyTurn(enc *Encounter, enemy *combat.Combatant, log *zap.Logger) []Event {
	intent := enemy.Behavior.Decide(enc.TurnCounter, g.rules)
	log.Debug("enemy acts",
		zap.String("enemy", enemy.Name),
		zap.Stringer("behavior", enemy.Behavior),
		zap.Int("turn", enc.TurnCounter),
		zap.Int("intent", int(intent.Kind)),
	)

	if intent.Kind == combat.IntentBuff {
		m, err := enemy.Multipliers.Add(intent.Stat, intent.Size, intent.Duration)
		if err != nil {
			log.Warn("enemy stance rejected", zap.String("enemy", enemy.Name), zap.Error(err))
			return nil
		}
		return []Event{{Kind: EventMultiplierAdded, Actor: enemy.Name, Multiplier: m}}
	}

	r := combat.ResolveAttack(enemy, enc.Player)
	events := []Event{damageEvent(r, enc.Player)}
	return append(events, enc.checkDeaths()...)
}

func (g *Engine) setPhase(enc *Encounter, p Phase, log *zap.Logger) {
	if enc.Phase == p {
		return
	}
	log.Debug("phase transition", zap.Stringer("from", enc.Phase), zap.Stringer("to", p))
	enc.Phase = p
}

func damageEvent(r combat.AttackResult, target *combat.Combatant) Event {
	return Event{
		Kind:   EventDamageDealt,
		Actor:  r.Attacker,
		Target: r.Target,
		Damage: r.Damage,
		HP:     r.TargetHP,
		MaxHP:  target.MaxHP,
	}
}

func expiredEvents(c *combat.Combatant) []Event {
	var events []Event
	for _, m := range c.Multipliers.Tick() {
		events = append(events, Event{Kind: EventMultiplierExpired, Actor: c.Name, Multiplier: m})
	}
	return events
}
