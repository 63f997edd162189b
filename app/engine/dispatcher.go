package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/careers-sim/careers-backend/app/models"
	"github.com/sirupsen/logrus"
)

// handler executes one verb. The player is nil for administrative commands.
type handler func(p *models.Player, args []interface{}) *CommandResult

// buildHandlers populates the closed verb table. Verb resolution is a static
// map lookup; anything not listed here is an invalid command.
func (e *Engine) buildHandlers() map[string]handler {
	return map[string]handler{
		"roll":     e.handleRoll,
		"use":      e.handleUse,
		"retire":   e.handleRetire,
		"bump":     e.handleBump,
		"bankrupt": e.handleBankrupt,
		"list":     e.handleList,
		"status":   e.handleStatus,
		"quit":     e.handleQuit,
		"done":     e.handleDone,
		"next":     e.handleDone,
		"end":      e.handleEnd,
		"load":     e.handleLoad,
		"where":    e.handleWhere,
		"goto":     e.handleGoto,
		"enter":    e.handleEnter,
		"buy":      e.handleBuy,
		"pay":      e.handlePay,
		"transfer": e.handleTransfer,
		"resolve":  e.handleResolve,
		"perform":  e.handlePerform,
	}
}

// Dispatch splits a command into a verb and arguments, runs the bound
// handler, and returns a uniform result. Every dispatch path resolves to a
// CommandResult; internal faults are converted to an ERROR result at this
// boundary.
func (e *Engine) Dispatch(p *models.Player, command string) (res *CommandResult) {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithFields(logrus.Fields{"game": e.Game.ID, "panic": r}).Error("command fault")
			res = errorResult("Invalid command")
		}
		e.logResult(p, command, res)
	}()

	e.logCommand(p, command)

	tokens := strings.Fields(command)
	if len(tokens) == 0 {
		return errorResult("Invalid command")
	}
	verb := strings.ToLower(tokens[0])
	args := parseArgs(tokens[1:])

	if p != nil {
		if p.CurrentTurn == nil {
			p.CurrentTurn = &models.Turn{
				Player: p.Initials,
				Number: e.Game.TurnNumber,
				Before: p.Snapshot(),
			}
		}
		p.CommandHistory = append(p.CommandHistory, command)
		p.CurrentTurn.Commands = append(p.CurrentTurn.Commands, command)
	}

	h, ok := e.handlers[verb]
	if !ok {
		return errorResult(fmt.Sprintf("Invalid command %q", verb))
	}
	if p != nil {
		if blocked := e.gate(p, verb); blocked != nil {
			return blocked
		}
	}

	res = h(p, args)
	if res == nil {
		return errorResult("Invalid command")
	}

	e.checkBankruptcies()
	if winner := e.Game.CheckWinner(); winner != nil && res.Code != Terminate && res.Code != Error {
		res.Code = Terminate
		res.Message = strings.TrimSpace(res.Message + fmt.Sprintf(" %s has won the game!", winner.Name))
		res.TurnComplete = true
	}
	return res
}

// parseArgs coerces numeric-looking tokens to integers and keeps the rest
// as strings.
func parseArgs(tokens []string) []interface{} {
	args := make([]interface{}, 0, len(tokens))
	for _, t := range tokens {
		if n, err := strconv.Atoi(t); err == nil {
			args = append(args, n)
		} else {
			args = append(args, t)
		}
	}
	return args
}

// Verbs a player may still issue while a pending action is outstanding.
var resolutionVerbs = map[string]bool{
	"buy": true, "pay": true, "resolve": true, "bankrupt": true,
	"status": true, "list": true, "where": true, "quit": true,
	"end": true, "transfer": true, "done": true, "next": true,
}

// gate blocks commands unrelated to the player's outstanding choices.
func (e *Engine) gate(p *models.Player, verb string) *CommandResult {
	if p.Pending.Size() == 0 {
		return nil
	}
	if p.Pending.FindByKind(models.PendingBankrupt) != nil {
		switch verb {
		case "bankrupt", "status", "list", "where", "quit", "end", "transfer":
			return nil
		}
		return errorResult("You are bankrupt and must resolve it first")
	}
	if (verb == "done" || verb == "next") && p.Pending.FindByKind(models.PendingCashLossOrUnemployment) != nil {
		return errorResult("You must resolve the cash loss first")
	}
	if resolutionVerbs[verb] {
		return nil
	}
	return errorResult(fmt.Sprintf("You cannot %s while a choice is pending", verb))
}

// endTurn closes the player's open turn: lapsed offers are discarded, the
// after snapshot is taken, the turn is scored and recorded, and play
// advances.
func (e *Engine) endTurn(p *models.Player) {
	for _, a := range p.Pending.List() {
		if a.Kind != models.PendingBankrupt && a.Kind != models.PendingCashLossOrUnemployment {
			p.Pending.RemoveByKind(a.Kind)
		}
	}
	if t := p.CurrentTurn; t != nil {
		t.After = p.Snapshot()
		t.Outcome = ScoreTurn(t, p.Formula, e.Params.OutcomeWeights)
		p.TurnHistory = append(p.TurnHistory, t)
		p.CurrentTurn = nil
	}
	p.CanRoll = false
	p.CanUseOpportunity = true
	e.Game.Advance()
}

func (e *Engine) logCommand(p *models.Player, command string) {
	fields := logrus.Fields{"game": e.Game.ID, "command": command}
	if p != nil {
		fields["player"] = p.Initials
	}
	e.log.WithFields(fields).Info("command")
}

func (e *Engine) logResult(p *models.Player, command string, res *CommandResult) {
	if res == nil {
		return
	}
	fields := logrus.Fields{
		"game":    e.Game.ID,
		"command": command,
		"code":    res.Code.String(),
		"done":    res.TurnComplete,
	}
	if p != nil {
		fields["player"] = p.Initials
	}
	e.log.WithFields(fields).Info("result")
}
