package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careers-sim/careers-backend/app/models"
)

func intArg(args []interface{}, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, ok := args[i].(int)
	return n, ok
}

func strArg(args []interface{}, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	s, ok := args[i].(string)
	return s, ok
}

func (e *Engine) handleRoll(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to roll")
	}
	if !p.CanRoll {
		return errorResult("You cannot roll now")
	}

	// Leaving Unemployment or the Hospital is gated on the square's
	// required roll.
	if p.Unemployed || p.Sick {
		sq, err := e.Board.SquareAt(p.Location)
		if err == nil && sq.Special != nil && (len(sq.Special.MustRoll) > 0 || sq.Special.RequireDoubles) {
			dice := e.roller.Roll(2)
			freed := matchesMustRoll(dice, sq.Special.MustRoll) ||
				(sq.Special.RequireDoubles && isDoubles(dice))
			p.CanRoll = false
			if !freed {
				return success(fmt.Sprintf("You rolled %v and stay on %s", dice, sq.Name))
			}
			p.Unemployed = false
			p.Sick = false
			res := e.moveBy(p, sum(dice))
			res.Message = fmt.Sprintf("You rolled %v and are free. %s", dice, res.Message)
			return res
		}
	}

	n := 2
	if p.Location.OnOccupationPath() {
		n = 1
	}
	dice := e.roller.Roll(n)
	p.CanRoll = false
	res := e.moveBy(p, sum(dice))
	res.Message = strings.TrimSpace(fmt.Sprintf("You rolled %v. ", dice) + res.Message)
	return res
}

// moveBy advances the player by steps along their current path and executes
// the landing square.
func (e *Engine) moveBy(p *models.Player, steps int) *CommandResult {
	if p.Location.OnOccupationPath() {
		occ, err := e.Board.Occupation(p.Location.OccupationName)
		if err != nil {
			return errorResult(err.Error())
		}
		idx := p.Location.OccupationSquareNumber + steps
		if idx >= len(occ.Squares) {
			return e.completeOccupation(p, occ)
		}
		p.Location.MoveToOccupation(occ.Name, idx)
		return e.ExecuteSquare(p)
	}

	size := len(e.Board.BorderSquares)
	next := p.Location.BorderSquareNumber + steps
	if next >= size {
		// Passed the start square: payday.
		p.Cash += p.Salary
	}
	if _, err := e.moveToBorder(p, next%size); err != nil {
		return errorResult(err.Error())
	}
	res := e.ExecuteSquare(p)
	if next >= size {
		res.Message = strings.TrimSpace(fmt.Sprintf("Payday! You collect your salary of %d. ", p.Salary) + res.Message)
	}
	return res
}

// completeOccupation returns the player to the occupation's entry border
// square, counts the completion and pays the completion bonus. The entry
// square's effects are not re-executed.
func (e *Engine) completeOccupation(p *models.Player, occ *models.Occupation) *CommandResult {
	p.OccupationsCompleted[occ.Name]++
	p.Cash += occ.Bonus
	sq, err := e.Board.Border(occ.EntrySquare)
	if err != nil {
		return errorResult(err.Error())
	}
	p.Location.MoveToBorder(sq.Number, sq.Name)
	res := success(fmt.Sprintf("You completed %s and collect a bonus of %d", occ.Name, occ.Bonus))
	if len(occ.Degrees) > 0 {
		p.Pending.Add(models.PendingAction{
			Kind:       models.PendingSelectDegree,
			Amount:     occ.DegreePrice,
			SquareName: occ.Name,
		})
		res.Code = NeedPlayerChoice
		res.TurnComplete = false
		res.Choices = append([]string(nil), occ.Degrees...)
		res.Message += ". Select a degree"
	}
	loc := p.Location
	res.Location = &loc
	return res
}

func (e *Engine) handleUse(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to use a card")
	}
	kind, ok := strArg(args, 0)
	if !ok {
		return errorResult("Usage: use <opportunity|experience>")
	}
	switch strings.ToLower(kind) {
	case "opportunity":
		if !p.CanUseOpportunity {
			return errorResult("You cannot use an opportunity card now")
		}
		if len(p.Opportunities) == 0 {
			return errorResult("You have no opportunity cards")
		}
		card := p.Opportunities[0]
		p.Opportunities = p.Opportunities[1:]
		sq, err := e.Board.BorderByName(card.Destination)
		if err != nil {
			return errorResult(fmt.Sprintf("Unknown destination %q", card.Destination))
		}
		// One opportunity card per turn.
		p.CanUseOpportunity = false
		p.Location.MoveToBorder(sq.Number, sq.Name)
		res := e.ExecuteSquare(p)
		res.Message = strings.TrimSpace(fmt.Sprintf("%s. ", card.Text) + res.Message)
		return res
	case "experience":
		if len(p.Experience) == 0 {
			return errorResult("You have no experience cards")
		}
		card := p.Experience[0]
		p.Experience = p.Experience[1:]
		res := e.moveBy(p, card.Dice)
		res.Message = strings.TrimSpace(fmt.Sprintf("%s. ", card.Text) + res.Message)
		return res
	}
	return errorResult(fmt.Sprintf("Unknown card type %q", kind))
}

func (e *Engine) handleRetire(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to retire")
	}
	if !p.CanRetire() {
		return errorResult("You cannot retire yet")
	}
	p.OnHoliday = true
	return success(fmt.Sprintf("%s retires to the holiday coast", p.Name))
}

func (e *Engine) handleBump(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to bump")
	}
	initials, ok := strArg(args, 0)
	if !ok {
		return errorResult("Usage: bump <initials>")
	}
	target := e.Game.PlayerByInitials(initials)
	if target == nil {
		return errorResult(fmt.Sprintf("No player with initials %q", initials))
	}
	if target == p {
		return errorResult("You cannot bump yourself")
	}
	if p.Location.OnOccupationPath() || target.Location.OnOccupationPath() ||
		p.Location.BorderSquareNumber != target.Location.BorderSquareNumber {
		return errorResult("You can only bump a player sharing your border square")
	}
	sq, err := e.Board.Border(0)
	if err != nil {
		return errorResult(err.Error())
	}
	target.Location.MoveToBorder(sq.Number, sq.Name)
	return success(fmt.Sprintf("%s bumps %s back to %s", p.Name, target.Name, sq.Name))
}

func (e *Engine) handleBankrupt(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to declare bankruptcy")
	}
	if p.Pending.FindByKind(models.PendingBankrupt) == nil {
		return errorResult("You are not bankrupt")
	}
	p.Bankrupt()
	if sq, err := e.Board.Border(0); err == nil {
		p.Location.BorderSquareName = sq.Name
	}
	return success(fmt.Sprintf("%s is bankrupt and starts over with %d cash", p.Name, p.Cash))
}

func (e *Engine) handleList(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to list")
	}
	what, _ := strArg(args, 0)
	var lines []string
	switch strings.ToLower(what) {
	case "opportunity", "opportunities":
		for _, c := range p.Opportunities {
			lines = append(lines, c.Text)
		}
	case "experience":
		for _, c := range p.Experience {
			lines = append(lines, c.Text)
		}
	case "occupations":
		for name, n := range p.OccupationsCompleted {
			lines = append(lines, fmt.Sprintf("%s x%d", name, n))
		}
	case "degrees":
		lines = append(lines, p.Degrees...)
	case "all":
		lines = append(lines, fmt.Sprintf("opportunity cards: %d", len(p.Opportunities)))
		lines = append(lines, fmt.Sprintf("experience cards: %d", len(p.Experience)))
		lines = append(lines, fmt.Sprintf("occupations completed: %d", len(p.OccupationsCompleted)))
		lines = append(lines, fmt.Sprintf("degrees: %d", len(p.Degrees)))
	default:
		return errorResult("Usage: list <opportunity|experience|occupations|degrees|all>")
	}
	if len(lines) == 0 {
		lines = []string{"nothing"}
	}
	return successOpen(strings.Join(lines, "; "))
}

func (e *Engine) handleStatus(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required for status")
	}
	data, err := json.Marshal(p.Summary())
	if err != nil {
		return errorResult("Could not build status")
	}
	res := successOpen(string(data))
	loc := p.Location
	res.Location = &loc
	return res
}

func (e *Engine) handleQuit(p *models.Player, args []interface{}) *CommandResult {
	initials, ok := strArg(args, 0)
	target := p
	if ok {
		target = e.Game.PlayerByInitials(initials)
	}
	if target == nil {
		return errorResult("No such player to quit")
	}
	g := e.Game
	idx := -1
	for i, q := range g.Players {
		if q == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errorResult("No such player to quit")
	}
	wasCurrent := idx == g.Current
	g.Players = append(g.Players[:idx], g.Players[idx+1:]...)
	if len(g.Players) == 0 {
		g.Ended = true
		return &CommandResult{Code: Terminate, Message: "All players have quit", TurnComplete: true}
	}
	if idx < g.Current {
		g.Current--
	}
	if g.Current >= len(g.Players) {
		g.Current = 0
	}
	if len(g.Players) == 1 {
		g.SetWinner(g.Players[0])
		return &CommandResult{
			Code:         Terminate,
			Message:      fmt.Sprintf("%s quit. %s wins by default", target.Name, g.Winner.Name),
			TurnComplete: true,
		}
	}
	if wasCurrent {
		g.Players[g.Current].CanRoll = true
	}
	return success(fmt.Sprintf("%s has quit the game", target.Name))
}

func (e *Engine) handleDone(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to end a turn")
	}
	if e.Game.CurrentPlayer() != p {
		return errorResult("It is not your turn")
	}
	e.endTurn(p)
	next := e.Game.CurrentPlayer()
	return success(fmt.Sprintf("Turn complete. %s is up", next.Name))
}

func (e *Engine) handleEnd(p *models.Player, args []interface{}) *CommandResult {
	if what, ok := strArg(args, 0); !ok || strings.ToLower(what) != "game" {
		return errorResult("Usage: end game")
	}
	e.Game.Ended = true
	if e.store != nil {
		if err := e.store.Save(e.Game); err != nil {
			e.log.WithField("game", e.Game.ID).WithError(err).Warn("save on end failed")
		}
	}
	return &CommandResult{Code: Terminate, Message: "Game over", TurnComplete: true}
}

func (e *Engine) handleLoad(p *models.Player, args []interface{}) *CommandResult {
	if e.store == nil {
		return errorResult("No game store is configured")
	}
	id, ok := strArg(args, 0)
	if !ok {
		return errorResult("Usage: load <game-id>")
	}
	g, err := e.store.Load(id)
	if err != nil {
		return errorResult(fmt.Sprintf("Could not load game %q", id))
	}
	e.Game = g
	return successOpen(fmt.Sprintf("Game %s loaded with %d players", g.ID, len(g.Players)))
}

func (e *Engine) handleWhere(p *models.Player, args []interface{}) *CommandResult {
	mode, _ := strArg(args, 0)
	target := p
	switch strings.ToLower(mode) {
	case "am":
		// "where am I"
	case "is":
		who, ok := strArg(args, 1)
		if !ok {
			return errorResult("Usage: where is <initials>")
		}
		target = e.Game.PlayerByInitials(who)
	default:
		return errorResult("Usage: where am I | where is <initials>")
	}
	if target == nil {
		return errorResult("Unknown player")
	}
	loc := target.Location
	res := successOpen("")
	res.Location = &loc
	if loc.OnOccupationPath() {
		res.Message = fmt.Sprintf("%s is on square %d of %s", target.Name, loc.OccupationSquareNumber, loc.OccupationName)
	} else {
		res.Message = fmt.Sprintf("%s is on border square %d (%s)", target.Name, loc.BorderSquareNumber, loc.BorderSquareName)
	}
	return res
}

func (e *Engine) handleGoto(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required for goto")
	}
	number, ok := intArg(args, 0)
	if !ok {
		return errorResult("Usage: goto <square#>")
	}
	if _, err := e.moveToBorder(p, number); err != nil {
		return errorResult(fmt.Sprintf("No border square %d", number))
	}
	return e.ExecuteSquare(p)
}

func (e *Engine) handleEnter(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to enter an occupation")
	}
	name, ok := strArg(args, 0)
	if !ok {
		return errorResult("Usage: enter <occupation> [square#]")
	}
	occ, err := e.Board.Occupation(name)
	if err != nil {
		return errorResult(fmt.Sprintf("Unknown occupation %q", name))
	}
	if occ.DegreeRequired != "" && !p.HasDegree(occ.DegreeRequired) {
		return errorResult(fmt.Sprintf("%s requires a %s degree", occ.Name, occ.DegreeRequired))
	}
	square, hasSquare := intArg(args, 1)
	if !hasSquare {
		if p.Location.OnOccupationPath() || p.Location.BorderSquareNumber != occ.EntrySquare {
			return errorResult(fmt.Sprintf("You must be on square %d to enter %s", occ.EntrySquare, occ.Name))
		}
		square = 0
	}
	if square < 0 || square >= len(occ.Squares) {
		return errorResult(fmt.Sprintf("%s has no square %d", occ.Name, square))
	}
	p.Location.MoveToOccupation(occ.Name, square)
	res := e.ExecuteSquare(p)
	res.Message = strings.TrimSpace(fmt.Sprintf("You enter %s. ", occ.Name) + res.Message)
	return res
}

var buyKinds = map[string]models.PendingActionKind{
	"hearts":     models.PendingBuyHearts,
	"stars":      models.PendingBuyStars,
	"experience": models.PendingBuyExperience,
	"insurance":  models.PendingBuyInsurance,
}

func (e *Engine) handleBuy(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to buy")
	}
	what, ok := strArg(args, 0)
	if !ok {
		return errorResult("Usage: buy <hearts|stars|experience|insurance> [count]")
	}
	kind, ok := buyKinds[strings.ToLower(what)]
	if !ok {
		return errorResult(fmt.Sprintf("You cannot buy %q", what))
	}
	pending := p.Pending.FindByKind(kind)
	if pending == nil {
		return errorResult(fmt.Sprintf("There is no %s offer open", what))
	}
	count, hasCount := intArg(args, 1)
	if !hasCount || count < 1 {
		count = 1
	}
	total := pending.Amount * count
	if kind == models.PendingBuyInsurance {
		total = pending.Amount
	}
	if p.Cash < total {
		return errorResult(fmt.Sprintf("You cannot afford %d", total))
	}
	p.Cash -= total
	switch kind {
	case models.PendingBuyHearts:
		p.AddHearts(count)
	case models.PendingBuyStars:
		p.AddStars(count)
	case models.PendingBuyExperience:
		p.Experience = append(p.Experience, e.Experience.DrawMany(count)...)
	case models.PendingBuyInsurance:
		p.Insured = true
	}
	e.resolvePending(p, kind)
	return success(fmt.Sprintf("You bought %s for %d", what, total))
}

func (e *Engine) handlePay(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to pay")
	}
	pending := p.Pending.FindByKind(models.PendingCashLossOrUnemployment)
	if pending == nil {
		return errorResult("You have nothing to pay")
	}
	if p.Cash < pending.Amount {
		return e.sendToUnemployment(p)
	}
	p.Cash -= pending.Amount
	e.resolvePending(p, models.PendingCashLossOrUnemployment)
	return success(fmt.Sprintf("You pay %d and stay where you are", pending.Amount))
}

func (e *Engine) handleTransfer(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to transfer")
	}
	initials, ok := strArg(args, 0)
	if !ok {
		return errorResult("Usage: transfer <initials> <amount>")
	}
	amount, ok := intArg(args, 1)
	if !ok || amount <= 0 {
		return errorResult("Usage: transfer <initials> <amount>")
	}
	target := e.Game.PlayerByInitials(initials)
	if target == nil {
		return errorResult(fmt.Sprintf("No player with initials %q", initials))
	}
	if target == p {
		return errorResult("You cannot transfer to yourself")
	}
	p.Cash -= amount
	target.Cash += amount
	target.Loans[p.Number] += amount
	return successOpen(fmt.Sprintf("%s lends %d to %s", p.Name, amount, target.Name))
}

func (e *Engine) handleResolve(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to resolve")
	}
	what, ok := strArg(args, 0)
	if !ok {
		return errorResult("Usage: resolve <degree|gamble|stay_or_move|shortcut|unemployment> [choice]")
	}
	switch strings.ToLower(what) {
	case "degree":
		pending := p.Pending.FindByKind(models.PendingSelectDegree)
		if pending == nil {
			return errorResult("No degree selection is open")
		}
		name, ok := strArg(args, 1)
		if !ok {
			return errorResult("Usage: resolve degree <name>")
		}
		if p.Cash < pending.Amount {
			return errorResult(fmt.Sprintf("A degree costs %d", pending.Amount))
		}
		p.Cash -= pending.Amount
		p.Degrees = append(p.Degrees, name)
		e.resolvePending(p, models.PendingSelectDegree)
		return success(fmt.Sprintf("You earned a %s degree", name))

	case "gamble":
		pending := p.Pending.FindByKind(models.PendingGamble)
		if pending == nil {
			return errorResult("No gamble is open")
		}
		dice := e.roller.Roll(2)
		stake := pending.Amount
		if sum(dice) >= 7 {
			p.Cash += stake
		} else {
			p.Cash -= stake
		}
		e.resolvePending(p, models.PendingGamble)
		if sum(dice) >= 7 {
			return success(fmt.Sprintf("You rolled %v and win %d", dice, stake))
		}
		return success(fmt.Sprintf("You rolled %v and lose %d", dice, stake))

	case "stay_or_move":
		pending := p.Pending.FindByKind(models.PendingStayOrMove)
		if pending == nil {
			return errorResult("No stay-or-move choice is open")
		}
		choice, _ := strArg(args, 1)
		e.resolvePending(p, models.PendingStayOrMove)
		if strings.ToLower(choice) != "move" {
			return success("You stay where you are")
		}
		sq, err := e.Board.BorderByName(pending.SquareName)
		if err != nil {
			return errorResult(fmt.Sprintf("Unknown destination %q", pending.SquareName))
		}
		p.Location.MoveToBorder(sq.Number, sq.Name)
		return e.ExecuteSquare(p)

	case "shortcut":
		pending := p.Pending.FindByKind(models.PendingTakeShortcut)
		if pending == nil {
			return errorResult("No shortcut choice is open")
		}
		choice, _ := strArg(args, 1)
		e.resolvePending(p, models.PendingTakeShortcut)
		if strings.ToLower(choice) != "yes" {
			return success("You pass up the shortcut")
		}
		sq, err := e.Board.BorderByName(pending.SquareName)
		if err != nil {
			return errorResult(fmt.Sprintf("Unknown destination %q", pending.SquareName))
		}
		p.Location.MoveToBorder(sq.Number, sq.Name)
		return e.ExecuteSquare(p)

	case "unemployment":
		pending := p.Pending.FindByKind(models.PendingCashLossOrUnemployment)
		if pending == nil {
			return errorResult("No cash-loss choice is open")
		}
		choice, _ := strArg(args, 1)
		if strings.ToLower(choice) == "pay" {
			return e.handlePay(p, nil)
		}
		return e.sendToUnemployment(p)
	}
	return errorResult(fmt.Sprintf("Nothing to resolve for %q", what))
}

func (e *Engine) handlePerform(p *models.Player, args []interface{}) *CommandResult {
	if p == nil {
		return errorResult("A player is required to perform")
	}
	if e.strategy == nil {
		return errorResult("No strategy is configured")
	}
	plan := e.strategy.PlanTurn(e.Game, p)
	if plan == "" {
		return successOpen("The strategy has nothing to do")
	}
	return &CommandResult{Code: ExecuteNext, Message: "Strategy plan ready", NextAction: plan}
}

// resolvePending clears the resolved kind and discards the player's other
// open offers.
func (e *Engine) resolvePending(p *models.Player, kind models.PendingActionKind) {
	p.Pending.RemoveAllExcept(kind)
	p.Pending.RemoveByKind(kind)
}

// sendToUnemployment relocates the player to the Unemployment square and
// clears all pending state.
func (e *Engine) sendToUnemployment(p *models.Player) *CommandResult {
	sq, err := e.Board.BorderByName("Unemployment")
	if err != nil {
		return errorResult("This board has no Unemployment square")
	}
	p.Location.MoveToBorder(sq.Number, sq.Name)
	p.Unemployed = true
	p.Pending.Clear()
	res := success(fmt.Sprintf("%s is unemployed", p.Name))
	loc := p.Location
	res.Location = &loc
	return res
}
