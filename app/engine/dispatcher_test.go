package engine

import (
	"strings"
	"testing"

	"github.com/careers-sim/careers-backend/app/models"
)

func TestUnknownVerbIsRejected(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]

	res := e.Dispatch(p, "fly home")

	if res.Code != Error {
		t.Fatalf("expected ERROR, got %s", res.Code)
	}
}

func TestEmptyCommandIsRejected(t *testing.T) {
	e := newTestEngine(t, "AA")
	res := e.Dispatch(e.Game.Players[0], "   ")
	if res.Code != Error {
		t.Fatalf("expected ERROR, got %s", res.Code)
	}
}

func TestCommandsAreRecordedInHistory(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]

	e.Dispatch(p, "status")
	e.Dispatch(p, "where am I")

	if len(p.CommandHistory) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(p.CommandHistory))
	}
	if p.CurrentTurn == nil || len(p.CurrentTurn.Commands) != 2 {
		t.Fatal("commands must be recorded on the open turn")
	}
}

func TestWhereAmI(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Location.MoveToBorder(8, "Opportunity")

	res := e.Dispatch(p, "where am I")

	if res.Code != Success {
		t.Fatalf("expected SUCCESS, got %s", res.Code)
	}
	if !strings.Contains(res.Message, "8") || !strings.Contains(res.Message, "Opportunity") {
		t.Fatalf("message should name square 8 Opportunity: %q", res.Message)
	}
	if res.Location == nil || res.Location.BorderSquareNumber != 8 {
		t.Fatal("result must carry the location")
	}
}

func TestWhereIsUnknownPlayer(t *testing.T) {
	e := newTestEngine(t, "AA")
	s := NewSession(e)

	res := s.Do("ZZ", "where am I")

	if res.Code != Error {
		t.Fatalf("expected ERROR for unknown initials, got %s", res.Code)
	}
}

func TestPendingChoiceBlocksRolling(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	e.Offer(p, models.PendingBuyHearts, 500, "Holiday")

	res := e.Dispatch(p, "roll")

	if res.Code != Error {
		t.Fatalf("expected roll to be blocked, got %s", res.Code)
	}
	if !p.CanRoll {
		t.Fatal("a blocked roll must not consume the player's roll")
	}
}

func TestBuyHeartsResolvesOffer(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	e.Offer(p, models.PendingBuyHearts, 500, "Holiday")
	e.Offer(p, models.PendingGamble, 200, "Las Vegas")

	res := e.Dispatch(p, "buy hearts 2")

	if res.Code != Success {
		t.Fatalf("expected SUCCESS, got %s: %s", res.Code, res.Message)
	}
	if p.Happiness() != 2 {
		t.Fatalf("expected 2 hearts, got %d", p.Happiness())
	}
	if p.Cash != 1000 {
		t.Fatalf("expected cash 1000 after paying 2x500, got %d", p.Cash)
	}
	if p.Pending.Size() != 0 {
		t.Fatal("resolving one offer discards the player's other open offers")
	}
}

func TestBuyUnaffordableIsRejected(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Cash = 100
	e.Offer(p, models.PendingBuyStars, 500, "Theatre")

	res := e.Dispatch(p, "buy stars 3")

	if res.Code != Error {
		t.Fatalf("expected ERROR, got %s", res.Code)
	}
	if p.Pending.Size() != 1 {
		t.Fatal("a failed purchase keeps the offer open")
	}
}

func TestRollMovesAndCompletesCleanly(t *testing.T) {
	e := newTestEngine(t, "AA", "BB")
	p := e.Game.Players[0]

	res := e.Dispatch(p, "roll")

	if res.Code != Success && res.Code != NeedPlayerChoice {
		t.Fatalf("unexpected code %s: %s", res.Code, res.Message)
	}
	if p.CanRoll {
		t.Fatal("rolling consumes can_roll")
	}
	if res2 := e.Dispatch(p, "roll"); res2.Code != Error {
		t.Fatal("second roll in a turn must be rejected")
	}
}

func TestDoneAdvancesToNextPlayer(t *testing.T) {
	e := newTestEngine(t, "AA", "BB")
	a, b := e.Game.Players[0], e.Game.Players[1]
	e.Dispatch(a, "status")

	res := e.Dispatch(a, "done")

	if res.Code != Success || !res.TurnComplete {
		t.Fatalf("expected completed turn, got %s", res.Code)
	}
	if e.Game.CurrentPlayer() != b {
		t.Fatal("play should pass to the next seat")
	}
	if len(a.TurnHistory) != 1 {
		t.Fatalf("the closed turn must be recorded, got %d", len(a.TurnHistory))
	}
	if res2 := e.Dispatch(a, "done"); res2.Code != Error {
		t.Fatal("done out of turn must be rejected")
	}
}

func TestBankruptcyScenario(t *testing.T) {
	// Two players; driving A's cash from 500 to -300 auto-enqueues a
	// bankrupt action, and resolving it restarts A's currencies while
	// keeping occupation history.
	e := newTestEngine(t, "AA", "BB")
	a := e.Game.Players[0]
	a.Formula = models.SuccessFormula{Stars: 10, Hearts: 10, Money: 20}
	a.Cash = 500
	a.OccupationsCompleted["Business"] = 1
	a.Opportunities = []models.Card{{Type: models.CardOpportunity, Text: "x"}}

	res := e.Dispatch(a, "goto 4") // Back Alley: cash_loss 800

	if res.Code == Error {
		t.Fatalf("goto failed: %s", res.Message)
	}
	if a.Cash != -300 {
		t.Fatalf("expected cash -300, got %d", a.Cash)
	}
	if a.Pending.FindByKind(models.PendingBankrupt) == nil {
		t.Fatal("negative cash must auto-enqueue a bankrupt action")
	}
	if got := e.Dispatch(a, "roll"); got.Code != Error {
		t.Fatal("a bankrupt player cannot roll")
	}

	res = e.Dispatch(a, "bankrupt")

	if res.Code != Success {
		t.Fatalf("bankrupt command failed: %s", res.Message)
	}
	if a.Cash != a.StartingCash || a.Salary != a.StartingSalary {
		t.Fatalf("currencies not reset: cash=%d salary=%d", a.Cash, a.Salary)
	}
	if len(a.Opportunities) != 0 || a.Pending.Size() != 0 {
		t.Fatal("cards and pending actions must be cleared")
	}
	if a.OccupationsCompleted["Business"] != 1 {
		t.Fatal("occupation completions must be untouched")
	}
}

func TestPayResolvesCashLossChoice(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Cash = 1500

	res := e.Dispatch(p, "goto 5") // Divorce: pay 1000 or unemployment

	if res.Code != NeedPlayerChoice {
		t.Fatalf("expected NEED_PLAYER_CHOICE, got %s", res.Code)
	}
	if got := e.Dispatch(p, "done"); got.Code != Error {
		t.Fatal("the turn cannot end with the choice open")
	}

	res = e.Dispatch(p, "pay")

	if res.Code != Success {
		t.Fatalf("pay failed: %s", res.Message)
	}
	if p.Cash != 500 {
		t.Fatalf("expected cash 500, got %d", p.Cash)
	}
	if p.Unemployed {
		t.Fatal("paying avoids unemployment")
	}
}

func TestResolveUnemploymentChoice(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Cash = 1500
	e.Dispatch(p, "goto 5")

	res := e.Dispatch(p, "resolve unemployment go")

	if res.Code != Success {
		t.Fatalf("resolve failed: %s", res.Message)
	}
	if !p.Unemployed || p.Location.BorderSquareName != "Unemployment" {
		t.Fatalf("expected relocation to Unemployment, got %+v", p.Location)
	}
}

func TestEnterOccupationFromEntrySquare(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]

	if res := e.Dispatch(p, "enter Business"); res.Code != Error {
		t.Fatal("entering away from the entry square must fail")
	}

	p.Location.MoveToBorder(1, "Business")
	res := e.Dispatch(p, "enter Business")

	if res.Code != Success {
		t.Fatalf("enter failed: %s", res.Message)
	}
	if !p.Location.OnOccupationPath() || p.Location.OccupationSquareNumber != 0 {
		t.Fatalf("expected Business square 0, got %+v", p.Location)
	}
	if p.Fame() != 1 {
		t.Fatalf("Mailroom awards a star, got fame %d", p.Fame())
	}
}

func TestBumpSendsTargetToStart(t *testing.T) {
	e := newTestEngine(t, "AA", "BB")
	a, b := e.Game.Players[0], e.Game.Players[1]
	a.Location.MoveToBorder(2, "Main Street")
	b.Location.MoveToBorder(2, "Main Street")

	res := e.Dispatch(a, "bump BB")

	if res.Code != Success {
		t.Fatalf("bump failed: %s", res.Message)
	}
	if b.Location.BorderSquareNumber != 0 {
		t.Fatalf("expected BB on square 0, got %d", b.Location.BorderSquareNumber)
	}

	if res := e.Dispatch(a, "bump BB"); res.Code != Error {
		t.Fatal("bump requires sharing a square")
	}
}

func TestTransferRecordsLoan(t *testing.T) {
	e := newTestEngine(t, "AA", "BB")
	a, b := e.Game.Players[0], e.Game.Players[1]

	res := e.Dispatch(a, "transfer BB 500")

	if res.Code != Success {
		t.Fatalf("transfer failed: %s", res.Message)
	}
	if a.Cash != 1500 || b.Cash != 2500 {
		t.Fatalf("cash not moved: a=%d b=%d", a.Cash, b.Cash)
	}
	if b.Loans[a.Number] != 500 {
		t.Fatalf("loan ledger not updated: %+v", b.Loans)
	}
}

func TestQuitLeavesWinnerByDefault(t *testing.T) {
	e := newTestEngine(t, "AA", "BB")

	res := e.Dispatch(nil, "quit AA")

	if res.Code != Terminate {
		t.Fatalf("expected TERMINATE, got %s", res.Code)
	}
	if e.Game.Winner == nil || e.Game.Winner.Initials != "BB" {
		t.Fatal("the remaining player wins by default")
	}
}

func TestWinIsDetectedAfterCommand(t *testing.T) {
	e := newTestEngine(t, "AA", "BB")
	p := e.Game.Players[0]
	p.Formula = models.SuccessFormula{Stars: 1, Hearts: 1, Money: 1}
	p.AddStars(1)
	p.AddHearts(1)
	p.Cash = 900

	res := e.Dispatch(p, "transfer BB 100") // still below; no win
	if res.Code == Terminate {
		t.Fatal("no win yet")
	}
	p.Cash = 1000
	res = e.Dispatch(p, "status")
	if res.Code != Terminate {
		t.Fatalf("expected TERMINATE once the formula is met, got %s", res.Code)
	}
	if e.Game.Winner != p {
		t.Fatal("winner must be recorded")
	}
}

func TestPerformFollowsStrategyChain(t *testing.T) {
	opportunity, experience := testDeckSpecs()
	e := New("chain", testBoard(), opportunity, experience, models.DefaultParams(), 5,
		WithStrategy(RollAndDone{}))
	e.AddPlayer("Bot", "XX")
	e.AddPlayer("Other", "YY")
	s := NewSession(e)

	res := s.Do("XX", "perform")

	if res.Code == ExecuteNext {
		t.Fatal("the session must consume the EXECUTE_NEXT chain")
	}
	p := e.Game.PlayerByInitials("XX")
	if got := len(p.CommandHistory); got != 3 {
		t.Fatalf("expected perform, roll and done in the history, got %v", p.CommandHistory)
	}
}

func TestOrdinaryRollNeverRepeatsTurn(t *testing.T) {
	// Doubles only matter for the must-roll gating squares; a plain
	// border-track roll grants nothing extra.
	opportunity, experience := testDeckSpecs()
	for seed := int64(0); seed < 24; seed++ {
		e := New("roll-seed", testBoard(), opportunity, experience, models.DefaultParams(), seed)
		p, err := e.AddPlayer("PlayerA", "AA")
		if err != nil {
			t.Fatalf("add player: %v", err)
		}
		e.Dispatch(p, "roll")
		if p.ExtraTurns != 0 {
			t.Fatalf("seed %d: a plain roll granted an extra turn", seed)
		}
	}
}

func TestOneOpportunityCardPerTurn(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Opportunities = []models.Card{
		{Type: models.CardOpportunity, Text: "Jump", Destination: "Payday"},
		{Type: models.CardOpportunity, Text: "Jump", Destination: "Payday"},
	}

	if res := e.Dispatch(p, "use opportunity"); res.Code != Success {
		t.Fatalf("first use failed: %s", res.Message)
	}
	if res := e.Dispatch(p, "use opportunity"); res.Code != Error {
		t.Fatal("a second opportunity card in the same turn must be rejected")
	}
	if res := e.Dispatch(p, "done"); res.Code != Success {
		t.Fatalf("done failed: %s", res.Message)
	}
	if res := e.Dispatch(p, "use opportunity"); res.Code != Success {
		t.Fatalf("a new turn allows a card again: %s", res.Message)
	}
}
