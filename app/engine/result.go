package engine

import "github.com/careers-sim/careers-backend/app/models"

// ResultCode classifies the outcome of a dispatched command.
type ResultCode int

const (
	Success          ResultCode = 0
	Error            ResultCode = 1
	Terminate        ResultCode = 2
	ExecuteNext      ResultCode = 3
	NeedPlayerChoice ResultCode = 4
)

func (c ResultCode) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case Error:
		return "ERROR"
	case Terminate:
		return "TERMINATE"
	case ExecuteNext:
		return "EXECUTE_NEXT"
	case NeedPlayerChoice:
		return "NEED_PLAYER_CHOICE"
	}
	return "UNKNOWN"
}

// CommandResult is the uniform answer for every dispatched command.
type CommandResult struct {
	Code         ResultCode            `json:"code"`
	Message      string                `json:"message"`
	TurnComplete bool                  `json:"turn_complete"`
	NextAction   string                `json:"next_action,omitempty"`
	Location     *models.BoardLocation `json:"board_location,omitempty"`
	Choices      []string              `json:"choices,omitempty"`
}

func success(msg string) *CommandResult {
	return &CommandResult{Code: Success, Message: msg, TurnComplete: true}
}

func successOpen(msg string) *CommandResult {
	return &CommandResult{Code: Success, Message: msg}
}

func errorResult(msg string) *CommandResult {
	return &CommandResult{Code: Error, Message: msg}
}

func choiceResult(msg string, choices ...string) *CommandResult {
	return &CommandResult{Code: NeedPlayerChoice, Message: msg, Choices: choices}
}
