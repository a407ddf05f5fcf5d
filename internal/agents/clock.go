package agents

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"github.com/rohitk523/adk-project/internal/domain/worldclock"
	"github.com/rohitk523/adk-project/internal/types"
)

// NewClockAgent builds the agent that answers time and weather questions for
// a fixed set of known cities.
func NewClockAgent() (agent.Agent, error) {
	tools, err := ClockTools()
	if err != nil {
		return nil, err
	}
	return llmagent.New(llmagent.Config{
		Name:        "world_clock",
		Description: "Agent that answers current-time and weather questions for known cities.",
		Instruction: "You answer questions about the current time and the weather in a city. " +
			"Use get_current_time for time questions and get_weather for weather questions. " +
			"If the city is unknown, relay the tool's report listing the cities you do know.",
		Tools: tools,
	})
}

// ClockTools returns the world-clock tool set.
func ClockTools() ([]tool.Tool, error) {
	timeTool, err := functiontool.New(functiontool.Config{
		Name:        "get_current_time",
		Description: "Report the current local time in a city.",
	}, func(ctx tool.Context, args cityArgs) (cityResult, error) {
		return cityLookup(worldclock.CurrentTime, args.City), nil
	})
	if err != nil {
		return nil, err
	}

	weatherTool, err := functiontool.New(functiontool.Config{
		Name:        "get_weather",
		Description: "Report the current weather in a city.",
	}, func(ctx tool.Context, args cityArgs) (cityResult, error) {
		return cityLookup(worldclock.Weather, args.City), nil
	})
	if err != nil {
		return nil, err
	}

	return []tool.Tool{timeTool, weatherTool}, nil
}

type cityArgs struct {
	City string `json:"city"`
}

type cityResult struct {
	Status       types.Status `json:"status"`
	Report       string       `json:"report,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

func cityLookup(fn func(string) (string, error), city string) cityResult {
	report, err := fn(city)
	if err != nil {
		return cityResult{Status: types.StatusFailure, ErrorMessage: err.Error()}
	}
	return cityResult{Status: types.StatusSuccess, Report: report}
}
