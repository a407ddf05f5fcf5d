// Package agents is the registration surface for the ADK host.
//
// Convention:
//   - tools are built per agent in shorts.go, mailbrief.go and clock.go
//   - RegisterAgents returns the three agents for the host coordinator
//
// The host owns intent routing, model calls, session persistence and HTTP
// serving; nothing here implements framework behavior. Tool functions fold
// every failure into their result record, so the model always receives a
// structured answer instead of a raw error.
package agents

import (
	"google.golang.org/adk/agent"

	"github.com/rohitk523/adk-project/internal/config"
)

// RegisterAgents returns the agents this repository contributes to the host.
func RegisterAgents(cfg config.Config) ([]agent.Agent, error) {
	shortMaker, err := NewShortMakerAgent(cfg)
	if err != nil {
		return nil, err
	}
	mailBrief, err := NewMailBriefAgent(cfg)
	if err != nil {
		return nil, err
	}
	clock, err := NewClockAgent()
	if err != nil {
		return nil, err
	}
	return []agent.Agent{shortMaker, mailBrief, clock}, nil
}
