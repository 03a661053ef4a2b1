package teamhandlers

import (
	teamservice "github.com/The-Bracket-Club/tourney-bot/app/modules/team/application"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// TeamHandlers implements the Handlers interface for team events.
type TeamHandlers struct {
	service teamservice.Service
	helpers utils.Helpers
}

// NewTeamHandlers creates a new TeamHandlers instance.
func NewTeamHandlers(service teamservice.Service, helpers utils.Helpers) *TeamHandlers {
	return &TeamHandlers{
		service: service,
		helpers: helpers,
	}
}

// mapOperationResult converts a service OperationResult to handler Results.
func mapOperationResult(
	result results.OperationResult,
	successTopic, failureTopic string,
) []handlerwrapper.Result {
	handlerResults := result.MapToHandlerResults(successTopic, failureTopic)

	wrapperResults := make([]handlerwrapper.Result, len(handlerResults))
	for i, hr := range handlerResults {
		wrapperResults[i] = handlerwrapper.Result{
			Topic:    hr.Topic,
			Payload:  hr.Payload,
			Metadata: hr.Metadata,
		}
	}
	return wrapperResults
}
