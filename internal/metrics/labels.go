package metrics

const (
	namespacePokedex   = "pokedex"
	subsystemPokeAPI   = "pokeapi"
	subsystemComponent = "component"
)

const (
	LabelOutcome = "outcome"
	LabelReason  = "reason"
)

// fetch outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeCancelled = "cancelled"
)

// reasons a delivery did not reach the component
const (
	ReasonTornDown = "torn_down"
	ReasonStale    = "stale"
	ReasonFailed   = "failed"
)
