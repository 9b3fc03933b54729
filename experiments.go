package playlytics

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// experimentEvaluation is the response body of the evaluate endpoint.
type experimentEvaluation struct {
	InExperiment bool `json:"inExperiment"`
}

// EvaluateExperiment reports whether the given player is enrolled in an
// experiment. playerUUID may be empty for server-scoped experiments.
//
// Evaluation is fail-closed: any failure (transport error, non-2xx status,
// undecodable body, client shut down) yields false, so callers can branch
// on the result without error handling.
//
// Example:
//
//	if client.EvaluateExperiment(ctx, "double-xp-weekend", playerID) {
//	    awardDoubleXP(player)
//	}
func (c *Client) EvaluateExperiment(ctx context.Context, experimentID, playerUUID string) bool {
	if c.shuttingDown.Load() {
		return false
	}

	path := "/experiments/" + url.PathEscape(c.config.ServerKey) +
		"/" + url.PathEscape(experimentID) + "/evaluate"

	var query url.Values
	if playerUUID != "" {
		query = url.Values{"playerUUID": []string{playerUUID}}
	}

	var result experimentEvaluation
	if err := c.http.get(ctx, path, query, &result); err != nil {
		c.log("experiment evaluation failed: %v", err)
		return false
	}
	return result.InExperiment
}

// NewPlayerUUID generates a random player identifier suitable for the
// playerUUID parameter of EvaluateExperiment. Use it for anonymous players
// that need stable experiment bucketing for the lifetime of a session.
func NewPlayerUUID() string {
	return uuid.NewString()
}
