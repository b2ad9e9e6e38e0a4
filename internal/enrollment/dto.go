package enrollment

import sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"

// AdvanceRequest carries the client's wizard state and the current step's values.
type AdvanceRequest struct {
	State  State `json:"state"`
	Values Form  `json:"values"`
}

type RetreatRequest struct {
	State State `json:"state"`
}

type SyncRequest struct {
	State State `json:"state"`
	Step  int   `json:"step"`
}

// WizardResponse always carries the state to render. Error is set when the
// transition was refused.
type WizardResponse struct {
	State State                      `json:"state"`
	Error *sharedError.ErrorResponse `json:"error,omitempty"`
}
