package enrollment

import (
	"net/http"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
	"github.com/Sheddybata/sdp.app/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentService *EnrollmentService
	machine           *Machine
}

func NewEnrollmentHandler(enrollmentService *EnrollmentService, machine *Machine) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
		machine:           machine,
	}
}

// Submit handles POST /enroll/new with a complete form.
func (h *EnrollmentHandler) Submit(c *gin.Context) {
	var form Form
	if !handler.BindJSON(c, &form) {
		return
	}

	result, err := h.enrollmentService.Submit(c.Request.Context(), form)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// SubmitForAdmin handles POST /admin/members.
func (h *EnrollmentHandler) SubmitForAdmin(c *gin.Context) {
	var form Form
	if !handler.BindJSON(c, &form) {
		return
	}

	result, err := h.enrollmentService.SubmitForAdmin(c.Request.Context(), form)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Start handles POST /enroll/new/wizard.
func (h *EnrollmentHandler) Start(c *gin.Context) {
	c.JSON(http.StatusOK, WizardResponse{State: h.machine.Start()})
}

// Reset handles POST /enroll/new/wizard/reset.
func (h *EnrollmentHandler) Reset(c *gin.Context) {
	c.JSON(http.StatusOK, WizardResponse{State: h.machine.Reset()})
}

// Advance handles POST /enroll/new/wizard/advance.
func (h *EnrollmentHandler) Advance(c *gin.Context) {
	var request AdvanceRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	state, err := h.machine.Advance(c.Request.Context(), request.State, request.Values)
	h.respondWizard(c, state, err)
}

// Retreat handles POST /enroll/new/wizard/retreat.
func (h *EnrollmentHandler) Retreat(c *gin.Context) {
	var request RetreatRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	c.JSON(http.StatusOK, WizardResponse{State: h.machine.Retreat(request.State)})
}

// Sync handles POST /enroll/new/wizard/sync.
func (h *EnrollmentHandler) Sync(c *gin.Context) {
	var request SyncRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	state, err := h.machine.Sync(c.Request.Context(), request.State, request.Step)
	h.respondWizard(c, state, err)
}

func (h *EnrollmentHandler) respondWizard(c *gin.Context, state State, err error) {
	if err == nil {
		c.JSON(http.StatusOK, WizardResponse{State: state})
		return
	}

	c.Error(err)
	resp, ok := sharedError.ResolveDomainError(err)
	if !ok {
		resp = sharedError.InternalServerError
	}
	c.JSON(resp.Status, WizardResponse{State: state, Error: &resp})
}
