package metrics

const Namespace = "supplier_admin"

const (
	GateDecisionPublic   = "public"
	GateDecisionAllow    = "allow"
	GateDecisionRedirect = "redirect"
)

const (
	LoginResultSuccess = "success"
	LoginResultInvalid = "invalid"
	LoginResultError   = "error"
)
