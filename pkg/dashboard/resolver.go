package dashboard

import "github.com/familydom/domkit/pkg/session"

// Screen is the top-level view selected for a session state.
type Screen string

const (
	// ScreenLoading shows a progress indicator; no data is fetched.
	ScreenLoading Screen = "loading"

	// ScreenAuth shows the login/register forms. Which of the two sub-forms
	// is visible is local UI state, not session state.
	ScreenAuth Screen = "auth"

	// ScreenDashboard shows the role-gated dashboard.
	ScreenDashboard Screen = "dashboard"
)

// Resolve maps a session state to the screen to render. Pure: same state,
// same screen, no side effects.
func Resolve(state session.State) Screen {
	switch state.Status {
	case session.StatusAuthenticated:
		return ScreenDashboard
	case session.StatusUnauthenticated:
		return ScreenAuth
	default:
		return ScreenLoading
	}
}
