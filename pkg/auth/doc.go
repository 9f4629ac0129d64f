// Package auth drives the session lifecycle of the marketplace client.
//
// The Manager is the only writer of session state. Its four operations map
// onto the lifecycle's transitions:
//
//	Bootstrap  loading → authenticated | unauthenticated
//	Login      unauthenticated → authenticated (state unchanged on failure)
//	Register   unauthenticated → authenticated (state unchanged on failure)
//	Logout     any → unauthenticated
//
// Every operation holds one mutex for its full duration, so concurrent auth
// calls queue instead of racing the shared credential. Login/Register
// failures come back as *FlowError with a form-ready message; a stale
// persisted credential at Bootstrap results in a silent forced sign-out
// rather than an error, since no form exists to show one on.
package auth
