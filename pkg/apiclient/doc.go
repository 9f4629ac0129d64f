// Package apiclient is the HTTP gateway to the Family Dom Maroc marketplace
// API.
//
// A Client owns its bearer credential: SetCredential and ClearCredential are
// instance-scoped and mutex-guarded, so there is no ambient global header
// state and no way for a credential change to race an unrelated request.
// Each call attaches the credential as "Authorization: Bearer <token>" plus
// a fresh X-Request-ID, runs exactly once (no retries), and surfaces failures
// as one of three shapes:
//
//   - *APIError for non-2xx responses, carrying the server's detail message
//   - ErrNetwork-wrapped errors for transport failures
//   - ErrDecode-wrapped errors for malformed success bodies
//
// Typed endpoint methods cover the full API surface: auth, profile, the
// provider directory, provider offerings, and bookings.
//
// # Usage
//
//	client, err := apiclient.New("https://api.familydom.ma")
//	if err != nil {
//		// handle error
//	}
//
//	token, err := client.Login(ctx, email, password)
//	if err != nil {
//		msg := apiclient.ErrorDetail(err, "Login failed")
//		// show msg to the user
//	}
//	client.SetCredential(token.AccessToken)
package apiclient
