// Package accountsdk is the Go client for the accounts service. It covers
// the public credential lifecycle endpoints (signup, login, verification,
// magic links, password reset) and provides an authenticated Session for
// the endpoints that require a bearer token.
//
// The request/response types in this package double as the wire contract:
// the service's HTTP handlers encode and decode exactly these structs.
package accountsdk
